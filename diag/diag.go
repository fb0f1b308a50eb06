// Package diag defines the parser's diagnostic taxonomy: a closed set of
// structured syntax errors, each pointing at a token index, plus the
// machinery (formatting, "did you mean" suggestions) a consumer uses to
// present them.
package diag

import (
	"fmt"

	"github.com/langcore/parse/token"
)

// Kind is a closed enumeration of every diagnostic the parser can raise.
// It mirrors spec.md §4.2's error taxonomy exactly; adding a new syntax
// error means adding a new Kind here, never reusing an existing one for an
// unrelated condition.
type Kind uint8

const (
	ExpectedToken Kind = iota
	ExpectedExpr
	ExpectedTypeExpr
	ExpectedPrimaryTypeExpr
	ExpectedBlockOrField
	ExpectedBlockOrAssignment
	ExpectedBlockOrExpression
	ExpectedSemiOrElse
	ExpectedSemiOrLBrace
	ExpectedFn
	ExpectedVarDecl
	ExpectedVarDeclOrFn
	ExpectedPubItem
	ExpectedLabelable
	ExpectedInlinable
	ExpectedReturnType
	ExpectedParamType
	ExpectedParamList
	ExpectedIdentifier
	ExpectedStringLiteral
	ExpectedIntegerLiteral
	ExpectedLBrace
	ExpectedLabelOrLBrace
	ExpectedContainerMembers
	ExpectedSuffixOp
	DeclBetweenFields
	UnattachedDocComment
	ExtraAlignQualifier
	ExtraConstQualifier
	ExtraVolatileQualifier
	ExtraAllowZeroQualifier
	InvalidAnd
	InvalidToken
)

var kindMessages = map[Kind]string{
	ExpectedToken:             "expected %s, found %s",
	ExpectedExpr:              "expected expression, found %s",
	ExpectedTypeExpr:          "expected type expression, found %s",
	ExpectedPrimaryTypeExpr:   "expected primary type expression, found %s",
	ExpectedBlockOrField:      "expected block or field, found %s",
	ExpectedBlockOrAssignment: "expected block or assignment, found %s",
	ExpectedBlockOrExpression: "expected block or expression, found %s",
	ExpectedSemiOrElse:        "expected ';' or 'else', found %s",
	ExpectedSemiOrLBrace:      "expected ';' or '{', found %s",
	ExpectedFn:                "expected function, found %s",
	ExpectedVarDecl:           "expected variable declaration, found %s",
	ExpectedVarDeclOrFn:       "expected variable declaration or function, found %s",
	ExpectedPubItem:           "expected a public declaration, found %s",
	ExpectedLabelable:         "expected a labelable statement, found %s",
	ExpectedInlinable:         "expected 'for' or 'while' after 'inline', found %s",
	ExpectedReturnType:        "expected return type expression, found %s",
	ExpectedParamType:         "expected parameter type, found %s",
	ExpectedParamList:         "expected parameter list, found %s",
	ExpectedIdentifier:        "expected identifier, found %s",
	ExpectedStringLiteral:     "expected string literal, found %s",
	ExpectedIntegerLiteral:    "expected integer literal, found %s",
	ExpectedLBrace:            "expected '{', found %s",
	ExpectedLabelOrLBrace:     "expected label or '{', found %s",
	ExpectedContainerMembers:  "expected container members, found %s",
	ExpectedSuffixOp:          "expected pointer dereference, optional unwrap, or field access, found %s",
	DeclBetweenFields:         "declarations are not allowed between container fields",
	UnattachedDocComment:      "this doc comment is not attached to a declaration",
	ExtraAlignQualifier:       "extra align qualifier",
	ExtraConstQualifier:       "extra const qualifier",
	ExtraVolatileQualifier:    "extra volatile qualifier",
	ExtraAllowZeroQualifier:   "extra allowzero qualifier",
	InvalidAnd:                "invalid token '&&'; did you mean 'and'?",
	InvalidToken:              "invalid token",
}

// Diagnostic is a single structured syntax error. It carries only data: a
// Kind, the token index of its primary site, and the handful of optional
// parameters a subset of Kinds use. Diagnostics never format themselves to
// a string directly here; that is Formatter's job (§10.2 of SPEC_FULL.md),
// so a Diagnostic can be serialised, sorted, or translated to another
// wire format (see lspdiag) without pulling in color/terminal concerns.
type Diagnostic struct {
	Kind      Kind
	Token     token.Index // primary site
	Expected  token.Kind  // meaningful only for ExpectedToken
	Hint      string      // optional "did you mean" suggestion
	SessionID string      // id passed to parser.WithSessionID, stamped on every diagnostic of that parse; empty otherwise
}

// Message renders the diagnostic's text using the token kind found at its
// site (found), and, for ExpectedToken, the expected kind.
func (d Diagnostic) Message(found token.Kind) string {
	tmpl := kindMessages[d.Kind]
	switch d.Kind {
	case ExpectedToken:
		return fmt.Sprintf(tmpl, d.Expected.String(), found.String())
	case DeclBetweenFields, UnattachedDocComment,
		ExtraAlignQualifier, ExtraConstQualifier,
		ExtraVolatileQualifier, ExtraAllowZeroQualifier,
		InvalidAnd, InvalidToken:
		return tmpl
	default:
		return fmt.Sprintf(tmpl, found.String())
	}
}
