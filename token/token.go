// Package token defines the lexical tokens of the Language and the
// parallel arrays a tokenizer produces from a source buffer.
package token

// Kind identifies the lexical category of a token.
type Kind uint8

const (
	Invalid Kind = iota
	Eof

	// trivia
	LineComment
	DocComment
	ContainerDocComment

	// identifiers and literals
	Identifier
	IntegerLiteral
	FloatLiteral
	CharLiteral
	StringLiteral
	MultilineStringLiteralLine

	// keywords
	KeywordAddrspace
	KeywordAlign
	KeywordAllowzero
	KeywordAnd
	KeywordAnyframe
	KeywordAnytype
	KeywordAsm
	KeywordAsync
	KeywordAwait
	KeywordBreak
	KeywordCallconv
	KeywordCatch
	KeywordComptime
	KeywordConst
	KeywordContinue
	KeywordDefer
	KeywordElse
	KeywordEnum
	KeywordErrdefer
	KeywordError
	KeywordExport
	KeywordExtern
	KeywordFn
	KeywordFor
	KeywordIf
	KeywordInline
	KeywordNoalias
	KeywordNoinline
	KeywordNosuspend
	KeywordOpaque
	KeywordOr
	KeywordOrelse
	KeywordPacked
	KeywordPub
	KeywordResume
	KeywordReturn
	KeywordLinksection
	KeywordStruct
	KeywordSuspend
	KeywordSwitch
	KeywordTest
	KeywordThreadlocal
	KeywordTry
	KeywordUnion
	KeywordUnreachable
	KeywordUsingnamespace
	KeywordVar
	KeywordVolatile
	KeywordWhile

	// literal keywords
	KeywordTrue
	KeywordFalse
	KeywordNull
	KeywordUndefined

	// punctuation and operators
	At
	Ampersand
	AmpersandEqual
	Asterisk
	AsteriskAsterisk
	AsteriskEqual
	AsteriskPercent
	AsteriskPercentEqual
	AsteriskPipe
	AsteriskPipeEqual
	Bang
	BangEqual
	Caret
	CaretEqual
	Colon
	Comma
	Dot
	DotAsterisk
	DotDot
	DotDotDot
	DotQuestionMark
	Equal
	EqualEqual
	EqualAngleBracketRight
	AngleBracketLeft
	AngleBracketLeftEqual
	AngleBracketAngleBracketLeft
	AngleBracketAngleBracketLeftEqual
	AngleBracketAngleBracketLeftPipe
	AngleBracketAngleBracketLeftPipeEqual
	AngleBracketRight
	AngleBracketRightEqual
	AngleBracketAngleBracketRight
	AngleBracketAngleBracketRightEqual
	LBrace
	LBracket
	LParen
	Minus
	MinusEqual
	MinusPercent
	MinusPercentEqual
	MinusRAngle
	Percent
	PercentEqual
	Pipe
	PipeEqual
	PipePipe
	Plus
	PlusEqual
	PlusPercent
	PlusPercentEqual
	PlusPlus
	QuestionMark
	RBrace
	RBracket
	RParen
	Semicolon
	Slash
	SlashEqual
	Tilde
)

var keywords = map[string]Kind{
	"addrspace":      KeywordAddrspace,
	"align":          KeywordAlign,
	"allowzero":      KeywordAllowzero,
	"and":            KeywordAnd,
	"anyframe":       KeywordAnyframe,
	"anytype":        KeywordAnytype,
	"asm":            KeywordAsm,
	"async":          KeywordAsync,
	"await":          KeywordAwait,
	"break":          KeywordBreak,
	"callconv":       KeywordCallconv,
	"catch":          KeywordCatch,
	"comptime":       KeywordComptime,
	"const":          KeywordConst,
	"continue":       KeywordContinue,
	"defer":          KeywordDefer,
	"else":           KeywordElse,
	"enum":           KeywordEnum,
	"errdefer":       KeywordErrdefer,
	"error":          KeywordError,
	"export":         KeywordExport,
	"extern":         KeywordExtern,
	"false":          KeywordFalse,
	"fn":             KeywordFn,
	"for":            KeywordFor,
	"if":             KeywordIf,
	"inline":         KeywordInline,
	"noalias":        KeywordNoalias,
	"noinline":       KeywordNoinline,
	"nosuspend":      KeywordNosuspend,
	"null":           KeywordNull,
	"opaque":         KeywordOpaque,
	"or":             KeywordOr,
	"orelse":         KeywordOrelse,
	"packed":         KeywordPacked,
	"pub":            KeywordPub,
	"resume":         KeywordResume,
	"return":         KeywordReturn,
	"linksection":    KeywordLinksection,
	"struct":         KeywordStruct,
	"suspend":        KeywordSuspend,
	"switch":         KeywordSwitch,
	"test":           KeywordTest,
	"threadlocal":    KeywordThreadlocal,
	"true":           KeywordTrue,
	"try":            KeywordTry,
	"undefined":      KeywordUndefined,
	"union":          KeywordUnion,
	"unreachable":    KeywordUnreachable,
	"usingnamespace": KeywordUsingnamespace,
	"var":            KeywordVar,
	"volatile":       KeywordVolatile,
	"while":          KeywordWhile,
}

// LookupIdentifier returns the keyword Kind for name, or Identifier if name
// is not reserved.
func LookupIdentifier(name string) Kind {
	if kind, ok := keywords[name]; ok {
		return kind
	}
	return Identifier
}

// Keywords returns every reserved keyword recognised by the tokenizer, used
// by diagnostics that suggest a nearby keyword for a misspelled identifier.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	return names
}

// IsTrivia reports whether kind is a comment token that grammar productions
// never see directly (line comments are skipped by the cursor; doc comments
// are consumed explicitly by declaration parsing).
func IsTrivia(kind Kind) bool {
	return kind == LineComment || kind == DocComment || kind == ContainerDocComment
}

// String returns a human readable description of kind, used in diagnostic
// messages such as "expected ';', found 'fn'".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown token"
}

var kindNames = map[Kind]string{
	Invalid:                    "invalid token",
	Eof:                        "end of file",
	LineComment:                "a comment",
	DocComment:                 "a doc comment",
	ContainerDocComment:        "a container doc comment",
	Identifier:                 "an identifier",
	IntegerLiteral:             "an integer literal",
	FloatLiteral:               "a float literal",
	CharLiteral:                "a character literal",
	StringLiteral:              "a string literal",
	MultilineStringLiteralLine: "a multiline string literal",
	At:                         "'@'",
	Ampersand:                  "'&'",
	AmpersandEqual:             "'&='",
	Asterisk:                   "'*'",
	AsteriskAsterisk:           "'**'",
	AsteriskEqual:              "'*='",
	AsteriskPercent:            "'*%'",
	AsteriskPercentEqual:       "'*%='",
	AsteriskPipe:               "'*|'",
	AsteriskPipeEqual:          "'*|='",
	Bang:                       "'!'",
	BangEqual:                  "'!='",
	Caret:                      "'^'",
	CaretEqual:                 "'^='",
	Colon:                      "':'",
	Comma:                      "','",
	Dot:                        "'.'",
	DotAsterisk:                "'.*'",
	DotDot:                     "'..'",
	DotDotDot:                  "'...'",
	DotQuestionMark:            "'.?'",
	Equal:                      "'='",
	EqualEqual:                 "'=='",
	EqualAngleBracketRight:     "'=>'",
	AngleBracketLeft:           "'<'",
	AngleBracketLeftEqual:      "'<='",
	AngleBracketAngleBracketLeft:          "'<<'",
	AngleBracketAngleBracketLeftEqual:     "'<<='",
	AngleBracketAngleBracketLeftPipe:      "'<<|'",
	AngleBracketAngleBracketLeftPipeEqual: "'<<|='",
	AngleBracketRight:                     "'>'",
	AngleBracketRightEqual:                "'>='",
	AngleBracketAngleBracketRight:         "'>>'",
	AngleBracketAngleBracketRightEqual:    "'>>='",
	LBrace:       "'{'",
	LBracket:     "'['",
	LParen:       "'('",
	Minus:        "'-'",
	MinusEqual:   "'-='",
	MinusPercent: "'-%'",
	MinusPercentEqual: "'-%='",
	MinusRAngle:       "'->'",
	Percent:           "'%'",
	PercentEqual:      "'%='",
	Pipe:              "'|'",
	PipeEqual:         "'|='",
	PipePipe:          "'||'",
	Plus:              "'+'",
	PlusEqual:         "'+='",
	PlusPercent:       "'+%'",
	PlusPercentEqual:  "'+%='",
	PlusPlus:          "'++'",
	QuestionMark:      "'?'",
	RBrace:            "'}'",
	RBracket:          "']'",
	RParen:            "')'",
	Semicolon:         "';'",
	Slash:             "'/'",
	SlashEqual:        "'/='",
	Tilde:             "'~'",
}

func init() {
	for name, kind := range keywords {
		kindNames[kind] = "'" + name + "'"
	}
}
