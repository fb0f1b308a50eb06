package diag

// Code is a stable, displayable identifier for a Kind, in the spirit of the
// teacher's E1xxx "parse error" code namespace (this package only ever
// needed that one category: compile- and runtime-error codes belonged to
// the VM/compiler, which are out of this module's scope). Codes are never
// reassigned to a different Kind, even after a Kind is retired, so that a
// code captured in an old log always identifies the same diagnostic.
type Code string

var kindCodes = map[Kind]Code{
	ExpectedToken:             "P1001",
	ExpectedExpr:              "P1002",
	ExpectedTypeExpr:          "P1003",
	ExpectedPrimaryTypeExpr:   "P1004",
	ExpectedBlockOrField:      "P1005",
	ExpectedBlockOrAssignment: "P1006",
	ExpectedBlockOrExpression: "P1007",
	ExpectedSemiOrElse:        "P1008",
	ExpectedSemiOrLBrace:      "P1009",
	ExpectedFn:                "P1010",
	ExpectedVarDecl:           "P1011",
	ExpectedVarDeclOrFn:       "P1012",
	ExpectedPubItem:           "P1013",
	ExpectedLabelable:         "P1014",
	ExpectedInlinable:         "P1015",
	ExpectedReturnType:        "P1016",
	ExpectedParamType:         "P1017",
	ExpectedParamList:         "P1018",
	ExpectedIdentifier:        "P1019",
	ExpectedStringLiteral:     "P1020",
	ExpectedIntegerLiteral:    "P1021",
	ExpectedLBrace:            "P1022",
	ExpectedLabelOrLBrace:     "P1023",
	ExpectedContainerMembers:  "P1024",
	ExpectedSuffixOp:          "P1025",
	DeclBetweenFields:         "P1026",
	UnattachedDocComment:      "P1027",
	ExtraAlignQualifier:       "P1028",
	ExtraConstQualifier:       "P1029",
	ExtraVolatileQualifier:    "P1030",
	ExtraAllowZeroQualifier:   "P1031",
	InvalidAnd:                "P1032",
	InvalidToken:              "P1033",
}

// Code returns the stable diagnostic code for k, e.g. "P1001".
func (k Kind) Code() Code {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return "P1000"
}

// String returns the code as a plain string.
func (c Code) String() string { return string(c) }
