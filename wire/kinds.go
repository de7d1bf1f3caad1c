// Package wire defines the TypedAST exchange encoding: the node kind and
// property enumerations, the serialized node record, the container that
// carries pooled tables and scripts, and the protobuf-wire codec for all of
// them. Nothing in here interprets the records; that is the decoder's job.
package wire

import "fmt"

// NodeKind is the discriminant of a serialized node record. The enumeration
// is closed and the values are frozen; they are the on-disk format.
type NodeKind uint16

const (
	// KindUnspecified is the zero sentinel. It never appears in a valid
	// stream and decoding it fails.
	KindUnspecified NodeKind = 0

	// ========================================================================
	// Scripts, literals and primaries (1-13)
	// ========================================================================

	KindSourceFile    NodeKind = 1
	KindNumberLiteral NodeKind = 2
	KindStringLiteral NodeKind = 3
	KindIdentifier    NodeKind = 4
	KindFalse         NodeKind = 5
	KindTrue          NodeKind = 6
	KindNull          NodeKind = 7
	KindThis          NodeKind = 8
	KindVoid          NodeKind = 9
	KindBigIntLiteral NodeKind = 10
	KindRegexLiteral  NodeKind = 11
	KindArrayLiteral  NodeKind = 12
	KindObjectLiteral NodeKind = 13

	// ========================================================================
	// Accesses, calls and constructions (14-18)
	// ========================================================================

	KindAssignment     NodeKind = 14
	KindCall           NodeKind = 15
	KindNew            NodeKind = 16
	KindPropertyAccess NodeKind = 17
	KindElementAccess  NodeKind = 18

	// ========================================================================
	// Binary, logical and unary operators (19-53)
	// ========================================================================

	KindComma              NodeKind = 19
	KindBooleanOr          NodeKind = 20
	KindBooleanAnd         NodeKind = 21
	KindHook               NodeKind = 22
	KindEqual              NodeKind = 23
	KindNotEqual           NodeKind = 24
	KindLessThan           NodeKind = 25
	KindLessThanEqual      NodeKind = 26
	KindGreaterThan        NodeKind = 27
	KindGreaterThanEqual   NodeKind = 28
	KindTripleEqual        NodeKind = 29
	KindNotTripleEqual     NodeKind = 30
	KindNot                NodeKind = 31
	KindPositive           NodeKind = 32
	KindNegative           NodeKind = 33
	KindTypeOf             NodeKind = 34
	KindInstanceOf         NodeKind = 35
	KindIn                 NodeKind = 36
	KindAdd                NodeKind = 37
	KindSubtract           NodeKind = 38
	KindMultiply           NodeKind = 39
	KindDivide             NodeKind = 40
	KindModulo             NodeKind = 41
	KindExponent           NodeKind = 42
	KindBitwiseNot         NodeKind = 43
	KindBitwiseOr          NodeKind = 44
	KindBitwiseAnd         NodeKind = 45
	KindBitwiseXor         NodeKind = 46
	KindLeftShift          NodeKind = 47
	KindRightShift         NodeKind = 48
	KindUnsignedRightShift NodeKind = 49
	KindPreIncrement       NodeKind = 50
	KindPostIncrement      NodeKind = 51
	KindPreDecrement       NodeKind = 52
	KindPostDecrement      NodeKind = 53

	// ========================================================================
	// Compound assignment operators (54-65)
	// ========================================================================

	KindAssignAdd                NodeKind = 54
	KindAssignSubtract           NodeKind = 55
	KindAssignMultiply           NodeKind = 56
	KindAssignDivide             NodeKind = 57
	KindAssignModulo             NodeKind = 58
	KindAssignExponent           NodeKind = 59
	KindAssignBitwiseOr          NodeKind = 60
	KindAssignBitwiseAnd         NodeKind = 61
	KindAssignBitwiseXor         NodeKind = 62
	KindAssignLeftShift          NodeKind = 63
	KindAssignRightShift         NodeKind = 64
	KindAssignUnsignedRightShift NodeKind = 65

	// ========================================================================
	// Modern expression forms (66-83)
	// ========================================================================

	KindYield                  NodeKind = 66
	KindAwait                  NodeKind = 67
	KindDelete                 NodeKind = 68
	KindTaggedTemplateLit      NodeKind = 69
	KindTemplateLit            NodeKind = 70
	KindTemplateLitSub         NodeKind = 71
	KindTemplateLitString      NodeKind = 72
	KindNewTarget              NodeKind = 73
	KindComputedProp           NodeKind = 74
	KindImportMeta             NodeKind = 75
	KindOptChainPropertyAccess NodeKind = 76
	KindOptChainCall           NodeKind = 77
	KindOptChainElementAccess  NodeKind = 78
	KindCoalesce               NodeKind = 79
	KindDynamicImport          NodeKind = 80
	KindAssignOr               NodeKind = 81
	KindAssignAnd              NodeKind = 82
	KindAssignCoalesce         NodeKind = 83

	// ========================================================================
	// Statements (84-103)
	// ========================================================================

	KindExpressionStatement NodeKind = 84
	KindBreakStatement      NodeKind = 85
	KindContinueStatement   NodeKind = 86
	KindDebuggerStatement   NodeKind = 87
	KindDoStatement         NodeKind = 88
	KindForStatement        NodeKind = 89
	KindForInStatement      NodeKind = 90
	KindForOfStatement      NodeKind = 91
	KindForAwaitOfStatement NodeKind = 92
	KindIfStatement         NodeKind = 93
	KindReturnStatement     NodeKind = 94
	KindSwitchStatement     NodeKind = 95
	KindSwitchBody          NodeKind = 96
	KindThrowStatement      NodeKind = 97
	KindTryStatement        NodeKind = 98
	KindWhileStatement      NodeKind = 99
	KindEmpty               NodeKind = 100
	KindWith                NodeKind = 101
	KindImport              NodeKind = 102
	KindExport              NodeKind = 103

	// ========================================================================
	// Declarations (104-108)
	// ========================================================================

	KindVarDeclaration   NodeKind = 104
	KindConstDeclaration NodeKind = 105
	KindLetDeclaration   NodeKind = 106
	KindFunctionLiteral  NodeKind = 107
	KindClassLiteral     NodeKind = 108

	// ========================================================================
	// Blocks, labels and class bodies (109-118)
	// ========================================================================

	KindBlock              NodeKind = 109
	KindLabeledStatement   NodeKind = 110
	KindLabeledName        NodeKind = 111
	KindClassMembers       NodeKind = 112
	KindMethodDeclaration  NodeKind = 113
	KindFieldDeclaration   NodeKind = 114
	KindComputedPropField  NodeKind = 115
	KindParameterList      NodeKind = 116
	KindRenamableStringKey NodeKind = 117
	KindQuotedStringKey    NodeKind = 118

	// ========================================================================
	// Switch arms, catch, patterns (119-126)
	// ========================================================================

	KindCase             NodeKind = 119
	KindDefaultCase      NodeKind = 120
	KindCatch            NodeKind = 121
	KindSuper            NodeKind = 122
	KindArrayPattern     NodeKind = 123
	KindObjectPattern    NodeKind = 124
	KindDestructuringLHS NodeKind = 125
	KindDefaultValue     NodeKind = 126

	// ========================================================================
	// Accessor definitions (127-130)
	// ========================================================================

	KindRenamableGetterDef NodeKind = 127
	KindQuotedGetterDef    NodeKind = 128
	KindRenamableSetterDef NodeKind = 129
	KindQuotedSetterDef    NodeKind = 130

	// ========================================================================
	// Modules, rest and spread (131-140)
	// ========================================================================

	KindImportSpecs  NodeKind = 131
	KindImportSpec   NodeKind = 132
	KindImportStar   NodeKind = 133
	KindExportSpecs  NodeKind = 134
	KindExportSpec   NodeKind = 135
	KindModuleBody   NodeKind = 136
	KindIterRest     NodeKind = 137
	KindIterSpread   NodeKind = 138
	KindObjectRest   NodeKind = 139
	KindObjectSpread NodeKind = 140
)

// kindNames maps kinds to their wire-schema names.
var kindNames = map[NodeKind]string{
	KindUnspecified: "NODE_KIND_UNSPECIFIED",

	KindSourceFile:    "SOURCE_FILE",
	KindNumberLiteral: "NUMBER_LITERAL",
	KindStringLiteral: "STRING_LITERAL",
	KindIdentifier:    "IDENTIFIER",
	KindFalse:         "FALSE",
	KindTrue:          "TRUE",
	KindNull:          "NULL",
	KindThis:          "THIS",
	KindVoid:          "VOID",
	KindBigIntLiteral: "BIGINT_LITERAL",
	KindRegexLiteral:  "REGEX_LITERAL",
	KindArrayLiteral:  "ARRAY_LITERAL",
	KindObjectLiteral: "OBJECT_LITERAL",

	KindAssignment:     "ASSIGNMENT",
	KindCall:           "CALL",
	KindNew:            "NEW",
	KindPropertyAccess: "PROPERTY_ACCESS",
	KindElementAccess:  "ELEMENT_ACCESS",

	KindComma:              "COMMA",
	KindBooleanOr:          "BOOLEAN_OR",
	KindBooleanAnd:         "BOOLEAN_AND",
	KindHook:               "HOOK",
	KindEqual:              "EQUAL",
	KindNotEqual:           "NOT_EQUAL",
	KindLessThan:           "LESS_THAN",
	KindLessThanEqual:      "LESS_THAN_EQUAL",
	KindGreaterThan:        "GREATER_THAN",
	KindGreaterThanEqual:   "GREATER_THAN_EQUAL",
	KindTripleEqual:        "TRIPLE_EQUAL",
	KindNotTripleEqual:     "NOT_TRIPLE_EQUAL",
	KindNot:                "NOT",
	KindPositive:           "POSITIVE",
	KindNegative:           "NEGATIVE",
	KindTypeOf:             "TYPEOF",
	KindInstanceOf:         "INSTANCEOF",
	KindIn:                 "IN",
	KindAdd:                "ADD",
	KindSubtract:           "SUBTRACT",
	KindMultiply:           "MULTIPLY",
	KindDivide:             "DIVIDE",
	KindModulo:             "MODULO",
	KindExponent:           "EXPONENT",
	KindBitwiseNot:         "BITWISE_NOT",
	KindBitwiseOr:          "BITWISE_OR",
	KindBitwiseAnd:         "BITWISE_AND",
	KindBitwiseXor:         "BITWISE_XOR",
	KindLeftShift:          "LEFT_SHIFT",
	KindRightShift:         "RIGHT_SHIFT",
	KindUnsignedRightShift: "UNSIGNED_RIGHT_SHIFT",
	KindPreIncrement:       "PRE_INCREMENT",
	KindPostIncrement:      "POST_INCREMENT",
	KindPreDecrement:       "PRE_DECREMENT",
	KindPostDecrement:      "POST_DECREMENT",

	KindAssignAdd:                "ASSIGN_ADD",
	KindAssignSubtract:           "ASSIGN_SUBTRACT",
	KindAssignMultiply:           "ASSIGN_MULTIPLY",
	KindAssignDivide:             "ASSIGN_DIVIDE",
	KindAssignModulo:             "ASSIGN_MODULO",
	KindAssignExponent:           "ASSIGN_EXPONENT",
	KindAssignBitwiseOr:          "ASSIGN_BITWISE_OR",
	KindAssignBitwiseAnd:         "ASSIGN_BITWISE_AND",
	KindAssignBitwiseXor:         "ASSIGN_BITWISE_XOR",
	KindAssignLeftShift:          "ASSIGN_LEFT_SHIFT",
	KindAssignRightShift:         "ASSIGN_RIGHT_SHIFT",
	KindAssignUnsignedRightShift: "ASSIGN_UNSIGNED_RIGHT_SHIFT",

	KindYield:                  "YIELD",
	KindAwait:                  "AWAIT",
	KindDelete:                 "DELETE",
	KindTaggedTemplateLit:      "TAGGED_TEMPLATELIT",
	KindTemplateLit:            "TEMPLATELIT",
	KindTemplateLitSub:         "TEMPLATELIT_SUB",
	KindTemplateLitString:      "TEMPLATELIT_STRING",
	KindNewTarget:              "NEW_TARGET",
	KindComputedProp:           "COMPUTED_PROP",
	KindImportMeta:             "IMPORT_META",
	KindOptChainPropertyAccess: "OPTCHAIN_PROPERTY_ACCESS",
	KindOptChainCall:           "OPTCHAIN_CALL",
	KindOptChainElementAccess:  "OPTCHAIN_ELEMENT_ACCESS",
	KindCoalesce:               "COALESCE",
	KindDynamicImport:          "DYNAMIC_IMPORT",
	KindAssignOr:               "ASSIGN_OR",
	KindAssignAnd:              "ASSIGN_AND",
	KindAssignCoalesce:         "ASSIGN_COALESCE",

	KindExpressionStatement: "EXPRESSION_STATEMENT",
	KindBreakStatement:      "BREAK_STATEMENT",
	KindContinueStatement:   "CONTINUE_STATEMENT",
	KindDebuggerStatement:   "DEBUGGER_STATEMENT",
	KindDoStatement:         "DO_STATEMENT",
	KindForStatement:        "FOR_STATEMENT",
	KindForInStatement:      "FOR_IN_STATEMENT",
	KindForOfStatement:      "FOR_OF_STATEMENT",
	KindForAwaitOfStatement: "FOR_AWAIT_OF_STATEMENT",
	KindIfStatement:         "IF_STATEMENT",
	KindReturnStatement:     "RETURN_STATEMENT",
	KindSwitchStatement:     "SWITCH_STATEMENT",
	KindSwitchBody:          "SWITCH_BODY",
	KindThrowStatement:      "THROW_STATEMENT",
	KindTryStatement:        "TRY_STATEMENT",
	KindWhileStatement:      "WHILE_STATEMENT",
	KindEmpty:               "EMPTY",
	KindWith:                "WITH",
	KindImport:              "IMPORT",
	KindExport:              "EXPORT",

	KindVarDeclaration:   "VAR_DECLARATION",
	KindConstDeclaration: "CONST_DECLARATION",
	KindLetDeclaration:   "LET_DECLARATION",
	KindFunctionLiteral:  "FUNCTION_LITERAL",
	KindClassLiteral:     "CLASS_LITERAL",

	KindBlock:              "BLOCK",
	KindLabeledStatement:   "LABELED_STATEMENT",
	KindLabeledName:        "LABELED_NAME",
	KindClassMembers:       "CLASS_MEMBERS",
	KindMethodDeclaration:  "METHOD_DECLARATION",
	KindFieldDeclaration:   "FIELD_DECLARATION",
	KindComputedPropField:  "COMPUTED_PROP_FIELD",
	KindParameterList:      "PARAMETER_LIST",
	KindRenamableStringKey: "RENAMABLE_STRING_KEY",
	KindQuotedStringKey:    "QUOTED_STRING_KEY",

	KindCase:             "CASE",
	KindDefaultCase:      "DEFAULT_CASE",
	KindCatch:            "CATCH",
	KindSuper:            "SUPER",
	KindArrayPattern:     "ARRAY_PATTERN",
	KindObjectPattern:    "OBJECT_PATTERN",
	KindDestructuringLHS: "DESTRUCTURING_LHS",
	KindDefaultValue:     "DEFAULT_VALUE",

	KindRenamableGetterDef: "RENAMABLE_GETTER_DEF",
	KindQuotedGetterDef:    "QUOTED_GETTER_DEF",
	KindRenamableSetterDef: "RENAMABLE_SETTER_DEF",
	KindQuotedSetterDef:    "QUOTED_SETTER_DEF",

	KindImportSpecs:  "IMPORT_SPECS",
	KindImportSpec:   "IMPORT_SPEC",
	KindImportStar:   "IMPORT_STAR",
	KindExportSpecs:  "EXPORT_SPECS",
	KindExportSpec:   "EXPORT_SPEC",
	KindModuleBody:   "MODULE_BODY",
	KindIterRest:     "ITER_REST",
	KindIterSpread:   "ITER_SPREAD",
	KindObjectRest:   "OBJECT_REST",
	KindObjectSpread: "OBJECT_SPREAD",
}

// String returns the wire-schema name of a kind.
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(k))
}

// AllKinds returns every decodable kind, in value order. The zero sentinel is
// not included. Useful for testing that the node builder covers the whole
// enumeration.
func AllKinds() []NodeKind {
	kinds := make([]NodeKind, 0, len(kindNames)-1)
	for k := KindSourceFile; k <= KindObjectSpread; k++ {
		if _, ok := kindNames[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// KindCount returns the number of decodable kinds.
func KindCount() int {
	return len(kindNames) - 1
}
