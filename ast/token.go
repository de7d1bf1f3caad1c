package ast

import "fmt"

// Token identifies the shape of a Node. Every serialized node kind maps onto
// exactly one token; a few kinds share a token and are distinguished by node
// properties instead (quoted keys, postfix increment/decrement).
type Token uint8

const (
	// ========================================================================
	// Scripts and scaffolding
	// ========================================================================

	TokenScript Token = iota // Top of one decoded file
	TokenRoot                // Synthetic root above shadow scripts

	// ========================================================================
	// Literals and primaries
	// ========================================================================

	TokenNumber
	TokenStringLit
	TokenName
	TokenFalse
	TokenTrue
	TokenNull
	TokenThis
	TokenVoid
	TokenBigInt
	TokenRegexp
	TokenArrayLit
	TokenObjectLit

	// ========================================================================
	// Accesses, calls and constructions
	// ========================================================================

	TokenAssign
	TokenCall
	TokenNew
	TokenGetProp
	TokenGetElem
	TokenNewTarget
	TokenImportMeta
	TokenDynamicImport
	TokenOptChainGetProp
	TokenOptChainCall
	TokenOptChainGetElem

	// ========================================================================
	// Binary, logical and unary operators
	// ========================================================================

	TokenComma
	TokenOr
	TokenAnd
	TokenCoalesce
	TokenHook
	TokenEq
	TokenNe
	TokenLt
	TokenLe
	TokenGt
	TokenGe
	TokenSheq
	TokenShne
	TokenNot
	TokenPos
	TokenNeg
	TokenTypeOf
	TokenInstanceOf
	TokenIn
	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	TokenMod
	TokenExponent
	TokenBitNot
	TokenBitOr
	TokenBitAnd
	TokenBitXor
	TokenLsh
	TokenRsh
	TokenUrsh
	TokenInc // Prefix unless the postfix property is set
	TokenDec
	TokenDelProp
	TokenYield
	TokenAwait

	// ========================================================================
	// Compound assignment operators
	// ========================================================================

	TokenAssignAdd
	TokenAssignSub
	TokenAssignMul
	TokenAssignDiv
	TokenAssignMod
	TokenAssignExponent
	TokenAssignBitOr
	TokenAssignBitAnd
	TokenAssignBitXor
	TokenAssignLsh
	TokenAssignRsh
	TokenAssignUrsh
	TokenAssignOr
	TokenAssignAnd
	TokenAssignCoalesce

	// ========================================================================
	// Template literals
	// ========================================================================

	TokenTemplateLit
	TokenTaggedTemplateLit
	TokenTemplateLitSub
	TokenTemplateLitString

	// ========================================================================
	// Statements
	// ========================================================================

	TokenExprResult
	TokenBreak
	TokenContinue
	TokenDebugger
	TokenDo
	TokenFor
	TokenForIn
	TokenForOf
	TokenForAwaitOf
	TokenIf
	TokenReturn
	TokenSwitch
	TokenSwitchBody
	TokenCase
	TokenDefaultCase
	TokenThrow
	TokenTry
	TokenCatch
	TokenWhile
	TokenEmpty
	TokenWith
	TokenBlock
	TokenLabel
	TokenLabelName

	// ========================================================================
	// Declarations
	// ========================================================================

	TokenVar
	TokenConst
	TokenLet
	TokenFunction
	TokenParamList
	TokenDefaultValue

	// ========================================================================
	// Classes and object members
	// ========================================================================

	TokenClass
	TokenClassMembers
	TokenMemberFunctionDef
	TokenMemberFieldDef
	TokenComputedFieldDef
	TokenComputedProp
	TokenStringKey
	TokenGetterDef
	TokenSetterDef
	TokenSuper

	// ========================================================================
	// Modules
	// ========================================================================

	TokenImport
	TokenImportSpecs
	TokenImportSpec
	TokenImportStar
	TokenExport
	TokenExportSpecs
	TokenExportSpec
	TokenModuleBody

	// ========================================================================
	// Destructuring, rest and spread
	// ========================================================================

	TokenArrayPattern
	TokenObjectPattern
	TokenDestructuringLHS
	TokenIterRest
	TokenIterSpread
	TokenObjectRest
	TokenObjectSpread
)

// tokenNames maps tokens to the names used by the tree dumper and in errors.
var tokenNames = map[Token]string{
	TokenScript: "SCRIPT",
	TokenRoot:   "ROOT",

	TokenNumber:    "NUMBER",
	TokenStringLit: "STRINGLIT",
	TokenName:      "NAME",
	TokenFalse:     "FALSE",
	TokenTrue:      "TRUE",
	TokenNull:      "NULL",
	TokenThis:      "THIS",
	TokenVoid:      "VOID",
	TokenBigInt:    "BIGINT",
	TokenRegexp:    "REGEXP",
	TokenArrayLit:  "ARRAYLIT",
	TokenObjectLit: "OBJECTLIT",

	TokenAssign:          "ASSIGN",
	TokenCall:            "CALL",
	TokenNew:             "NEW",
	TokenGetProp:         "GETPROP",
	TokenGetElem:         "GETELEM",
	TokenNewTarget:       "NEW_TARGET",
	TokenImportMeta:      "IMPORT_META",
	TokenDynamicImport:   "DYNAMIC_IMPORT",
	TokenOptChainGetProp: "OPTCHAIN_GETPROP",
	TokenOptChainCall:    "OPTCHAIN_CALL",
	TokenOptChainGetElem: "OPTCHAIN_GETELEM",

	TokenComma:      "COMMA",
	TokenOr:         "OR",
	TokenAnd:        "AND",
	TokenCoalesce:   "COALESCE",
	TokenHook:       "HOOK",
	TokenEq:         "EQ",
	TokenNe:         "NE",
	TokenLt:         "LT",
	TokenLe:         "LE",
	TokenGt:         "GT",
	TokenGe:         "GE",
	TokenSheq:       "SHEQ",
	TokenShne:       "SHNE",
	TokenNot:        "NOT",
	TokenPos:        "POS",
	TokenNeg:        "NEG",
	TokenTypeOf:     "TYPEOF",
	TokenInstanceOf: "INSTANCEOF",
	TokenIn:         "IN",
	TokenAdd:        "ADD",
	TokenSub:        "SUB",
	TokenMul:        "MUL",
	TokenDiv:        "DIV",
	TokenMod:        "MOD",
	TokenExponent:   "EXPONENT",
	TokenBitNot:     "BITNOT",
	TokenBitOr:      "BITOR",
	TokenBitAnd:     "BITAND",
	TokenBitXor:     "BITXOR",
	TokenLsh:        "LSH",
	TokenRsh:        "RSH",
	TokenUrsh:       "URSH",
	TokenInc:        "INC",
	TokenDec:        "DEC",
	TokenDelProp:    "DELPROP",
	TokenYield:      "YIELD",
	TokenAwait:      "AWAIT",

	TokenAssignAdd:      "ASSIGN_ADD",
	TokenAssignSub:      "ASSIGN_SUB",
	TokenAssignMul:      "ASSIGN_MUL",
	TokenAssignDiv:      "ASSIGN_DIV",
	TokenAssignMod:      "ASSIGN_MOD",
	TokenAssignExponent: "ASSIGN_EXPONENT",
	TokenAssignBitOr:    "ASSIGN_BITOR",
	TokenAssignBitAnd:   "ASSIGN_BITAND",
	TokenAssignBitXor:   "ASSIGN_BITXOR",
	TokenAssignLsh:      "ASSIGN_LSH",
	TokenAssignRsh:      "ASSIGN_RSH",
	TokenAssignUrsh:     "ASSIGN_URSH",
	TokenAssignOr:       "ASSIGN_OR",
	TokenAssignAnd:      "ASSIGN_AND",
	TokenAssignCoalesce: "ASSIGN_COALESCE",

	TokenTemplateLit:       "TEMPLATELIT",
	TokenTaggedTemplateLit: "TAGGED_TEMPLATELIT",
	TokenTemplateLitSub:    "TEMPLATELIT_SUB",
	TokenTemplateLitString: "TEMPLATELIT_STRING",

	TokenExprResult:  "EXPR_RESULT",
	TokenBreak:       "BREAK",
	TokenContinue:    "CONTINUE",
	TokenDebugger:    "DEBUGGER",
	TokenDo:          "DO",
	TokenFor:         "FOR",
	TokenForIn:       "FOR_IN",
	TokenForOf:       "FOR_OF",
	TokenForAwaitOf:  "FOR_AWAIT_OF",
	TokenIf:          "IF",
	TokenReturn:      "RETURN",
	TokenSwitch:      "SWITCH",
	TokenSwitchBody:  "SWITCH_BODY",
	TokenCase:        "CASE",
	TokenDefaultCase: "DEFAULT_CASE",
	TokenThrow:       "THROW",
	TokenTry:         "TRY",
	TokenCatch:       "CATCH",
	TokenWhile:       "WHILE",
	TokenEmpty:       "EMPTY",
	TokenWith:        "WITH",
	TokenBlock:       "BLOCK",
	TokenLabel:       "LABEL",
	TokenLabelName:   "LABEL_NAME",

	TokenVar:          "VAR",
	TokenConst:        "CONST",
	TokenLet:          "LET",
	TokenFunction:     "FUNCTION",
	TokenParamList:    "PARAM_LIST",
	TokenDefaultValue: "DEFAULT_VALUE",

	TokenClass:             "CLASS",
	TokenClassMembers:      "CLASS_MEMBERS",
	TokenMemberFunctionDef: "MEMBER_FUNCTION_DEF",
	TokenMemberFieldDef:    "MEMBER_FIELD_DEF",
	TokenComputedFieldDef:  "COMPUTED_FIELD_DEF",
	TokenComputedProp:      "COMPUTED_PROP",
	TokenStringKey:         "STRING_KEY",
	TokenGetterDef:         "GETTER_DEF",
	TokenSetterDef:         "SETTER_DEF",
	TokenSuper:             "SUPER",

	TokenImport:      "IMPORT",
	TokenImportSpecs: "IMPORT_SPECS",
	TokenImportSpec:  "IMPORT_SPEC",
	TokenImportStar:  "IMPORT_STAR",
	TokenExport:      "EXPORT",
	TokenExportSpecs: "EXPORT_SPECS",
	TokenExportSpec:  "EXPORT_SPEC",
	TokenModuleBody:  "MODULE_BODY",

	TokenArrayPattern:     "ARRAY_PATTERN",
	TokenObjectPattern:    "OBJECT_PATTERN",
	TokenDestructuringLHS: "DESTRUCTURING_LHS",
	TokenIterRest:         "ITER_REST",
	TokenIterSpread:       "ITER_SPREAD",
	TokenObjectRest:       "OBJECT_REST",
	TokenObjectSpread:     "OBJECT_SPREAD",
}

// String returns the dump name of a token.
func (t Token) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
}

// AllTokens returns a slice of all defined tokens.
// Useful for testing that all tokens have names.
func AllTokens() []Token {
	tokens := make([]Token, 0, len(tokenNames))
	for t := range tokenNames {
		tokens = append(tokens, t)
	}
	return tokens
}

// TokenCount returns the number of defined tokens.
func TokenCount() int {
	return len(tokenNames)
}
