package decoder

import (
	"fmt"
	"math/big"

	"github.com/jscomp/typedast/ast"
	"github.com/jscomp/typedast/wire"
)

// plainTokens maps the node kinds that carry no payload straight to their
// tokens. Kinds with a payload, or kinds that fold into a token plus a
// property bit, are handled in buildNode.
var plainTokens = map[wire.NodeKind]ast.Token{
	wire.KindSourceFile: ast.TokenScript,

	wire.KindFalse:         ast.TokenFalse,
	wire.KindTrue:          ast.TokenTrue,
	wire.KindNull:          ast.TokenNull,
	wire.KindThis:          ast.TokenThis,
	wire.KindVoid:          ast.TokenVoid,
	wire.KindRegexLiteral:  ast.TokenRegexp,
	wire.KindArrayLiteral:  ast.TokenArrayLit,
	wire.KindObjectLiteral: ast.TokenObjectLit,

	wire.KindAssignment:    ast.TokenAssign,
	wire.KindCall:          ast.TokenCall,
	wire.KindNew:           ast.TokenNew,
	wire.KindElementAccess: ast.TokenGetElem,

	wire.KindComma:              ast.TokenComma,
	wire.KindBooleanOr:          ast.TokenOr,
	wire.KindBooleanAnd:         ast.TokenAnd,
	wire.KindHook:               ast.TokenHook,
	wire.KindEqual:              ast.TokenEq,
	wire.KindNotEqual:           ast.TokenNe,
	wire.KindLessThan:           ast.TokenLt,
	wire.KindLessThanEqual:      ast.TokenLe,
	wire.KindGreaterThan:        ast.TokenGt,
	wire.KindGreaterThanEqual:   ast.TokenGe,
	wire.KindTripleEqual:        ast.TokenSheq,
	wire.KindNotTripleEqual:     ast.TokenShne,
	wire.KindNot:                ast.TokenNot,
	wire.KindPositive:           ast.TokenPos,
	wire.KindNegative:           ast.TokenNeg,
	wire.KindTypeOf:             ast.TokenTypeOf,
	wire.KindInstanceOf:         ast.TokenInstanceOf,
	wire.KindIn:                 ast.TokenIn,
	wire.KindAdd:                ast.TokenAdd,
	wire.KindSubtract:           ast.TokenSub,
	wire.KindMultiply:           ast.TokenMul,
	wire.KindDivide:             ast.TokenDiv,
	wire.KindModulo:             ast.TokenMod,
	wire.KindExponent:           ast.TokenExponent,
	wire.KindBitwiseNot:         ast.TokenBitNot,
	wire.KindBitwiseOr:          ast.TokenBitOr,
	wire.KindBitwiseAnd:         ast.TokenBitAnd,
	wire.KindBitwiseXor:         ast.TokenBitXor,
	wire.KindLeftShift:          ast.TokenLsh,
	wire.KindRightShift:         ast.TokenRsh,
	wire.KindUnsignedRightShift: ast.TokenUrsh,
	wire.KindPreIncrement:       ast.TokenInc,
	wire.KindPreDecrement:       ast.TokenDec,

	wire.KindAssignAdd:                ast.TokenAssignAdd,
	wire.KindAssignSubtract:           ast.TokenAssignSub,
	wire.KindAssignMultiply:           ast.TokenAssignMul,
	wire.KindAssignDivide:             ast.TokenAssignDiv,
	wire.KindAssignModulo:             ast.TokenAssignMod,
	wire.KindAssignExponent:           ast.TokenAssignExponent,
	wire.KindAssignBitwiseOr:          ast.TokenAssignBitOr,
	wire.KindAssignBitwiseAnd:         ast.TokenAssignBitAnd,
	wire.KindAssignBitwiseXor:         ast.TokenAssignBitXor,
	wire.KindAssignLeftShift:          ast.TokenAssignLsh,
	wire.KindAssignRightShift:         ast.TokenAssignRsh,
	wire.KindAssignUnsignedRightShift: ast.TokenAssignUrsh,

	wire.KindYield:                 ast.TokenYield,
	wire.KindAwait:                 ast.TokenAwait,
	wire.KindDelete:                ast.TokenDelProp,
	wire.KindTaggedTemplateLit:     ast.TokenTaggedTemplateLit,
	wire.KindTemplateLit:           ast.TokenTemplateLit,
	wire.KindTemplateLitSub:        ast.TokenTemplateLitSub,
	wire.KindNewTarget:             ast.TokenNewTarget,
	wire.KindComputedProp:          ast.TokenComputedProp,
	wire.KindImportMeta:            ast.TokenImportMeta,
	wire.KindOptChainCall:          ast.TokenOptChainCall,
	wire.KindOptChainElementAccess: ast.TokenOptChainGetElem,
	wire.KindCoalesce:              ast.TokenCoalesce,
	wire.KindDynamicImport:         ast.TokenDynamicImport,
	wire.KindAssignOr:              ast.TokenAssignOr,
	wire.KindAssignAnd:             ast.TokenAssignAnd,
	wire.KindAssignCoalesce:        ast.TokenAssignCoalesce,

	wire.KindExpressionStatement: ast.TokenExprResult,
	wire.KindBreakStatement:      ast.TokenBreak,
	wire.KindContinueStatement:   ast.TokenContinue,
	wire.KindDebuggerStatement:   ast.TokenDebugger,
	wire.KindDoStatement:         ast.TokenDo,
	wire.KindForStatement:        ast.TokenFor,
	wire.KindForInStatement:      ast.TokenForIn,
	wire.KindForOfStatement:      ast.TokenForOf,
	wire.KindForAwaitOfStatement: ast.TokenForAwaitOf,
	wire.KindIfStatement:         ast.TokenIf,
	wire.KindReturnStatement:     ast.TokenReturn,
	wire.KindSwitchStatement:     ast.TokenSwitch,
	wire.KindSwitchBody:          ast.TokenSwitchBody,
	wire.KindThrowStatement:      ast.TokenThrow,
	wire.KindTryStatement:        ast.TokenTry,
	wire.KindWhileStatement:      ast.TokenWhile,
	wire.KindEmpty:               ast.TokenEmpty,
	wire.KindWith:                ast.TokenWith,
	wire.KindImport:              ast.TokenImport,
	wire.KindExport:              ast.TokenExport,

	wire.KindVarDeclaration:   ast.TokenVar,
	wire.KindConstDeclaration: ast.TokenConst,
	wire.KindLetDeclaration:   ast.TokenLet,
	wire.KindFunctionLiteral:  ast.TokenFunction,
	wire.KindClassLiteral:     ast.TokenClass,

	wire.KindBlock:             ast.TokenBlock,
	wire.KindLabeledStatement:  ast.TokenLabel,
	wire.KindClassMembers:      ast.TokenClassMembers,
	wire.KindComputedPropField: ast.TokenComputedFieldDef,
	wire.KindParameterList:     ast.TokenParamList,

	wire.KindCase:             ast.TokenCase,
	wire.KindDefaultCase:      ast.TokenDefaultCase,
	wire.KindCatch:            ast.TokenCatch,
	wire.KindSuper:            ast.TokenSuper,
	wire.KindArrayPattern:     ast.TokenArrayPattern,
	wire.KindObjectPattern:    ast.TokenObjectPattern,
	wire.KindDestructuringLHS: ast.TokenDestructuringLHS,
	wire.KindDefaultValue:     ast.TokenDefaultValue,

	wire.KindImportSpecs:  ast.TokenImportSpecs,
	wire.KindImportSpec:   ast.TokenImportSpec,
	wire.KindExportSpecs:  ast.TokenExportSpecs,
	wire.KindExportSpec:   ast.TokenExportSpec,
	wire.KindModuleBody:   ast.TokenModuleBody,
	wire.KindIterRest:     ast.TokenIterRest,
	wire.KindIterSpread:   ast.TokenIterSpread,
	wire.KindObjectRest:   ast.TokenObjectRest,
	wire.KindObjectSpread: ast.TokenObjectSpread,
}

// buildNode creates the tree node for one record: the token plus any
// payload. Source positions, properties, children and the shadow are the
// visitor's job.
func (d *ScriptDecoder) buildNode(wn *wire.AstNode) (*ast.Node, error) {
	if token, ok := plainTokens[wn.Kind]; ok {
		return &ast.Node{Token: token}, nil
	}

	switch wn.Kind {
	case wire.KindNumberLiteral:
		return &ast.Node{Token: ast.TokenNumber, Num: wn.DoubleValue}, nil

	case wire.KindStringLiteral:
		return d.stringNode(ast.TokenStringLit, wn)
	case wire.KindIdentifier:
		return d.stringNode(ast.TokenName, wn)
	case wire.KindPropertyAccess:
		return d.stringNode(ast.TokenGetProp, wn)
	case wire.KindOptChainPropertyAccess:
		return d.stringNode(ast.TokenOptChainGetProp, wn)
	case wire.KindLabeledName:
		return d.stringNode(ast.TokenLabelName, wn)
	case wire.KindMethodDeclaration:
		return d.stringNode(ast.TokenMemberFunctionDef, wn)
	case wire.KindFieldDeclaration:
		return d.stringNode(ast.TokenMemberFieldDef, wn)
	case wire.KindImportStar:
		return d.stringNode(ast.TokenImportStar, wn)

	case wire.KindBigIntLiteral:
		text, err := d.strings.Get(wn.StringValuePointer)
		if err != nil {
			return nil, err
		}
		value, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadBigInt, text)
		}
		return &ast.Node{Token: ast.TokenBigInt, BigInt: value}, nil

	case wire.KindTemplateLitString:
		return d.templateNode(wn)

	case wire.KindPostIncrement:
		return &ast.Node{Token: ast.TokenInc, Props: ast.PropIncrDecrPostfix.Mask()}, nil
	case wire.KindPostDecrement:
		return &ast.Node{Token: ast.TokenDec, Props: ast.PropIncrDecrPostfix.Mask()}, nil

	case wire.KindRenamableStringKey:
		return d.stringNode(ast.TokenStringKey, wn)
	case wire.KindQuotedStringKey:
		return d.quotedStringNode(ast.TokenStringKey, wn)
	case wire.KindRenamableGetterDef:
		return d.stringNode(ast.TokenGetterDef, wn)
	case wire.KindQuotedGetterDef:
		return d.quotedStringNode(ast.TokenGetterDef, wn)
	case wire.KindRenamableSetterDef:
		return d.stringNode(ast.TokenSetterDef, wn)
	case wire.KindQuotedSetterDef:
		return d.quotedStringNode(ast.TokenSetterDef, wn)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, wn.Kind)
}

// stringNode builds a node whose payload is one pooled string. Pointer 0
// resolves to the empty string; anonymous function names are spelled that
// way.
func (d *ScriptDecoder) stringNode(token ast.Token, wn *wire.AstNode) (*ast.Node, error) {
	s, err := d.strings.Get(wn.StringValuePointer)
	if err != nil {
		return nil, err
	}
	return &ast.Node{Token: token, Str: s}, nil
}

func (d *ScriptDecoder) quotedStringNode(token ast.Token, wn *wire.AstNode) (*ast.Node, error) {
	n, err := d.stringNode(token, wn)
	if err != nil {
		return nil, err
	}
	n.Props |= ast.PropQuoted.Mask()
	return n, nil
}

// templateNode builds a template literal string piece. A cooked pointer of
// 0 means the cooked spelling is absent, which tagged templates with
// illegal escape sequences produce.
func (d *ScriptDecoder) templateNode(wn *wire.AstNode) (*ast.Node, error) {
	tsv := wn.TemplateStringValue
	if tsv == nil {
		tsv = &wire.TemplateStringValue{}
	}
	n := &ast.Node{Token: ast.TokenTemplateLitString}
	if tsv.CookedStringPointer != 0 {
		cooked, err := d.strings.At(tsv.CookedStringPointer)
		if err != nil {
			return nil, err
		}
		n.Cooked = cooked
		n.HasCooked = true
	}
	raw, err := d.strings.Get(tsv.RawStringPointer)
	if err != nil {
		return nil, err
	}
	n.Raw = raw
	return n, nil
}
