package decoder

import "github.com/jscomp/typedast/ast"

// featureContext models the direct parent of a node during the decode walk,
// for feature classification only. The same token can mean different
// features in different positions, and the parent pointer does not exist
// yet while the tree is being built, so the walk carries this instead.
//
// Only the direct parent is modeled: a node nested inside a function body
// does not have the function context, only the function's immediate
// children do.
type featureContext uint8

const (
	// contextNothing turns feature recording off entirely. It is used for
	// shadow programs and sticks to every descendant.
	contextNothing featureContext = iota
	contextNone
	contextParamList
	contextClassMembers
	contextClass
	contextCatch
	// contextBlockScope is the top of a block scope: an if/while/for body
	// or a plain braced block.
	contextBlockScope
	contextFunction
)

// contextFor returns the context a node hands to its children.
func contextFor(parent featureContext, n *ast.Node) featureContext {
	if parent == contextNothing {
		return contextNothing
	}
	switch n.Token {
	case ast.TokenParamList:
		return contextParamList
	case ast.TokenClassMembers:
		return contextClassMembers
	case ast.TokenClass:
		return contextClass
	case ast.TokenCatch:
		return contextCatch
	case ast.TokenBlock:
		// A function body is a BLOCK too, but not a block scope.
		if parent == contextFunction {
			return contextNone
		}
		return contextBlockScope
	case ast.TokenFunction:
		return contextFunction
	default:
		return contextNone
	}
}

// recordFeatures classifies one decoded node and accumulates the language
// features it demonstrates into the script summary.
func (r *runner) recordFeatures(context featureContext, n *ast.Node) {
	switch n.Token {
	case ast.TokenFunction:
		if n.IsAsyncGeneratorFunction() {
			r.add(ast.FeatureAsyncGenerators)
		}
		if n.IsArrowFunction() {
			r.add(ast.FeatureArrowFunctions)
		}
		if n.IsAsyncFunction() {
			r.add(ast.FeatureAsyncFunctions)
		}
		if n.IsGeneratorFunction() {
			r.add(ast.FeatureGenerators)
		}
		if context == contextBlockScope {
			r.add(ast.FeatureBlockScopedFunctionDecl)
		}

	case ast.TokenStringKey:
		if n.IsShorthandProperty() {
			r.add(ast.FeatureExtendedObjectLiterals)
		}

	case ast.TokenDefaultValue:
		if context == contextParamList {
			r.add(ast.FeatureDefaultParameters)
		}

	case ast.TokenGetterDef:
		r.add(ast.FeatureGetter)
		if context == contextClassMembers {
			r.add(ast.FeatureClassGetterSetter)
		}

	case ast.TokenSetterDef:
		r.add(ast.FeatureSetter)
		if context == contextClassMembers {
			r.add(ast.FeatureClassGetterSetter)
		}

	case ast.TokenBlock:
		if context == contextClassMembers {
			r.add(ast.FeatureClassStaticBlock)
		}

	case ast.TokenEmpty:
		if context == contextCatch {
			r.add(ast.FeatureOptionalCatchBinding)
		}

	case ast.TokenIterRest:
		r.add(ast.FeatureArrayPatternRest)
		if context == contextParamList {
			r.add(ast.FeatureRestParameters)
		}

	case ast.TokenIterSpread:
		r.add(ast.FeatureSpreadExpressions)

	case ast.TokenObjectRest:
		r.add(ast.FeatureObjectPatternRest)

	case ast.TokenObjectSpread:
		r.add(ast.FeatureObjectLiteralsWithSpread)

	case ast.TokenBigInt:
		r.add(ast.FeatureBigInt)

	case ast.TokenExponent, ast.TokenAssignExponent:
		r.add(ast.FeatureExponentOp)

	case ast.TokenTaggedTemplateLit, ast.TokenTemplateLit:
		r.add(ast.FeatureTemplateLiterals)

	case ast.TokenNewTarget:
		r.add(ast.FeatureNewTarget)

	case ast.TokenComputedProp:
		r.add(ast.FeatureComputedProperties)

	case ast.TokenOptChainGetProp, ast.TokenOptChainCall, ast.TokenOptChainGetElem:
		r.add(ast.FeatureOptionalChaining)

	case ast.TokenCoalesce:
		r.add(ast.FeatureNullCoalesceOp)

	case ast.TokenDynamicImport:
		r.add(ast.FeatureDynamicImport)

	case ast.TokenAssignOr, ast.TokenAssignAnd:
		r.add(ast.FeatureLogicalAssignment)

	case ast.TokenAssignCoalesce:
		r.add(ast.FeatureNullCoalesceOp)
		r.add(ast.FeatureLogicalAssignment)

	case ast.TokenForOf:
		r.add(ast.FeatureForOf)

	case ast.TokenForAwaitOf:
		r.add(ast.FeatureForAwaitOf)

	case ast.TokenImport, ast.TokenExport:
		r.add(ast.FeatureModules)

	case ast.TokenConst:
		r.add(ast.FeatureConstDeclarations)

	case ast.TokenLet:
		r.add(ast.FeatureLetDeclarations)

	case ast.TokenClass:
		r.add(ast.FeatureClasses)

	case ast.TokenClassMembers, ast.TokenMemberFunctionDef:
		r.add(ast.FeatureMemberDeclarations)

	case ast.TokenMemberFieldDef, ast.TokenComputedFieldDef:
		r.add(ast.FeaturePublicClassFields)

	case ast.TokenSuper:
		r.add(ast.FeatureSuper)

	case ast.TokenArrayPattern:
		r.add(ast.FeatureArrayDestructuring)

	case ast.TokenObjectPattern:
		r.add(ast.FeatureObjectDestructuring)
	}
}

func (r *runner) add(f ast.Feature) {
	r.features = r.features.Add(f)
}
