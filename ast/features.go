package ast

import (
	"fmt"
	"strings"
)

// Feature is one language feature the decoder can observe while rebuilding a
// script. The accumulated set answers "which language level does this file
// need" without another pass over the tree.
type Feature uint8

const (
	FeatureArrowFunctions Feature = iota
	FeatureAsyncFunctions
	FeatureAsyncGenerators
	FeatureArrayDestructuring
	FeatureArrayPatternRest
	FeatureBigInt
	FeatureBlockScopedFunctionDecl
	FeatureClasses
	FeatureClassGetterSetter
	FeatureClassStaticBlock
	FeatureComputedProperties
	FeatureConstDeclarations
	FeatureDefaultParameters
	FeatureDynamicImport
	FeatureExponentOp
	FeatureExtendedObjectLiterals
	FeatureForAwaitOf
	FeatureForOf
	FeatureGenerators
	FeatureGetter
	FeatureLetDeclarations
	FeatureLogicalAssignment
	FeatureMemberDeclarations
	FeatureModules
	FeatureNewTarget
	FeatureNullCoalesceOp
	FeatureObjectDestructuring
	FeatureObjectLiteralsWithSpread
	FeatureObjectPatternRest
	FeatureOptionalCatchBinding
	FeatureOptionalChaining
	FeaturePublicClassFields
	FeatureRestParameters
	FeatureSetter
	FeatureSpreadExpressions
	FeatureSuper
	FeatureTemplateLiterals

	featureCount // must stay last
)

// featureNames maps features to their canonical names. The names are stored
// in the feature index, so they are frozen.
var featureNames = map[Feature]string{
	FeatureArrowFunctions:           "arrow_functions",
	FeatureAsyncFunctions:           "async_functions",
	FeatureAsyncGenerators:          "async_generators",
	FeatureArrayDestructuring:       "array_destructuring",
	FeatureArrayPatternRest:         "array_pattern_rest",
	FeatureBigInt:                   "bigint",
	FeatureBlockScopedFunctionDecl:  "block_scoped_function_declaration",
	FeatureClasses:                  "classes",
	FeatureClassGetterSetter:        "class_getter_setter",
	FeatureClassStaticBlock:         "class_static_block",
	FeatureComputedProperties:       "computed_properties",
	FeatureConstDeclarations:        "const_declarations",
	FeatureDefaultParameters:        "default_parameters",
	FeatureDynamicImport:            "dynamic_import",
	FeatureExponentOp:               "exponent_op",
	FeatureExtendedObjectLiterals:   "extended_object_literals",
	FeatureForAwaitOf:               "for_await_of",
	FeatureForOf:                    "for_of",
	FeatureGenerators:               "generators",
	FeatureGetter:                   "getter",
	FeatureLetDeclarations:          "let_declarations",
	FeatureLogicalAssignment:        "logical_assignment",
	FeatureMemberDeclarations:       "member_declarations",
	FeatureModules:                  "modules",
	FeatureNewTarget:                "new_target",
	FeatureNullCoalesceOp:           "null_coalesce_op",
	FeatureObjectDestructuring:      "object_destructuring",
	FeatureObjectLiteralsWithSpread: "object_literals_with_spread",
	FeatureObjectPatternRest:        "object_pattern_rest",
	FeatureOptionalCatchBinding:     "optional_catch_binding",
	FeatureOptionalChaining:         "optional_chaining",
	FeaturePublicClassFields:        "public_class_fields",
	FeatureRestParameters:           "rest_parameters",
	FeatureSetter:                   "setter",
	FeatureSpreadExpressions:        "spread_expressions",
	FeatureSuper:                    "super",
	FeatureTemplateLiterals:         "template_literals",
}

// String returns the canonical name of a feature.
func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(f))
}

// FeatureByName resolves a canonical feature name.
func FeatureByName(name string) (Feature, bool) {
	for f, n := range featureNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// AllFeatures returns all defined features in declaration order.
func AllFeatures() []Feature {
	features := make([]Feature, 0, featureCount)
	for f := Feature(0); f < featureCount; f++ {
		features = append(features, f)
	}
	return features
}

// FeatureCount returns the number of defined features.
func FeatureCount() int {
	return int(featureCount)
}

// FeatureSet is an immutable set of features. The zero value is the empty
// set, which is what every script summary starts from.
type FeatureSet uint64

// Add returns the set extended with f.
func (s FeatureSet) Add(f Feature) FeatureSet {
	return s | 1<<f
}

// Has reports whether f is in the set.
func (s FeatureSet) Has(f Feature) bool {
	return s&(1<<f) != 0
}

// Union returns the union of both sets.
func (s FeatureSet) Union(o FeatureSet) FeatureSet {
	return s | o
}

// Empty reports whether no feature is set.
func (s FeatureSet) Empty() bool {
	return s == 0
}

// Names returns the canonical names of all features in the set, in
// declaration order.
func (s FeatureSet) Names() []string {
	var names []string
	for f := Feature(0); f < featureCount; f++ {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	return names
}

// String renders the set as a comma-separated list of feature names. This is
// the form the feature index stores.
func (s FeatureSet) String() string {
	return strings.Join(s.Names(), ",")
}

// ParseFeatureSet parses the comma-separated form produced by String.
// Unknown names are rejected.
func ParseFeatureSet(text string) (FeatureSet, error) {
	var set FeatureSet
	if text == "" {
		return set, nil
	}
	for _, name := range strings.Split(text, ",") {
		f, ok := FeatureByName(strings.TrimSpace(name))
		if !ok {
			return 0, fmt.Errorf("unknown feature name %q", name)
		}
		set = set.Add(f)
	}
	return set, nil
}
