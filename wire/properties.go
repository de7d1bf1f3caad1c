package wire

import "fmt"

// NodeProperty is a bit number in a node record's boolean_properties mask.
// Bit numbers are frozen; bit 0 is reserved and never set.
type NodeProperty uint8

const (
	PropArrowFn              NodeProperty = 1
	PropAsyncFn              NodeProperty = 2
	PropGeneratorFn          NodeProperty = 3
	PropYieldAll             NodeProperty = 4
	PropIsParenthesized      NodeProperty = 5
	PropSynthetic            NodeProperty = 6
	PropAddedBlock           NodeProperty = 7
	PropIsConstantName       NodeProperty = 8
	PropIsDeclaredConstant   NodeProperty = 9
	PropIsNamespace          NodeProperty = 10
	PropDirectEval           NodeProperty = 11
	PropFreeCall             NodeProperty = 12
	PropStaticMember         NodeProperty = 13
	PropComputedPropMethod   NodeProperty = 14
	PropComputedPropGetter   NodeProperty = 15
	PropComputedPropSetter   NodeProperty = 16
	PropColorFromCast        NodeProperty = 17
	PropNonIndexable         NodeProperty = 18
	PropGoogModule           NodeProperty = 19
	PropTranspiledEs6        NodeProperty = 20
	PropDeletedNode          NodeProperty = 21
	PropModuleAlias          NodeProperty = 22
	PropUnusedParameter      NodeProperty = 23
	PropModuleExport         NodeProperty = 24
	PropIsShorthandProperty  NodeProperty = 25
	PropEs6Module            NodeProperty = 26
	PropStartOfOptChain      NodeProperty = 27
	PropTrailingComma        NodeProperty = 28
	PropClosureUnawareShadow NodeProperty = 29
)

// propertyNames maps property bits to the names used by the tree dumper.
var propertyNames = map[NodeProperty]string{
	PropArrowFn:              "arrow_fn",
	PropAsyncFn:              "async_fn",
	PropGeneratorFn:          "generator_fn",
	PropYieldAll:             "yield_all",
	PropIsParenthesized:      "is_parenthesized",
	PropSynthetic:            "synthetic",
	PropAddedBlock:           "added_block",
	PropIsConstantName:       "is_constant_name",
	PropIsDeclaredConstant:   "is_declared_constant",
	PropIsNamespace:          "is_namespace",
	PropDirectEval:           "direct_eval",
	PropFreeCall:             "free_call",
	PropStaticMember:         "static_member",
	PropComputedPropMethod:   "computed_prop_method",
	PropComputedPropGetter:   "computed_prop_getter",
	PropComputedPropSetter:   "computed_prop_setter",
	PropColorFromCast:        "color_from_cast",
	PropNonIndexable:         "non_indexable",
	PropGoogModule:           "goog_module",
	PropTranspiledEs6:        "transpiled_es6",
	PropDeletedNode:          "deleted_node",
	PropModuleAlias:          "module_alias",
	PropUnusedParameter:      "unused_parameter",
	PropModuleExport:         "module_export",
	PropIsShorthandProperty:  "is_shorthand_property",
	PropEs6Module:            "es6_module",
	PropStartOfOptChain:      "start_of_opt_chain",
	PropTrailingComma:        "trailing_comma",
	PropClosureUnawareShadow: "closure_unaware_shadow",
}

// Mask returns the bitmask with only this property's bit set.
func (p NodeProperty) Mask() uint64 {
	return 1 << p
}

// String returns the dump name of a property bit.
func (p NodeProperty) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(p))
}

// AllProperties returns every defined property bit, in bit order.
func AllProperties() []NodeProperty {
	props := make([]NodeProperty, 0, len(propertyNames))
	for p := PropArrowFn; p <= PropClosureUnawareShadow; p++ {
		props = append(props, p)
	}
	return props
}

// PropertyNames returns the names of all defined properties set in mask, in
// bit order. Unknown bits are ignored.
func PropertyNames(mask uint64) []string {
	var names []string
	for _, p := range AllProperties() {
		if mask&p.Mask() != 0 {
			names = append(names, p.String())
		}
	}
	return names
}
