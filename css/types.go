// Package css compiles declaratively nested style trees into flat CSS text.
//
// A style tree is built from Nodes (one selector's declarations plus nested
// rules) grouped into ordered RuleSets. The compiler lowers a RuleSet into a
// linear sequence of CSS rule strings, composing selectors on the way down and
// hoisting inline @keyframes blocks to the point right after the rule that
// references them.
package css

// Node holds one selector's declarative contents. Keys are either a property
// name in humped form ("marginTop"), a pseudo-selector starting with ':'
// (":hover"), the nesting key KeyNested whose value is a RuleSet (or a
// map[string]Node), or KeyAnimation whose value is a string, an *Animation or
// a slice of either.
//
// Nodes are plain maps; the compiler iterates keys in sorted order so output
// does not depend on construction order. nil values are dropped.
type Node map[string]any

const (
	// KeyNested introduces a nested RuleSet inside a Node.
	KeyNested = "$"
	// KeyAnimation introduces an animation declaration inside a Node.
	KeyAnimation = "animation"
)

// Rule pairs selectors with the Node they share. An entry with several
// selectors expands to one emitted rule per selector, in listed order.
type Rule struct {
	Selectors []string
	Style     Node
}

// RuleSet is an ordered sequence of rules forming one compilation unit.
type RuleSet []Rule

// R builds a single-selector rule.
func R(selector string, style Node) Rule {
	return Rule{Selectors: []string{selector}, Style: style}
}

// RN builds a rule shared by several selectors.
func RN(selectors []string, style Node) Rule {
	return Rule{Selectors: selectors, Style: style}
}

// Fn is a CSS function value with positional arguments, e.g. Fn{"rotate", 45}
// formats as "rotate(45deg)". Args may be a scalar, a slice of scalars or a
// nested Fn. A []Fn value formats as space-joined functions (the usual
// transform list).
type Fn struct {
	Name string
	Args any
}

// Decl is a single (property, value) pair in declaration order.
type Decl struct {
	Prop  string
	Value any
}
