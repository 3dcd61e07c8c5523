package css

import (
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"
)

// Compiler lowers rule trees into flat CSS rule strings.
type Compiler struct {
	log *zap.Logger

	// animIndex counts anonymous animations per contextual selector within
	// one compile pass, so synthesized keyframes names stay unique.
	animIndex map[string]int
}

// NewCompiler creates a new style compiler.
func NewCompiler(log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{
		log:       log.Named("css-compiler"),
		animIndex: make(map[string]int),
	}
}

// Compile lowers a top-level rule set into an ordered sequence of CSS rule
// strings. Per rule the order is: the rule's own declarations, nested rules
// depth-first, then any @keyframes blocks hoisted out of the rule. The caller
// joins the strings with newlines.
func (c *Compiler) Compile(rs RuleSet) []string {
	c.animIndex = make(map[string]int)

	var out []string
	for _, r := range rs {
		for _, sel := range r.Selectors {
			c.compileEntry("", sel, r.Style, &out)
		}
	}
	return out
}

// CompileNode lowers a single (selector, node) pair, as used for registered
// styles where the selector is the generated class.
func (c *Compiler) CompileNode(selector string, node Node) []string {
	var out []string
	c.compileEntry("", selector, node, &out)
	return out
}

// compileEntry dispatches one (selector, node) pair against a parent
// selector. Conditional at-rules compile their body against the unchanged
// parent and wrap every emitted inner rule separately.
func (c *Compiler) compileEntry(parent, selector string, node Node, out *[]string) {
	if isConditionalAtRule(selector) {
		var inner []string
		c.compileNode(parent, node, &inner)
		for _, r := range inner {
			*out = append(*out, selector+" { "+r+" }")
		}
		return
	}
	c.compileNode(composeSelector(parent, selector), node, out)
}

// compileNode emits the node's own rule (when it has declarations), recurses
// into nested rules and appends hoisted keyframes blocks.
func (c *Compiler) compileNode(selector string, node Node, out *[]string) {
	res := c.split(node, selector)

	if decls := SerializeDecls(res.decls); decls != "" {
		if selector == "" {
			c.log.Warn("Declarations outside any selector, dropping", zap.String("decls", decls))
		} else {
			*out = append(*out, selector+" { "+decls+" }")
		}
	}

	for _, nr := range res.nested {
		c.compileEntry(selector, nr.selector, nr.node, out)
	}

	for _, kf := range res.keyframes {
		*out = append(*out, c.KeyframesBlock(kf.name, kf.frames))
	}
}

// KeyframesBlock renders one @keyframes block. Offsets are normalized (bare
// numbers and numeric-looking strings get a '%', "from"/"to" pass through)
// and emitted "from" first, percentages in natural numeric order, "to" last.
// Only plain declarations are supported inside an offset; nested constructs
// are dropped with a warning.
func (c *Compiler) KeyframesBlock(name string, frames Keyframes) string {
	offsets := make([]string, 0, len(frames))
	normalized := make(map[string]Node, len(frames))
	for off, node := range frames {
		n := normalizeOffset(off)
		offsets = append(offsets, n)
		normalized[n] = node
	}
	sort.Slice(offsets, func(i, j int) bool {
		return offsetLess(offsets[i], offsets[j])
	})

	var b strings.Builder
	b.WriteString("@keyframes ")
	b.WriteString(name)
	b.WriteString(" {")
	for _, off := range offsets {
		decls := c.keyframeDecls(name, off, normalized[off])
		b.WriteString("\n  ")
		b.WriteString(off)
		b.WriteString(" { ")
		b.WriteString(decls)
		b.WriteString(" }")
	}
	b.WriteString("\n}")
	return b.String()
}

// keyframeDecls serializes one offset's declarations, flattening away
// anything a keyframe cannot hold.
func (c *Compiler) keyframeDecls(name, offset string, node Node) string {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var decls []Decl
	for _, key := range keys {
		value := node[key]
		if value == nil {
			continue
		}
		if key == KeyNested || key == KeyAnimation || strings.HasPrefix(key, ":") {
			c.log.Warn("Unsupported construct inside keyframe offset, dropping",
				zap.String("keyframes", name), zap.String("offset", offset), zap.String("key", key))
			continue
		}
		decls = append(decls, Decl{Prop: key, Value: value})
	}
	return SerializeDecls(decls)
}

// normalizeOffset appends '%' to bare numeric offsets; "from" and "to" (and
// anything already carrying a unit) pass through unchanged.
func normalizeOffset(off string) string {
	if off == "from" || off == "to" {
		return off
	}
	if _, err := strconv.ParseFloat(off, 64); err == nil {
		return off + "%"
	}
	return off
}

// offsetLess orders keyframe offsets: "from" first, "to" last, percentages
// in natural numeric order.
func offsetLess(a, b string) bool {
	switch {
	case a == b:
		return false
	case a == "from" || b == "to":
		return true
	case b == "from" || a == "to":
		return false
	default:
		return natural.Less(a, b)
	}
}
