package css

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// nestedRule is one (selector, node) pair produced by splitting.
type nestedRule struct {
	selector string
	node     Node
}

// hoistedKeyframes is an anonymous keyframe set queued for emission under its
// synthesized name.
type hoistedKeyframes struct {
	name   string
	frames Keyframes
}

// splitResult separates one Node into its three channels.
type splitResult struct {
	decls     []Decl
	nested    []nestedRule
	keyframes []hoistedKeyframes
}

// split iterates a Node once and channels every entry: plain declarations,
// nested rules ('$' rule sets and ':' pseudo-selectors) and animation values
// (resolved to a declaration plus hoisted keyframe sets). Node keys are
// visited in sorted order; nil values are dropped up front.
func (c *Compiler) split(node Node, contextSelector string) splitResult {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var res splitResult
	for _, key := range keys {
		value := node[key]
		if value == nil {
			continue
		}

		switch {
		case key == KeyNested:
			res.nested = append(res.nested, c.flattenRuleSet(value)...)
		case strings.HasPrefix(key, ":"):
			child, ok := value.(Node)
			if !ok {
				if m, isMap := value.(map[string]any); isMap {
					child = Node(m)
				} else {
					c.log.Warn("Pseudo-selector value is not a style node, dropping",
						zap.String("selector", contextSelector), zap.String("key", key))
					continue
				}
			}
			res.nested = append(res.nested, nestedRule{selector: "&" + key, node: child})
		case key == KeyAnimation:
			shorthand, hoisted, ok := c.resolveAnimation(value, contextSelector)
			if !ok {
				continue
			}
			res.decls = append(res.decls, Decl{Prop: key, Value: shorthand})
			res.keyframes = append(res.keyframes, hoisted...)
		default:
			res.decls = append(res.decls, Decl{Prop: key, Value: value})
		}
	}
	return res
}

// flattenRuleSet expands a nested rule set value into (selector, node) pairs,
// one per selector, preserving listed order. Accepts a RuleSet or a
// map[string]Node (iterated in sorted order).
func (c *Compiler) flattenRuleSet(value any) []nestedRule {
	var out []nestedRule
	switch rs := value.(type) {
	case RuleSet:
		for _, r := range rs {
			for _, sel := range r.Selectors {
				out = append(out, nestedRule{selector: sel, node: r.Style})
			}
		}
	case []Rule:
		return c.flattenRuleSet(RuleSet(rs))
	case map[string]Node:
		keys := make([]string, 0, len(rs))
		for k := range rs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, nestedRule{selector: k, node: rs[k]})
		}
	default:
		c.log.Warn("Nested key holds no rule set, dropping", zap.Any("value", value))
	}
	return out
}

// resolveAnimation turns an animation value (a string, an *Animation or a
// slice of either) into the CSS shorthand text plus any keyframe sets that
// must be hoisted. Plain strings pass through untouched. An animation whose
// keyframe set carries no name gets one synthesized from the contextual
// selector and a per-selector occurrence index, and its set is queued for
// hoisting.
func (c *Compiler) resolveAnimation(value any, contextSelector string) (string, []hoistedKeyframes, bool) {
	switch v := value.(type) {
	case string:
		return v, nil, true
	case *Animation:
		return c.resolveOneAnimation(v, contextSelector)
	case Animation:
		return c.resolveOneAnimation(&v, contextSelector)
	case []*Animation:
		anys := make([]any, len(v))
		for i, a := range v {
			anys[i] = a
		}
		return c.resolveAnimationList(anys, contextSelector)
	case []any:
		return c.resolveAnimationList(v, contextSelector)
	default:
		c.log.Warn("Unsupported animation value, dropping",
			zap.String("selector", contextSelector), zap.Any("value", value))
		return "", nil, false
	}
}

func (c *Compiler) resolveAnimationList(list []any, contextSelector string) (string, []hoistedKeyframes, bool) {
	var (
		parts   []string
		hoisted []hoistedKeyframes
	)
	for _, el := range list {
		s, h, ok := c.resolveAnimation(el, contextSelector)
		if !ok {
			continue
		}
		parts = append(parts, s)
		hoisted = append(hoisted, h...)
	}
	if len(parts) == 0 {
		return "", nil, false
	}
	return strings.Join(parts, ", "), hoisted, true
}

func (c *Compiler) resolveOneAnimation(a *Animation, contextSelector string) (string, []hoistedKeyframes, bool) {
	if a == nil {
		return "", nil, false
	}

	if a.Frames == nil || a.Frames.Registered() {
		anim := *a
		if anim.Name == nil && a.Frames.Registered() {
			anim.Name = a.Frames.Name
		}
		return anim.shorthand(), nil, true
	}

	// anonymous keyframe set: synthesize a name and queue the set
	index := c.animIndex[contextSelector]
	c.animIndex[contextSelector]++
	name := synthesizeAnimationName(contextSelector, index)

	anim := *a
	anim.Name = name
	return anim.shorthand(), []hoistedKeyframes{{name: name, frames: a.Frames.Frames}}, true
}
