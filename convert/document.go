// Package convert turns YAML style documents into CSS text. Documents are
// decoded through yaml.Node so rule order is preserved exactly as written,
// which a plain map decode would lose.
package convert

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"stylc/css"
)

// NamedStyle is a style registered under a generated class name.
type NamedStyle struct {
	Name  string
	Style css.Node
}

// NamedFrames is a keyframe set registered under a generated name.
type NamedFrames struct {
	Name   string
	Frames css.Keyframes
}

// Document is a parsed style document: registered styles and keyframes,
// verbatim-selector rules, font faces and raw CSS fragments.
type Document struct {
	Styles    []NamedStyle
	Keyframes []NamedFrames
	Rules     css.RuleSet
	FontFaces []css.Node
	Raw       []string
}

// ParseDocument decodes a YAML style document.
func ParseDocument(data []byte, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("document")

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse style document: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		// empty document compiles to an empty stylesheet
		return &Document{}, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style document must be a mapping, got %s at line %d", kindName(top.Kind), top.Line)
	}

	doc := &Document{}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		var err error
		switch key.Value {
		case "styles":
			err = decodeNamedStyles(value, doc)
		case "keyframes":
			err = decodeNamedKeyframes(value, doc)
		case "rules":
			doc.Rules, err = decodeRuleSet(value)
		case "fontFaces":
			err = decodeFontFaces(value, doc)
		case "raw":
			err = decodeRaw(value, doc)
		default:
			log.Warn("Unknown document section, skipping", zap.String("section", key.Value), zap.Int("line", key.Line))
		}
		if err != nil {
			return nil, err
		}
	}

	log.Debug("Parsed style document",
		zap.Int("styles", len(doc.Styles)), zap.Int("rules", len(doc.Rules)),
		zap.Int("keyframes", len(doc.Keyframes)), zap.Int("fontFaces", len(doc.FontFaces)))
	return doc, nil
}

func decodeNamedStyles(n *yaml.Node, doc *Document) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("styles section must be a mapping, got %s at line %d", kindName(n.Kind), n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		node, err := decodeStyleNode(n.Content[i+1])
		if err != nil {
			return err
		}
		doc.Styles = append(doc.Styles, NamedStyle{Name: n.Content[i].Value, Style: node})
	}
	return nil
}

func decodeNamedKeyframes(n *yaml.Node, doc *Document) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("keyframes section must be a mapping, got %s at line %d", kindName(n.Kind), n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		frames, err := decodeKeyframes(n.Content[i+1])
		if err != nil {
			return err
		}
		doc.Keyframes = append(doc.Keyframes, NamedFrames{Name: n.Content[i].Value, Frames: frames})
	}
	return nil
}

func decodeFontFaces(n *yaml.Node, doc *Document) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("fontFaces section must be a sequence, got %s at line %d", kindName(n.Kind), n.Line)
	}
	for _, item := range n.Content {
		node, err := decodeStyleNode(item)
		if err != nil {
			return err
		}
		doc.FontFaces = append(doc.FontFaces, node)
	}
	return nil
}

func decodeRaw(n *yaml.Node, doc *Document) error {
	switch n.Kind {
	case yaml.ScalarNode:
		doc.Raw = append(doc.Raw, n.Value)
	case yaml.SequenceNode:
		for _, item := range n.Content {
			doc.Raw = append(doc.Raw, item.Value)
		}
	default:
		return fmt.Errorf("raw section must be a string or a sequence, got %s at line %d", kindName(n.Kind), n.Line)
	}
	return nil
}

// decodeRuleSet preserves document order, one Rule per mapping entry. A key
// with top-level commas is a selector list sharing one style node.
func decodeRuleSet(n *yaml.Node) (css.RuleSet, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("rule set must be a mapping, got %s at line %d", kindName(n.Kind), n.Line)
	}
	var rs css.RuleSet
	for i := 0; i+1 < len(n.Content); i += 2 {
		node, err := decodeStyleNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		rs = append(rs, css.RN(splitSelectors(n.Content[i].Value), node))
	}
	return rs, nil
}

func splitSelectors(key string) []string {
	parts := strings.Split(key, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func decodeStyleNode(n *yaml.Node) (css.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style node must be a mapping, got %s at line %d", kindName(n.Kind), n.Line)
	}
	node := make(css.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, n.Content[i+1]
		switch {
		case key == css.KeyNested:
			rs, err := decodeRuleSet(value)
			if err != nil {
				return nil, err
			}
			node[key] = rs
		case key == css.KeyAnimation:
			anim, err := decodeAnimationValue(value)
			if err != nil {
				return nil, err
			}
			node[key] = anim
		case strings.HasPrefix(key, ":"):
			child, err := decodeStyleNode(value)
			if err != nil {
				return nil, err
			}
			node[key] = child
		default:
			v, err := decodeValue(value)
			if err != nil {
				return nil, err
			}
			node[key] = v
		}
	}
	return node, nil
}

// decodeValue turns a YAML value into a property value: scalars keep their
// YAML typing, sequences become multi-values and mappings become ordered
// function lists (mapping order is the function order).
func decodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("bad scalar at line %d: %w", n.Line, err)
		}
		return v, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		fns := make([]css.Fn, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			args, err := decodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			fns = append(fns, css.Fn{Name: n.Content[i].Value, Args: args})
		}
		return fns, nil
	default:
		return nil, fmt.Errorf("unsupported value at line %d", n.Line)
	}
}

func decodeKeyframes(n *yaml.Node) (css.Keyframes, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("keyframes must be a mapping, got %s at line %d", kindName(n.Kind), n.Line)
	}
	frames := make(css.Keyframes, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		node, err := decodeStyleNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		frames[n.Content[i].Value] = node
	}
	return frames, nil
}

// decodeAnimationValue accepts a string (opaque shorthand), a mapping
// (structured animation) or a sequence of either.
func decodeAnimationValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil
	case yaml.MappingNode:
		return decodeAnimation(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeAnimationValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported animation value at line %d", n.Line)
	}
}

func decodeAnimation(n *yaml.Node) (*css.Animation, error) {
	anim := &css.Animation{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, n.Content[i+1]
		if key == "keyframes" {
			switch value.Kind {
			case yaml.ScalarNode:
				// reference to a registered keyframe set by name
				anim.Frames = &css.KeyframeSet{Name: value.Value}
			case yaml.MappingNode:
				frames, err := decodeKeyframes(value)
				if err != nil {
					return nil, err
				}
				anim.Frames = &css.KeyframeSet{Frames: frames}
			default:
				return nil, fmt.Errorf("unsupported keyframes value at line %d", value.Line)
			}
			continue
		}

		v, err := decodeValue(value)
		if err != nil {
			return nil, err
		}
		switch key {
		case "name":
			anim.Name = v
		case "duration":
			anim.Duration = v
		case "timingFunction":
			anim.TimingFunction = v
		case "delay":
			anim.Delay = v
		case "iterationCount":
			anim.IterationCount = v
		case "direction":
			anim.Direction = v
		case "fillMode":
			anim.FillMode = v
		case "playState":
			anim.PlayState = v
		default:
			return nil, fmt.Errorf("unknown animation field %q at line %d", key, n.Content[i].Line)
		}
	}
	return anim, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
