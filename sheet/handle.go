package sheet

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"stylc/css"
)

// Style is a registered style handle. Its string form is the generated class
// name, so a handle can be embedded directly in selectors and class lists.
type Style struct {
	name     string
	node     css.Node
	rendered bool
	identity string
}

// Name returns the generated class name.
func (s *Style) Name() string { return s.name }

// Node returns the registered style payload.
func (s *Style) Node() css.Node { return s.node }

// Rendered reports whether the style has been flushed into CSS text.
func (s *Style) Rendered() bool { return s.rendered }

func (s *Style) String() string { return s.name }

// Keyframes is a registered keyframe set handle. Its string form is the
// generated @keyframes name.
type Keyframes struct {
	set      css.KeyframeSet
	rendered bool
}

// Set returns the named keyframe set for use in an Animation; because the set
// carries a name, the compiler will not hoist another copy.
func (k *Keyframes) Set() *css.KeyframeSet {
	set := k.set
	return &set
}

// Name returns the generated @keyframes name.
func (k *Keyframes) Name() string { return k.set.Name }

func (k *Keyframes) String() string { return k.set.Name }

// Classes resolves a collection of class values into a space-joined class
// string. Items may be registered style handles, plain strings, nested slices
// or absent values (nil and false are skipped, matching conditional
// inclusion). Using a handle that has not been rendered is an error naming
// the identifier, unless the registry was created with RelaxedUse.
func (r *Registry) Classes(items ...any) (string, error) {
	var (
		names []string
		errs  error
	)
	r.collectClasses(items, &names, &errs)
	if errs != nil {
		return "", errs
	}
	return strings.Join(names, " "), nil
}

func (r *Registry) collectClasses(items []any, names *[]string, errs *error) {
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			// absent, skip
		case bool:
			// conditional placeholder, skip
		case string:
			if v != "" {
				*names = append(*names, v)
			}
		case *Style:
			if v == nil {
				continue
			}
			if !v.rendered && !r.relaxed {
				*errs = multierr.Append(*errs, fmt.Errorf("class %q: %w", v.name, ErrNotRendered))
				continue
			}
			*names = append(*names, v.name)
		case []*Style:
			for _, s := range v {
				r.collectClasses([]any{s}, names, errs)
			}
		case []any:
			r.collectClasses(v, names, errs)
		default:
			*errs = multierr.Append(*errs, fmt.Errorf("unsupported class value %T", item))
		}
	}
}
