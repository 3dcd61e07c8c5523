package sheet

import (
	"fmt"
	"strings"

	"stylc/css"
)

// Var is a registered custom property handle. It is immutable: Or returns a
// new handle with a deepened fallback chain and never mutates the original.
// Its string form is the var() reference, so a handle can be used directly as
// a property value.
type Var struct {
	name     string // generated name without the leading "--"
	prop     string // originating property, drives fallback formatting
	fallback any    // literal value or another *Var
	rendered bool
}

// Name returns the generated custom property name, leading hyphens included.
func (v *Var) Name() string { return "--" + v.name }

// Or returns a copy of the handle whose fallback chain ends with the given
// fallback. A literal already terminating the chain stays in place.
func (v *Var) Or(fallback any) *Var {
	nv := *v
	switch fb := v.fallback.(type) {
	case nil:
		nv.fallback = fallback
	case *Var:
		nv.fallback = fb.Or(fallback)
	default:
		// chain already terminated by a literal
	}
	return &nv
}

// String renders the var() reference including the fallback chain:
// "var(--accent-0, var(--base-1, red))".
func (v *Var) String() string {
	var b strings.Builder
	v.writeRef(&b)
	return b.String()
}

func (v *Var) writeRef(b *strings.Builder) {
	b.WriteString("var(")
	b.WriteString(v.Name())
	switch fb := v.fallback.(type) {
	case nil:
	case *Var:
		b.WriteString(", ")
		fb.writeRef(b)
	default:
		if s, ok := css.Format(v.prop, fb); ok {
			b.WriteString(", ")
			b.WriteString(s)
		}
	}
	b.WriteString(")")
}

// Assign produces the declaration setting this variable to a value. Assigning
// a value that references the variable itself, directly or anywhere down a
// fallback chain, fails immediately.
func (v *Var) Assign(value any) (css.Decl, error) {
	if refs(value, v.name) {
		return css.Decl{}, fmt.Errorf("variable %q: %w", v.Name(), ErrSelfReference)
	}
	return css.Decl{Prop: v.Name(), Value: value}, nil
}

// refs walks a value looking for a reference to the named variable.
func refs(value any, name string) bool {
	switch val := value.(type) {
	case *Var:
		if val == nil {
			return false
		}
		return val.name == name || refs(val.fallback, name)
	case []any:
		for _, el := range val {
			if refs(el, name) {
				return true
			}
		}
		return false
	case string:
		return containsIdent(val, "--"+name)
	default:
		return false
	}
}

// containsIdent reports whether text contains ident as a full CSS identifier
// (not merely a prefix of a longer one).
func containsIdent(text, ident string) bool {
	for at := 0; ; {
		i := strings.Index(text[at:], ident)
		if i < 0 {
			return false
		}
		end := at + i + len(ident)
		if end == len(text) || !isIdentRune(rune(text[end])) {
			return true
		}
		at = end
	}
}

func isIdentRune(r rune) bool {
	return r == '-' || r == '_' ||
		(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
