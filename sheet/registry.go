// Package sheet manages registration and naming of compiled styles. A
// Registry assigns stable suffixed names to styles, keyframe sets and custom
// properties, renders everything into one CSS text blob and tracks which
// names have actually been flushed so nothing is referenced before it exists.
package sheet

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"stylc/css"
)

// Registry is the registration ledger. It is an explicit context object: one
// per application (or test), passed to whoever registers styles. Not safe for
// concurrent use.
type Registry struct {
	log     *zap.Logger
	relaxed bool

	styles    []*Style
	keyframes []*Keyframes
	vars      []*Var
	fontFaces []css.Node
	raw       []string

	identities map[string]*Style
}

// Option adjusts registry behavior.
type Option func(*Registry)

// RelaxedUse allows class resolution before rendering. Meant for test
// harnesses that never flush a stylesheet.
func RelaxedUse() Option {
	return func(r *Registry) { r.relaxed = true }
}

// New creates an empty registry.
func New(log *zap.Logger, opts ...Option) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log:        log.Named("sheet"),
		identities: make(map[string]*Style),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// sanitizeBase makes a registration base name safe for CSS identifiers.
func sanitizeBase(base, fallback string) string {
	if s := slug.Make(base); s != "" {
		return s
	}
	return fallback
}

// Style registers a style node under a generated class name. The name is the
// sanitized base plus the ledger size at registration time, so repeated
// registration of the same base yields strictly increasing suffixes until
// Reset.
func (r *Registry) Style(base string, node css.Node) *Style {
	s := &Style{
		name: fmt.Sprintf("%s-%d", sanitizeBase(base, "style"), len(r.styles)),
		node: node,
	}
	r.styles = append(r.styles, s)
	r.log.Debug("Registered style", zap.String("name", s.name))
	return s
}

// StyleAt registers a style under a caller-supplied call-site identity.
// Re-registration at the same identity reuses its slot (and name) instead of
// growing the ledger, but only after the previous payload has been rendered;
// registering twice before a flush fails loudly.
func (r *Registry) StyleAt(identity, base string, node css.Node) (*Style, error) {
	if existing, ok := r.identities[identity]; ok {
		if !existing.rendered {
			return nil, fmt.Errorf("style %q (identity %q): %w", existing.name, identity, ErrDuplicateRegistration)
		}
		existing.node = node
		existing.rendered = false
		r.log.Debug("Reused style slot", zap.String("name", existing.name), zap.String("identity", identity))
		return existing, nil
	}

	s := r.Style(base, node)
	s.identity = identity
	r.identities[identity] = s
	return s, nil
}

// Keyframes registers a keyframe set under a generated name. Animations
// referencing the returned handle use the name verbatim; the @keyframes block
// is emitted once by Render.
func (r *Registry) Keyframes(base string, frames css.Keyframes) *Keyframes {
	k := &Keyframes{
		set: css.KeyframeSet{
			Frames: frames,
			Name:   fmt.Sprintf("%s-%d", sanitizeBase(base, "keyframes"), len(r.keyframes)),
		},
	}
	r.keyframes = append(r.keyframes, k)
	r.log.Debug("Registered keyframes", zap.String("name", k.set.Name))
	return k
}

// Var registers a custom property handle for the given originating property.
func (r *Registry) Var(base, property string) *Var {
	v := &Var{
		name: fmt.Sprintf("%s-%d", sanitizeBase(base, "var"), len(r.vars)),
		prop: property,
	}
	r.vars = append(r.vars, v)
	r.log.Debug("Registered variable", zap.String("name", v.Name()))
	return v
}

// FontFace registers an @font-face block emitted ahead of all styles.
func (r *Registry) FontFace(node css.Node) {
	r.fontFaces = append(r.fontFaces, node)
}

// Raw registers a verbatim CSS fragment emitted after font faces and before
// registered styles.
func (r *Registry) Raw(text string) {
	r.raw = append(r.raw, text)
}

// Render flushes the whole registry into one CSS text blob: font faces, raw
// fragments, registered styles (as "." + name rules, with their inline
// keyframes interleaved), then registered keyframes blocks. All rendered
// flags flip true.
func (r *Registry) Render() string {
	c := css.NewCompiler(r.log)

	var blocks []string
	for _, ff := range r.fontFaces {
		blocks = append(blocks, c.CompileNode("@font-face", ff)...)
	}
	blocks = append(blocks, r.raw...)
	for _, s := range r.styles {
		blocks = append(blocks, c.CompileNode("."+s.name, s.node)...)
	}
	for _, k := range r.keyframes {
		blocks = append(blocks, c.KeyframesBlock(k.set.Name, k.set.Frames))
	}

	r.MarkRendered()
	r.log.Debug("Rendered stylesheet",
		zap.Int("styles", len(r.styles)), zap.Int("keyframes", len(r.keyframes)), zap.Int("blocks", len(blocks)))
	return strings.Join(blocks, "\n")
}

// MarkRendered flips the rendered flag on every current record.
func (r *Registry) MarkRendered() {
	for _, s := range r.styles {
		s.rendered = true
	}
	for _, k := range r.keyframes {
		k.rendered = true
	}
	for _, v := range r.vars {
		v.rendered = true
	}
}

// Reset returns the registry to empty. Rendered flags are stripped from
// outstanding handles so a stale handle cannot pass the use check after the
// ledger that produced it is gone.
func (r *Registry) Reset() {
	for _, s := range r.styles {
		s.rendered = false
	}
	for _, k := range r.keyframes {
		k.rendered = false
	}
	for _, v := range r.vars {
		v.rendered = false
	}
	r.styles = nil
	r.keyframes = nil
	r.vars = nil
	r.fontFaces = nil
	r.raw = nil
	r.identities = make(map[string]*Style)
}
