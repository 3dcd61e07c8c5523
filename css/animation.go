package css

import (
	"fmt"
	"regexp"
	"strings"
)

// Keyframes maps an offset ("from", "to" or a percentage; bare numbers are
// percentages) to the declarations applying at that offset. Nested selectors
// and further animations are not supported inside keyframes.
type Keyframes map[string]Node

// KeyframeSet couples keyframes with an optional name. A named set is
// considered registered: animations referencing it reuse the name verbatim
// and no @keyframes block is hoisted at the point of use.
type KeyframeSet struct {
	Frames Keyframes
	Name   string
}

// Registered reports whether the set already carries an assigned name.
func (k *KeyframeSet) Registered() bool {
	return k != nil && k.Name != ""
}

// Animation describes the eight canonical animation sub-properties plus an
// optional embedded keyframe set. Values follow the usual property value
// rules (Duration: 200 formats as "200ms"). Unset (nil) sub-properties are
// omitted from the shorthand.
type Animation struct {
	Name           any
	Duration       any
	TimingFunction any
	Delay          any
	IterationCount any
	Direction      any
	FillMode       any
	PlayState      any

	Frames *KeyframeSet
}

// NewAnimation returns an animation driven by an anonymous keyframe set. The
// set is hoisted into the output under a synthesized name when the owning
// style is compiled.
func NewAnimation(frames Keyframes) *Animation {
	return &Animation{Frames: &KeyframeSet{Frames: frames}}
}

// NamedAnimation returns an animation referencing an already named keyframe
// set; the name is used verbatim and nothing is hoisted.
func NamedAnimation(name string, frames Keyframes) *Animation {
	return &Animation{Frames: &KeyframeSet{Frames: frames, Name: name}}
}

// shorthand renders the animation sub-properties space-joined in the fixed
// canonical order.
func (a *Animation) shorthand() string {
	fields := []struct {
		prop string
		val  any
	}{
		{"animationName", a.Name},
		{"animationDuration", a.Duration},
		{"animationTimingFunction", a.TimingFunction},
		{"animationDelay", a.Delay},
		{"animationIterationCount", a.IterationCount},
		{"animationDirection", a.Direction},
		{"animationFillMode", a.FillMode},
		{"animationPlayState", a.PlayState},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if v, ok := Format(f.prop, f.val); ok {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

var nonWord = regexp.MustCompile(`\W`)

// synthesizeAnimationName derives a keyframes name from the selector that
// references the animation: non-word characters become underscores, a leading
// underscore is stripped and a zero-based occurrence index is appended, so
// the first inline animation under ".test" is named "test-animation-0".
func synthesizeAnimationName(selector string, index int) string {
	name := nonWord.ReplaceAllString(selector, "_")
	name = strings.TrimPrefix(name, "_")
	return fmt.Sprintf("%s-animation-%d", name, index)
}
