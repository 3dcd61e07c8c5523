package css

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// maxListDepth bounds multi-value nesting: a list of values whose elements may
// themselves be flat lists. Anything deeper is formatted as if scalar.
const maxListDepth = 2

// Format converts a single property value into CSS value text. The second
// return is false when the value is absent (nil) and the declaration carrying
// it must be dropped.
//
// Scalars go through the per-property unit table: bare numbers get the
// property's default unit ("px" unless the table says otherwise), strings are
// passed through unchanged. Slices become separator-joined multi-values, Fn
// values become "name(args)" function calls.
func Format(prop string, v any) (string, bool) {
	return formatValue(hyphenate(prop), v, 0)
}

func formatValue(prop string, v any, depth int) (string, bool) {
	if v == nil {
		return "", false
	}

	switch val := v.(type) {
	case Fn:
		return formatFn(val), true
	case *Fn:
		if val == nil {
			return "", false
		}
		return formatFn(*val), true
	case []Fn:
		parts := make([]string, 0, len(val))
		for _, f := range val {
			parts = append(parts, formatFn(f))
		}
		return strings.Join(parts, " "), true
	case map[string]any:
		return formatFnMap(val), true
	case fmt.Stringer:
		return val.String(), true
	}

	if list, ok := asList(v); ok {
		return formatList(prop, list, depth)
	}
	return formatScalar(propUnit(prop), v)
}

// formatList joins the formatted elements with the property's primary
// separator; elements that are lists themselves join with the secondary one.
func formatList(prop string, list []any, depth int) (string, bool) {
	sep := defaultSeparators
	if s, ok := sepTable[prop]; ok {
		sep = s
	}

	parts := make([]string, 0, len(list))
	for _, el := range list {
		if inner, ok := asList(el); ok && depth+1 < maxListDepth {
			sub := make([]string, 0, len(inner))
			for _, iv := range inner {
				if s, ok := formatValue(prop, iv, depth+2); ok {
					sub = append(sub, s)
				}
			}
			if len(sub) > 0 {
				parts = append(parts, strings.Join(sub, sep.secondary))
			}
			continue
		}
		if s, ok := formatValue(prop, el, depth+1); ok {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, sep.primary), true
}

// formatFn renders a single CSS function call. The function name is
// hyphenated like a property name; arguments are joined with the function's
// separator (", " unless overridden) and bare numbers pick up the function's
// positional default units.
func formatFn(f Fn) string {
	name := hyphenate(f.Name)
	sep, ok := fnSeparators[name]
	if !ok {
		sep = ", "
	}

	var args []string
	if list, isList := asList(f.Args); isList {
		args = make([]string, 0, len(list))
		for i, a := range list {
			args = append(args, formatFnArg(name, i, a))
		}
	} else if f.Args != nil {
		args = []string{formatFnArg(name, 0, f.Args)}
	}
	return name + "(" + strings.Join(args, sep) + ")"
}

func formatFnArg(fn string, pos int, v any) string {
	switch val := v.(type) {
	case Fn:
		return formatFn(val)
	case *Fn:
		if val != nil {
			return formatFn(*val)
		}
		return ""
	case fmt.Stringer:
		return val.String()
	}
	s, _ := formatScalar(fnUnit(fn, pos), v)
	return s
}

// formatFnMap renders a function-map record. Go maps carry no order, so the
// functions are emitted in sorted-name order; callers that need a specific
// function order use []Fn instead.
func formatFnMap(m map[string]any) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, formatFn(Fn{Name: name, Args: m[name]}))
	}
	return strings.Join(parts, " ")
}

// formatScalar renders a primitive value, appending unit to bare numbers.
func formatScalar(unit string, v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		// booleans carry no CSS meaning, drop the declaration
		return "", false
	case int:
		return strconv.Itoa(val) + unit, true
	case int64:
		return strconv.FormatInt(val, 10) + unit, true
	case uint:
		return strconv.FormatUint(uint64(val), 10) + unit, true
	case float32:
		return formatFloat(float64(val)) + unit, true
	case float64:
		return formatFloat(val) + unit, true
	default:
		return fmt.Sprint(val), true
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// propUnit returns the unit appended to bare numbers of a property. The
// generic fallback is "px".
func propUnit(prop string) string {
	if u, ok := propUnits[prop]; ok {
		return u
	}
	return "px"
}

// fnUnit returns the unit for a function argument position. The last declared
// default covers all trailing positions; unknown functions get no unit at all
// (deliberate "no guessed unit" fallback).
func fnUnit(fn string, pos int) string {
	units, ok := fnDefaults[fn]
	if !ok || len(units) == 0 {
		return ""
	}
	if pos >= len(units) {
		pos = len(units) - 1
	}
	return units[pos]
}

// asList normalizes the supported slice shapes to []any.
func asList(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out, true
	case []int:
		out := make([]any, len(val))
		for i, n := range val {
			out[i] = n
		}
		return out, true
	case []float64:
		out := make([]any, len(val))
		for i, f := range val {
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}
