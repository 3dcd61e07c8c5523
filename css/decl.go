package css

import (
	"strings"
	"unicode"
)

// hyphenate converts a humped property name to hyphenated lowercase:
// "marginTop" -> "margin-top". Custom properties ("--accent") pass through
// unchanged. Vendor spellings get a leading hyphen: a capitalised prefix
// ("WebkitMaskImage" -> "-webkit-mask-image") naturally, and the lowercase
// "ms" marker by exception ("msOverflowStyle" -> "-ms-overflow-style").
func hyphenate(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	if strings.Contains(prop, "-") {
		// already hyphenated
		return prop
	}

	rest := prop
	var b strings.Builder
	b.Grow(len(prop) + 4)

	if strings.HasPrefix(prop, "ms") && len(prop) > 2 && unicode.IsUpper(rune(prop[2])) {
		b.WriteString("-ms")
		rest = prop[2:]
	}
	for _, r := range rest {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SerializeDecls converts an ordered declaration list into a semicolon-joined
// block: "width: 5px; color: red;". Declarations whose value formats to
// nothing are dropped; an empty result means the caller must omit the rule.
func SerializeDecls(decls []Decl) string {
	var b strings.Builder
	for _, d := range decls {
		v, ok := Format(d.Prop, d.Value)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(hyphenate(d.Prop))
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteByte(';')
	}
	return b.String()
}
