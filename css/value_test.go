package css_test

import (
	"testing"

	"stylc/css"
)

func TestFormat_Scalars(t *testing.T) {
	tests := []struct {
		name string
		prop string
		val  any
		want string
	}{
		{"number gets px", "width", 5, "5px"},
		{"string is identity", "width", "5%", "5%"},
		{"float keeps precision", "top", 2.5, "2.5px"},
		{"unitless property", "opacity", 0.5, "0.5"},
		{"unitless int property", "zIndex", 10, "10"},
		{"font weight number", "fontWeight", 700, "700"},
		{"line height number", "lineHeight", 1.4, "1.4"},
		{"duration in ms", "animationDuration", 750, "750ms"},
		{"transition delay in ms", "transitionDelay", 100, "100ms"},
		{"keyword", "display", "flex", "flex"},
		{"hyphenated spelling hits same table", "z-index", 3, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := css.Format(tt.prop, tt.val)
			if !ok {
				t.Fatalf("Format(%q, %v) dropped value", tt.prop, tt.val)
			}
			if got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.prop, tt.val, got, tt.want)
			}
		})
	}
}

func TestFormat_NilIsDropped(t *testing.T) {
	if v, ok := css.Format("width", nil); ok {
		t.Errorf("Format(width, nil) = %q, want dropped", v)
	}
}

func TestFormat_Arrays(t *testing.T) {
	tests := []struct {
		name string
		prop string
		val  any
		want string
	}{
		{"margin space joined", "margin", []any{1, "2em"}, "1px 2em"},
		{"padding space joined", "padding", []any{0, "auto"}, "0px auto"},
		{"transition property comma joined", "transitionProperty", []string{"width", "height"}, "width, height"},
		{"font family comma joined", "fontFamily", []string{"Georgia", "serif"}, "Georgia, serif"},
		{
			"box shadow nested",
			"boxShadow",
			[]any{[]any{0, 0, "2px", "red"}, []any{0, 0, "4px", "blue"}},
			"0px 0px 2px red, 0px 0px 4px blue",
		},
		{
			"grid template keeps primary outside and secondary inside",
			"gridTemplateColumns",
			[]any{"1fr", []any{"min-content", "max-content"}},
			"1fr min-content, max-content",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := css.Format(tt.prop, tt.val)
			if !ok {
				t.Fatalf("Format(%q, %v) dropped value", tt.prop, tt.val)
			}
			if got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.prop, tt.val, got, tt.want)
			}
		})
	}
}

func TestFormat_Functions(t *testing.T) {
	tests := []struct {
		name string
		prop string
		val  any
		want string
	}{
		{"rotate defaults to deg", "transform", css.Fn{Name: "rotate", Args: 45}, "rotate(45deg)"},
		{"translate defaults to px", "transform", css.Fn{Name: "translate", Args: []any{10, 20}}, "translate(10px, 20px)"},
		{
			"trailing positions reuse last default",
			"transform",
			css.Fn{Name: "translate3d", Args: []any{1, 2, 3}},
			"translate3d(1px, 2px, 3px)",
		},
		{
			"rotate3d positional defaults",
			"transform",
			css.Fn{Name: "rotate3d", Args: []any{1, 1, 0, 90}},
			"rotate3d(1, 1, 0, 90deg)",
		},
		{"humped name is hyphenated", "filter", css.Fn{Name: "hueRotate", Args: 90}, "hue-rotate(90deg)"},
		{"unknown function keeps numbers bare", "width", css.Fn{Name: "calc", Args: "100% - 10px"}, "calc(100% - 10px)"},
		{
			"function list space joined",
			"transform",
			[]css.Fn{{Name: "scale", Args: 2}, {Name: "rotate", Args: 45}},
			"scale(2) rotate(45deg)",
		},
		{
			"function map emitted in sorted order",
			"transform",
			map[string]any{"translate": []any{5, 5}, "rotate": 10},
			"rotate(10deg) translate(5px, 5px)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := css.Format(tt.prop, tt.val)
			if !ok {
				t.Fatalf("Format(%q, %v) dropped value", tt.prop, tt.val)
			}
			if got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.prop, tt.val, got, tt.want)
			}
		})
	}
}
