package convert

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"stylc/css"
)

func TestParseDocumentSections(t *testing.T) {
	data := []byte(`
styles:
  button:
    color: blue
  panel:
    padding: [4, 8]
keyframes:
  pulse:
    from:
      opacity: 0
    to:
      opacity: 1
rules:
  body:
    margin: 0
fontFaces:
  - fontFamily: Oswald
    src: url(oswald.ttf)
raw:
  - "html { box-sizing: border-box; }"
`)
	doc, err := ParseDocument(data, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Styles) != 2 || doc.Styles[0].Name != "button" || doc.Styles[1].Name != "panel" {
		t.Errorf("wrong styles: %+v", doc.Styles)
	}
	if len(doc.Keyframes) != 1 || doc.Keyframes[0].Name != "pulse" {
		t.Errorf("wrong keyframes: %+v", doc.Keyframes)
	}
	if len(doc.Rules) != 1 || len(doc.FontFaces) != 1 || len(doc.Raw) != 1 {
		t.Errorf("wrong section sizes: %d rules, %d fontFaces, %d raw", len(doc.Rules), len(doc.FontFaces), len(doc.Raw))
	}
}

func TestParseDocumentRuleOrder(t *testing.T) {
	data := []byte(`
rules:
  .z:
    color: red
  .a:
    color: blue
  .m:
    color: green
`)
	doc, err := ParseDocument(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, r := range doc.Rules {
		got = append(got, r.Selectors...)
	}
	want := []string{".z", ".a", ".m"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("document order not preserved: got %v, expected %v", got, want)
	}
}

func TestParseDocumentSelectorList(t *testing.T) {
	data := []byte(`
rules:
  "h1, h2, h3":
    marginTop: 0
`)
	doc, err := ParseDocument(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Rules) != 1 {
		t.Fatalf("expected single rule, got %d", len(doc.Rules))
	}
	sels := doc.Rules[0].Selectors
	if len(sels) != 3 || sels[0] != "h1" || sels[1] != "h2" || sels[2] != "h3" {
		t.Errorf("wrong selector list: %v", sels)
	}
}

func TestParseDocumentFunctionMapOrder(t *testing.T) {
	data := []byte(`
rules:
  .card:
    transform:
      translateX: 10
      scale: 2
`)
	doc, err := ParseDocument(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	fns, ok := doc.Rules[0].Style["transform"].([]css.Fn)
	if !ok {
		t.Fatalf("expected ordered function list, got %T", doc.Rules[0].Style["transform"])
	}
	if len(fns) != 2 || fns[0].Name != "translateX" || fns[1].Name != "scale" {
		t.Errorf("function order not preserved: %+v", fns)
	}
	out, ok := css.Format("transform", fns)
	if !ok || out != "translate-x(10px) scale(2)" {
		t.Errorf("unexpected transform value %q", out)
	}
}

func TestParseDocumentNestedRules(t *testing.T) {
	data := []byte(`
rules:
  .menu:
    color: black
    "$":
      "& li":
        display: inline
    ":hover":
      color: gray
`)
	doc, err := ParseDocument(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	style := doc.Rules[0].Style
	if _, ok := style[css.KeyNested].(css.RuleSet); !ok {
		t.Errorf("expected nested rule set, got %T", style[css.KeyNested])
	}
	if _, ok := style[":hover"].(css.Node); !ok {
		t.Errorf("expected pseudo node, got %T", style[":hover"])
	}
}

func TestParseDocumentAnimation(t *testing.T) {
	data := []byte(`
rules:
  .spinner:
    animation:
      duration: 500
      iterationCount: infinite
      keyframes:
        from:
          transform:
            rotate: 0
        to:
          transform:
            rotate: 360
`)
	doc, err := ParseDocument(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	anim, ok := doc.Rules[0].Style[css.KeyAnimation].(*css.Animation)
	if !ok {
		t.Fatalf("expected animation, got %T", doc.Rules[0].Style[css.KeyAnimation])
	}
	if anim.Frames == nil || anim.Frames.Registered() {
		t.Errorf("expected anonymous keyframe set, got %+v", anim.Frames)
	}
	if len(anim.Frames.Frames) != 2 {
		t.Errorf("expected 2 offsets, got %d", len(anim.Frames.Frames))
	}
}

func TestParseDocumentAnimationReference(t *testing.T) {
	data := []byte(`
rules:
  .pulsing:
    animation:
      name: pulse
      keyframes: pulse
      duration: 200
`)
	doc, err := ParseDocument(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	anim := doc.Rules[0].Style[css.KeyAnimation].(*css.Animation)
	if !anim.Frames.Registered() || anim.Frames.Name != "pulse" {
		t.Errorf("expected registered reference to pulse, got %+v", anim.Frames)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"top level sequence", "- a\n- b\n"},
		{"styles not mapping", "styles: [a, b]\n"},
		{"rule not mapping", "rules:\n  .a: text\n"},
		{"bad animation field", "rules:\n  .a:\n    animation:\n      speed: 1\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseDocument([]byte(c.data), nil); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	doc, err := ParseDocument(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Styles) != 0 || len(doc.Rules) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}
