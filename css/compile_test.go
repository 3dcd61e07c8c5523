package css_test

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"stylc/css"
)

func TestCompile_BasicNesting(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	got := c.Compile(css.RuleSet{
		css.R(".a", css.Node{
			"width": 5,
			"$": css.RuleSet{
				css.R("input", css.Node{"width": 1}),
			},
		}),
	})

	want := []string{
		".a { width: 5px; }",
		".a input { width: 1px; }",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %#v, want %#v", got, want)
	}
}

func TestCompile_EmptyNodeEmitsNothing(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())
	if got := c.Compile(css.RuleSet{css.R(".a", css.Node{})}); len(got) != 0 {
		t.Errorf("Compile(empty node) = %#v, want no rules", got)
	}
}

func TestCompile_PseudoSelector(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	got := c.Compile(css.RuleSet{
		css.R(".btn", css.Node{
			"color":  "red",
			":hover": css.Node{"color": "blue"},
		}),
	})

	want := []string{
		".btn { color: red; }",
		".btn:hover { color: blue; }",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %#v, want %#v", got, want)
	}
}

func TestCompile_MultiSelectorRule(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	got := c.Compile(css.RuleSet{
		css.RN([]string{"h1", "h2"}, css.Node{"margin": 0}),
	})

	want := []string{
		"h1 { margin: 0px; }",
		"h2 { margin: 0px; }",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %#v, want %#v", got, want)
	}
}

func TestCompile_AtRuleWrapsEveryInnerRule(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	got := c.Compile(css.RuleSet{
		css.R(".x", css.Node{
			"$": css.RuleSet{
				css.R("@media screen", css.Node{
					"color":  "red",
					":hover": css.Node{"color": "blue"},
				}),
			},
		}),
	})

	want := []string{
		"@media screen { .x { color: red; } }",
		"@media screen { .x:hover { color: blue; } }",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %#v, want %#v", got, want)
	}
}

func TestCompile_AmpersandComposition(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	got := c.Compile(css.RuleSet{
		css.R(".x", css.Node{
			"$": css.RuleSet{
				css.R("input&", css.Node{"width": 1}),
			},
		}),
	})

	want := []string{"input.x { width: 1px; }"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %#v, want %#v", got, want)
	}
}

func TestCompile_InlineAnimationHoisting(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	frames := css.Keyframes{
		"from": css.Node{"opacity": 0},
		"to":   css.Node{"opacity": 1},
	}

	anim := css.NewAnimation(frames)
	anim.Duration = 750

	got := c.Compile(css.RuleSet{
		css.R(".test", css.Node{"animation": anim}),
	})

	if len(got) != 2 {
		t.Fatalf("Compile() produced %d rules, want 2: %#v", len(got), got)
	}
	if want := ".test { animation: test-animation-0 750ms; }"; got[0] != want {
		t.Errorf("rule = %q, want %q", got[0], want)
	}
	wantKF := "@keyframes test-animation-0 {\n  from { opacity: 0; }\n  to { opacity: 1; }\n}"
	if got[1] != wantKF {
		t.Errorf("keyframes = %q, want %q", got[1], wantKF)
	}
}

func TestCompile_SecondInlineUseGetsNextIndex(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	frames := css.Keyframes{"to": css.Node{"opacity": 1}}

	got := c.Compile(css.RuleSet{
		css.R(".test", css.Node{"animation": css.NewAnimation(frames)}),
		css.R(".test", css.Node{"animation": css.NewAnimation(frames)}),
	})

	joined := strings.Join(got, "\n")
	if !strings.Contains(joined, "@keyframes test-animation-0") {
		t.Errorf("missing first synthesized name in %q", joined)
	}
	if !strings.Contains(joined, "@keyframes test-animation-1") {
		t.Errorf("missing second synthesized name in %q", joined)
	}
}

func TestCompile_NamedAnimationIsNotHoisted(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	anim := css.NamedAnimation("pulse", css.Keyframes{"to": css.Node{"opacity": 1}})
	anim.Duration = 200
	anim.IterationCount = "infinite"

	got := c.Compile(css.RuleSet{
		css.R(".badge", css.Node{"animation": anim}),
	})

	want := []string{".badge { animation: pulse 200ms infinite; }"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %#v, want %#v", got, want)
	}
}

func TestCompile_AnimationStringPassesThrough(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	got := c.Compile(css.RuleSet{
		css.R(".a", css.Node{"animation": "spin 2s linear infinite"}),
	})

	want := []string{".a { animation: spin 2s linear infinite; }"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %#v, want %#v", got, want)
	}
}

func TestCompile_AnimationList(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	frames := css.Keyframes{"to": css.Node{"opacity": 1}}
	got := c.Compile(css.RuleSet{
		css.R(".a", css.Node{
			"animation": []any{
				css.NewAnimation(frames),
				"spin 2s",
			},
		}),
	})

	if len(got) != 2 {
		t.Fatalf("Compile() produced %d rules, want 2: %#v", len(got), got)
	}
	if want := ".a { animation: a-animation-0, spin 2s; }"; got[0] != want {
		t.Errorf("rule = %q, want %q", got[0], want)
	}
}

func TestKeyframesBlock_OffsetOrderAndNormalization(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	got := c.KeyframesBlock("wiggle", css.Keyframes{
		"to":   css.Node{"left": 0},
		"10":   css.Node{"left": 2},
		"9":    css.Node{"left": 1},
		"from": css.Node{"left": 0},
	})

	want := "@keyframes wiggle {\n" +
		"  from { left: 0px; }\n" +
		"  9% { left: 1px; }\n" +
		"  10% { left: 2px; }\n" +
		"  to { left: 0px; }\n" +
		"}"
	if got != want {
		t.Errorf("KeyframesBlock() = %q, want %q", got, want)
	}
}

func TestKeyframesBlock_DropsNestedConstructs(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	got := c.KeyframesBlock("bad", css.Keyframes{
		"to": css.Node{
			"opacity": 1,
			":hover":  css.Node{"opacity": 0},
		},
	})

	want := "@keyframes bad {\n  to { opacity: 1; }\n}"
	if got != want {
		t.Errorf("KeyframesBlock() = %q, want %q", got, want)
	}
}

func TestCompile_OutputParses(t *testing.T) {
	c := css.NewCompiler(zap.NewNop())

	anim := css.NewAnimation(css.Keyframes{"from": css.Node{"opacity": 0}, "to": css.Node{"opacity": 1}})
	anim.Duration = 300

	rules := c.Compile(css.RuleSet{
		css.R(".panel", css.Node{
			"margin":  []any{0, "auto"},
			"opacity": 0.9,
			":focus":  css.Node{"outline": "2px solid red"},
			"$": css.RuleSet{
				css.R("@media (max-width: 600px)", css.Node{"margin": 0}),
				css.R("input", css.Node{"animation": anim}),
			},
		}),
	})

	if err := css.Check(strings.Join(rules, "\n")); err != nil {
		t.Fatalf("emitted CSS failed to parse: %v\n%s", err, strings.Join(rules, "\n"))
	}
}
