package css

import "strings"

// isConditionalAtRule reports whether the selector is a conditional group
// rule (@media and friends) whose body compiles against the unchanged parent
// selector and is wrapped as a whole.
func isConditionalAtRule(selector string) bool {
	if !strings.HasPrefix(selector, "@") {
		return false
	}
	for _, prefix := range conditionalAtRules {
		if strings.HasPrefix(selector, prefix) {
			return true
		}
	}
	return false
}

// composeSelector combines a parent selector with a nested child selector.
// Every '&' in the child is replaced with the parent; otherwise the child is
// appended as a descendant. The empty top-level parent is the identity.
func composeSelector(parent, child string) string {
	switch {
	case strings.Contains(child, "&"):
		return strings.ReplaceAll(child, "&", parent)
	case parent != "":
		return parent + " " + child
	default:
		return child
	}
}
