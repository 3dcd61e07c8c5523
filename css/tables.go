package css

// Static lookup tables describing property and function value conventions.
// Tables are keyed by hyphenated property names so both humped and already
// hyphenated spellings resolve to the same entry.

// propUnits maps properties to the unit appended to bare numbers. Properties
// absent from this table fall back to "px". An empty string keeps numbers
// unitless.
var propUnits = map[string]string{
	// unitless by definition
	"animation-iteration-count": "",
	"column-count":              "",
	"fill-opacity":              "",
	"flex":                      "",
	"flex-grow":                 "",
	"flex-shrink":               "",
	"font-weight":               "",
	"line-height":               "",
	"opacity":                   "",
	"order":                     "",
	"orphans":                   "",
	"stroke-opacity":            "",
	"tab-size":                  "",
	"widows":                    "",
	"z-index":                   "",
	"zoom":                      "",

	// time valued
	"animation-delay":     "ms",
	"animation-duration":  "ms",
	"transition-delay":    "ms",
	"transition-duration": "ms",
}

type separators struct {
	primary   string // joins elements of a multi-value array
	secondary string // joins elements of an array nested inside it
}

// defaultSeparators applies to properties absent from sepTable: comma lists
// with space-joined sub-lists (box-shadow, transition and friends).
var defaultSeparators = separators{primary: ", ", secondary: " "}

// sepTable overrides array separators per property. Shorthand box properties
// are space lists; grid templates are space lists with comma-joined tracks.
var sepTable = map[string]separators{
	"border-radius":         {primary: " ", secondary: " "},
	"border-spacing":        {primary: " ", secondary: " "},
	"border-width":          {primary: " ", secondary: " "},
	"grid-gap":              {primary: " ", secondary: " "},
	"grid-template-areas":   {primary: " ", secondary: ", "},
	"grid-template-columns": {primary: " ", secondary: ", "},
	"grid-template-rows":    {primary: " ", secondary: ", "},
	"inset":                 {primary: " ", secondary: " "},
	"margin":                {primary: " ", secondary: " "},
	"outline":               {primary: " ", secondary: " "},
	"overflow":              {primary: " ", secondary: " "},
	"padding":               {primary: " ", secondary: " "},
	"scroll-margin":         {primary: " ", secondary: " "},
	"scroll-padding":        {primary: " ", secondary: " "},
}

// fnDefaults maps function names to per-parameter units applied to bare
// numbers, positionally. The last entry covers all trailing positions.
// Functions absent from this table keep numbers unitless.
var fnDefaults = map[string][]string{
	"blur":        {"px"},
	"drop-shadow": {"px"},
	"hue-rotate":  {"deg"},
	"perspective": {"px"},
	"rotate":      {"deg"},
	"rotate3d":    {"", "", "", "deg"},
	"rotate-x":    {"deg"},
	"rotate-y":    {"deg"},
	"rotate-z":    {"deg"},
	"skew":        {"deg"},
	"skew-x":      {"deg"},
	"skew-y":      {"deg"},
	"translate":   {"px"},
	"translate3d": {"px", "px", "px"},
	"translate-x": {"px"},
	"translate-y": {"px"},
	"translate-z": {"px"},
}

// fnSeparators overrides the argument separator for selected functions.
// Everything else joins arguments with ", ".
var fnSeparators = map[string]string{
	"drop-shadow": " ",
}

// conditionalAtRules are the group rules whose nested body is compiled
// against the unchanged parent selector and wrapped as a whole.
var conditionalAtRules = []string{
	"@media",
	"@supports",
	"@container",
	"@scope",
	"@starting-style",
}
