package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
)

// Check runs the emitted CSS text through a real CSS parser and returns the
// first grammar error found, or nil when the whole input parses cleanly. The
// compiler never reads CSS itself; this exists so callers (and tests) can
// verify output before handing it to a stylesheet sink.
func Check(text string) error {
	input := parse.NewInput(bytes.NewReader([]byte(text)))
	p := cssparse.NewParser(input, false)

	for {
		gt, _, _ := p.Next()
		if gt != cssparse.ErrorGrammar {
			continue
		}
		err := p.Err()
		if err == nil || errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("emitted CSS does not parse: %w", err)
	}
}
