package overlay

import (
	"path/filepath"
	"strings"
)

// Pair is one input/output assignment, matched by position.
type Pair struct {
	Index  int
	Input  string
	Output string
}

// Pairs zips the input and output lists. It stops at the shorter list and
// never reports a mismatch; Validate does that.
func (c *Config) Pairs() []Pair {
	n := min(len(c.inputFilenames), len(c.outputFilenames))
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{Index: i, Input: c.inputFilenames[i], Output: c.outputFilenames[i]})
	}
	return pairs
}

// DeriveOutputs builds one output path per input by inserting suffix before
// the extension: "icons/icon1.png" with "_beta" becomes "icons/icon1_beta.png".
func DeriveOutputs(inputs []string, suffix string) []string {
	if inputs == nil {
		return nil
	}
	outputs := make([]string, len(inputs))
	for i, in := range inputs {
		ext := filepath.Ext(in)
		outputs[i] = strings.TrimSuffix(in, ext) + suffix + ext
	}
	return outputs
}

// SuffixFor returns the default output suffix for a banner text:
// "Beta Build" becomes "_beta_build".
func SuffixFor(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return "_banner"
	}
	return "_" + strings.Join(fields, "_")
}
