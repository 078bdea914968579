// Package suggest is the correction core: it generates single-edit variants of
// an unknown word, keeps the ones the dictionary knows, and falls back to
// expanding the word's known prefixes when no variant matches.
package suggest

// Checker is what the CLI and IPC server drive.
type Checker interface {
	// Check looks word up and, when it is unknown, attaches corrections.
	Check(word string) Result

	// Stats returns dictionary and cache counters.
	Stats() map[string]any
}

// Result is the outcome of a single lookup.
type Result struct {
	Word        string
	Found       bool
	Suggestions []string
}
