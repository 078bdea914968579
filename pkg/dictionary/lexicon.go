// Package dictionary holds the vocabulary: an in-memory prefix tree with
// membership lookup and prefix expansion, plus the loader that fills it from a
// whitespace-delimited word list.
package dictionary

import (
	"errors"
	"fmt"
)

// Backend names accepted by New.
const (
	BackendTrie     = "trie"
	BackendPatricia = "patricia"
)

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown dictionary backend")

// Lexicon is the read surface the corrector needs plus Insert for loading.
type Lexicon interface {
	// Insert stores a lowercase word. Repeated inserts are no-ops.
	Insert(word string)

	// Search reports whether word is stored.
	Search(word string) bool

	// PrefixWords returns the words under every prefix of word that exists
	// in the lexicon, shortest prefix first. Duplicates are not removed.
	PrefixWords(word string) []string

	// Stats returns size information about the lexicon.
	Stats() Stats
}

// Stats describes a loaded lexicon. Nodes is zero for backends that do not
// expose their node count.
type Stats struct {
	Backend string
	Words   int
	Nodes   int
}

// New returns an empty lexicon for the named backend. An empty name selects
// the node trie.
func New(backend string) (Lexicon, error) {
	switch backend {
	case "", BackendTrie:
		return NewTrie(), nil
	case BackendPatricia:
		return NewPatriciaTrie(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
