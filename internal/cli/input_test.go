package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.InfoLevel)
}

func run(t *testing.T, limit int, input string, words ...string) string {
	t.Helper()
	trie := dictionary.NewTrie()
	for _, w := range words {
		trie.Insert(w)
	}
	var out bytes.Buffer
	h := NewInputHandler(suggest.NewCorrector(trie, 0), strings.NewReader(input), &out, limit)
	require.NoError(t, h.Start())
	return out.String()
}

func TestFoundWordIsCaseInsensitive(t *testing.T) {
	out := run(t, 40, "Cat\n", "cat", "cut", "bat")
	assert.Contains(t, out, "Word found: cat")
}

func TestUnknownWordListsSuggestions(t *testing.T) {
	out := run(t, 40, "cot\n", "cat", "cut", "bat")
	assert.Contains(t, out, "Word not found. Suggestions:")
	assert.Contains(t, out, "cat")
	assert.Contains(t, out, "cut")
	assert.NotContains(t, out, "bat")
}

func TestNoSuggestions(t *testing.T) {
	out := run(t, 40, "zzzz\n", "apple")
	assert.Contains(t, out, "No suggestions available.")
}

func TestSuggestionsTruncatedToLimit(t *testing.T) {
	var words []string
	for c := 'a'; c <= 'z'; c++ {
		words = append(words, fmt.Sprintf("q%c", c))
	}
	// "qqqq" has no single edit match; the fallback returns all 26 q-words
	out := run(t, 3, "qqqq\n", words...)
	assert.Contains(t, out, "qa")
	assert.Contains(t, out, "qc")
	assert.NotContains(t, out, "qd")
}

func TestExitStopsLoop(t *testing.T) {
	out := run(t, 40, "cat exit\ncut\n", "cat", "cut")
	assert.Contains(t, out, "Word found: cat")
	assert.NotContains(t, out, "Word found: cut")
}

func TestInvalidInputSkipped(t *testing.T) {
	out := run(t, 40, "c4t\n", "cat")
	assert.Contains(t, out, "Skipping 'c4t'")
	assert.NotContains(t, out, "Word not found")
}
