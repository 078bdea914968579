package suggest

import (
	"time"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Corrector proposes dictionary words close to an unknown word. It only reads
// the lexicon, which must be fully loaded before the first query.
type Corrector struct {
	lex   dictionary.Lexicon
	cache *ResultCache
}

// NewCorrector returns a corrector over lex. cacheSize bounds the number of
// memoized suggestion lists; zero disables the cache.
func NewCorrector(lex dictionary.Lexicon, cacheSize int) *Corrector {
	return &Corrector{
		lex:   lex,
		cache: NewResultCache(cacheSize),
	}
}

// Search reports whether word is in the dictionary.
func (c *Corrector) Search(word string) bool {
	return c.lex.Search(word)
}

// Suggest returns the sorted, duplicate free corrections for word. Single
// edits known to the dictionary win; if there are none, every word under each
// known prefix of word is returned instead. The result may be empty.
func (c *Corrector) Suggest(word string) []string {
	if cached, ok := c.cache.Get(word); ok {
		return cached
	}

	start := time.Now()
	var suggestions []string
	for _, edit := range GenerateEdits(word) {
		if c.lex.Search(edit) {
			suggestions = append(suggestions, edit)
		}
	}

	if len(suggestions) == 0 {
		suggestions = c.lex.PrefixWords(word)
		log.Debugf("No single edit of '%s' matched, prefix fallback found %d words", word, len(suggestions))
	}

	suggestions = utils.SortUnique(suggestions)
	if suggestions == nil {
		suggestions = []string{}
	}
	log.Debugf("Took [ %v ] to correct '%s'", time.Since(start), word)

	c.cache.Put(word, suggestions)
	return suggestions
}

// Check looks word up and attaches suggestions only when it is unknown.
func (c *Corrector) Check(word string) Result {
	if c.lex.Search(word) {
		return Result{Word: word, Found: true}
	}
	return Result{Word: word, Suggestions: c.Suggest(word)}
}

// Stats merges dictionary size with cache counters.
func (c *Corrector) Stats() map[string]any {
	ds := c.lex.Stats()
	stats := map[string]any{
		"backend": ds.Backend,
		"words":   ds.Words,
		"nodes":   ds.Nodes,
	}
	for k, v := range c.cache.Stats() {
		stats[k] = v
	}
	return stats
}
