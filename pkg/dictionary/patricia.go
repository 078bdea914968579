package dictionary

import (
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PatriciaTrie stores the vocabulary in a compressed patricia trie. It answers
// the same queries as Trie and is selected with the "patricia" backend.
type PatriciaTrie struct {
	trie  *patricia.Trie
	words int
}

// NewPatriciaTrie returns an empty patricia-backed lexicon.
func NewPatriciaTrie() *PatriciaTrie {
	return &PatriciaTrie{trie: patricia.NewTrie()}
}

// Insert stores word. Repeated inserts are no-ops.
func (p *PatriciaTrie) Insert(word string) {
	if p.trie.Insert(patricia.Prefix(word), struct{}{}) {
		p.words++
	}
}

// Search reports whether word was inserted.
func (p *PatriciaTrie) Search(word string) bool {
	return p.trie.Get(patricia.Prefix(word)) != nil
}

// PrefixWords mirrors Trie.PrefixWords: each prefix of word that still has a
// subtree contributes every word stored under it.
func (p *PatriciaTrie) PrefixWords(word string) []string {
	var words []string
	for i := range word {
		_, width := utf8.DecodeRuneInString(word[i:])
		prefix := patricia.Prefix(word[:i+width])
		if !p.trie.MatchSubtree(prefix) {
			break
		}
		err := p.trie.VisitSubtree(prefix, func(key patricia.Prefix, _ patricia.Item) error {
			words = append(words, string(key))
			return nil
		})
		if err != nil {
			log.Errorf("Error visiting patricia subtree %q: %v", prefix, err)
			break
		}
	}
	return words
}

// Stats reports the word count; patricia does not expose its nodes.
func (p *PatriciaTrie) Stats() Stats {
	return Stats{Backend: BackendPatricia, Words: p.words}
}
