package dictionary

import "slices"

// Node is a single trie node. Children are owned exclusively by their parent.
type Node struct {
	children map[rune]*Node
	terminal bool
}

func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// Terminal reports whether the path to this node spells a stored word.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Child returns the child reached over edge r, or nil.
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}

// sortedKeys fixes the enumeration order so traversals are reproducible.
func (n *Node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

// Trie is a prefix tree of lowercase words built from owned Node values.
// It is built once and is read-only afterwards.
type Trie struct {
	root  *Node
	words int
	nodes int
}

// NewTrie returns an empty trie with a non-terminal root.
func NewTrie() *Trie {
	return &Trie{root: newNode(), nodes: 1}
}

// Root exposes the root node for subtree enumeration.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert adds word, creating one node per missing edge. Inserting the same
// word again is a no-op.
func (t *Trie) Insert(word string) {
	current := t.root
	for _, r := range word {
		child, ok := current.children[r]
		if !ok {
			child = newNode()
			current.children[r] = child
			t.nodes++
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.words++
	}
}

// Search reports whether word was inserted.
func (t *Trie) Search(word string) bool {
	node := t.find(word)
	return node != nil && node.terminal
}

// find walks word from the root and returns the node reached, or nil as soon
// as an edge is missing.
func (t *Trie) find(word string) *Node {
	current := t.root
	for _, r := range word {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// CollectWords returns every word stored under start, each spelled as
// prefix followed by the path from start.
func CollectWords(start *Node, prefix string) []string {
	if start == nil {
		return nil
	}
	var words []string
	collect(start, []rune(prefix), &words)
	return words
}

func collect(node *Node, path []rune, words *[]string) {
	if node.terminal {
		*words = append(*words, string(path))
	}
	for _, r := range node.sortedKeys() {
		collect(node.children[r], append(path, r), words)
	}
}

// PrefixWords walks word from the root, stopping at the first missing edge.
// Every node reached along the way contributes its whole subtree, so words
// under shorter prefixes of word are included alongside the deeper ones and
// the result contains duplicates.
func (t *Trie) PrefixWords(word string) []string {
	var words []string
	current := t.root
	prefix := make([]rune, 0, len(word))
	for _, r := range word {
		next, ok := current.children[r]
		if !ok {
			break
		}
		current = next
		prefix = append(prefix, r)
		words = append(words, CollectWords(current, string(prefix))...)
	}
	return words
}

// Stats reports the trie size.
func (t *Trie) Stats() Stats {
	return Stats{Backend: BackendTrie, Words: t.words, Nodes: t.nodes}
}
