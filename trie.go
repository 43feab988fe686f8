package trie

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Separator joins words in Suggest and String.
const Separator = ", "

// ErrEmptyWord is returned by Insert for a zero-length word.
var ErrEmptyWord = errors.New("trie: empty word")

// ErrInvalidWord is returned by Insert for a word that is not valid UTF-8.
var ErrInvalidWord = errors.New("trie: word is not valid UTF-8")

// Trie is a prefix tree of inserted words. The Trie itself is the root: it
// has no character of its own, only the first-character children.
//
// A Trie is not safe for concurrent use. Callers sharing one across
// goroutines must guard it themselves, e.g. with a sync.RWMutex.
type Trie struct {
	children map[rune]*node
	size     int
}

// node is one character position below the root.
// terminal marks a word ending here with nothing inserted below it.
// wasTerminal marks a word ending here that is also the prefix of longer words.
type node struct {
	key         rune
	children    map[rune]*node
	terminal    bool
	wasTerminal bool
}

func newNode(key rune) *node {
	return &node{key: key, children: make(map[rune]*node)}
}

// New creates a new empty trie.
func New() *Trie {
	return &Trie{children: make(map[rune]*node)}
}

// Insert inserts words into the Trie in order. It stops at the first empty
// or invalid UTF-8 word and returns ErrEmptyWord or ErrInvalidWord; the
// words before it remain inserted.
func (t *Trie) Insert(words ...string) error {
	for i, word := range words {
		if len(word) == 0 {
			return fmt.Errorf("insert argument %d: %w", i, ErrEmptyWord)
		}
		if !utf8.ValidString(word) {
			return fmt.Errorf("insert argument %d %q: %w", i, word, ErrInvalidWord)
		}
		t.insert(word)
	}
	return nil
}

func (t *Trie) insert(word string) {
	var current *node
	children := t.children
	for _, character := range word {
		child, ok := children[character]
		if !ok {
			child = newNode(character)
			children[character] = child
			// a leaf word now has a longer word below it
			if current != nil && current.terminal {
				current.terminal = false
				current.wasTerminal = true
			}
		}
		current = child
		children = child.children
	}
	if !current.isWord() {
		t.size++
	}
	if len(current.children) == 0 {
		current.terminal = true
	} else {
		current.wasTerminal = true
	}
}

// Search walks word from the root. If onlyInserted is false it reports
// whether word is a path in the trie, i.e. a prefix of some inserted word.
// If onlyInserted is true the path must also end at an inserted word.
func (t *Trie) Search(word string, onlyInserted bool) bool {
	n, ok := t.find(word)
	if !ok {
		return false
	}
	if !onlyInserted {
		return true
	}
	return n != nil && n.isWord()
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool { return t.Search(word, true) }

// HasPrefix reports whether some inserted word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool { return t.Search(prefix, false) }

// Len returns the number of distinct words inserted.
func (t *Trie) Len() int { return t.size }

// Suggestions returns every inserted word that has partial as a prefix,
// partial included when it was inserted itself. The result is empty when
// partial is not a path in the trie.
func (t *Trie) Suggestions(partial string) []string {
	if len(partial) == 0 {
		return t.Words()
	}
	n, ok := t.find(partial)
	if !ok {
		return []string{}
	}
	// the landing node contributes the last character again
	_, size := utf8.DecodeLastRuneInString(partial)
	return n.collect(partial[:len(partial)-size], []string{})
}

// Suggest is Suggestions joined with Separator.
func (t *Trie) Suggest(partial string) string {
	return strings.Join(t.Suggestions(partial), Separator)
}

// Words returns all inserted words. Children are visited in ascending rune
// order and a word is listed before the longer words it prefixes.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.size)
	for _, child := range sortedChildren(t.children) {
		words = child.collect("", words)
	}
	return words
}

// String renders all inserted words joined with Separator.
func (t *Trie) String() string {
	return strings.Join(t.Words(), Separator)
}

// find returns the node reached by walking word. The node is nil for the
// empty word, which ends at the root. Invalid UTF-8 is never a path.
func (t *Trie) find(word string) (*node, bool) {
	if !utf8.ValidString(word) {
		return nil, false
	}
	var current *node
	children := t.children
	for _, character := range word {
		next, ok := children[character]
		if !ok {
			return nil, false
		}
		current = next
		children = next.children
	}
	return current, true
}

func (n *node) isWord() bool {
	return n.terminal || n.wasTerminal
}

// collect appends to words every inserted word at or below n, each being
// prefix followed by the characters on the path from n downwards.
func (n *node) collect(prefix string, words []string) []string {
	word := prefix + string(n.key)
	if n.terminal {
		return append(words, word)
	}
	if n.wasTerminal {
		words = append(words, word)
	}
	for _, child := range sortedChildren(n.children) {
		words = child.collect(word, words)
	}
	return words
}

func sortedChildren(children map[rune]*node) []*node {
	nodes := make([]*node, 0, len(children))
	for _, child := range children {
		nodes = append(nodes, child)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].key < nodes[j].key
	})
	return nodes
}
