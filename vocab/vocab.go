// Package vocab loads vocabulary files into a word index.
//
// A vocabulary file holds words separated by newlines and commas. Tokens
// are trimmed and empty ones are dropped, so "hello, test,\n\nworld" holds
// three words. Files that are not UTF-8 are decoded first, see Read.
package vocab

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sarthakjha889/go-vocab-trie/internal/logger"
)

// Inserter receives the words read from a vocabulary.
type Inserter interface {
	Insert(words ...string) error
}

// Load reads the vocabulary file at path into dst and returns the number
// of words read.
func Load(path string, dst Inserter) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("load vocabulary: %w", err)
	}
	defer f.Close()

	n, err := Read(f, dst)
	if err != nil {
		return n, fmt.Errorf("load vocabulary: %w", err)
	}
	logger.Logger.Printf("loaded %d words from %s", n, path)
	return n, nil
}

// Read reads a whole vocabulary from r and inserts its words into dst.
// A leading byte order mark selects UTF-8 or UTF-16. Otherwise input that
// is valid UTF-8 is used as is, and anything else is decoded from the
// charset detected for it. Tokens that are still not valid UTF-8 after
// decoding are skipped. The count returned is the number of words dst
// accepted, also when an error stops the read.
func Read(r io.Reader, dst Inserter) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	text, err := decode(data)
	if err != nil {
		return 0, err
	}
	words, empty := split(text)
	if empty > 0 {
		logger.Logger.Printf("skipped %d empty tokens", empty)
	}
	return insertWords(dst, words)
}

// insertWords inserts words into dst one at a time, skipping those that
// are not valid UTF-8, and returns how many dst accepted.
func insertWords(dst Inserter, words []string) (int, error) {
	n, invalid := 0, 0
	for _, word := range words {
		if !utf8.ValidString(word) {
			invalid++
			continue
		}
		if err := dst.Insert(word); err != nil {
			return n, err
		}
		n++
	}
	if invalid > 0 {
		logger.Logger.Printf("skipped %d tokens that are not valid UTF-8", invalid)
	}
	return n, nil
}

// Tokens splits text into lines, then each line on commas, and returns the
// trimmed non-empty tokens in order.
func Tokens(text string) []string {
	words, _ := split(text)
	return words
}

// split is Tokens that also counts the empty tokens it dropped.
func split(text string) (words []string, empty int) {
	for _, line := range strings.Split(text, "\n") {
		for _, field := range strings.Split(line, ",") {
			if word := strings.TrimSpace(field); word != "" {
				words = append(words, word)
			} else {
				empty++
			}
		}
	}
	return words, empty
}
