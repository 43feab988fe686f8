// Command vocabtrie loads a vocabulary file into a trie and prints a
// membership and suggestion report for it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	trie "github.com/sarthakjha889/go-vocab-trie"
	"github.com/sarthakjha889/go-vocab-trie/internal/logger"
	"github.com/sarthakjha889/go-vocab-trie/vocab"
)

func main() {
	var (
		configFile string
		vocabFile  string
		verbose    bool
	)
	flag.StringVar(&configFile, "c", "vocabtrie.toml", "toml config file")
	flag.StringVar(&vocabFile, "f", "", "vocabulary file, overrides the config")
	flag.BoolVar(&verbose, "v", false, "verbose")
	flag.Parse()

	settings, err := loadSettings(configFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if vocabFile != "" {
		settings.Vocab = vocabFile
	}
	if verbose || settings.Log.Verbose {
		logger.SetLogger(log.New(os.Stderr, "[vocabtrie] ", log.LstdFlags))
	}

	if err := run(os.Stdout, settings); err != nil {
		fmt.Printf("Error when loading from text: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, s Settings) error {
	t := trie.New()
	if _, err := vocab.Load(s.Vocab, t); err != nil {
		return err
	}
	report(w, t, s)
	return nil
}

func report(w io.Writer, t *trie.Trie, s Settings) {
	sep := s.Separator
	if sep == "" {
		sep = trie.Separator
	}
	for _, word := range s.Queries.Inserted {
		fmt.Fprintf(w, "%s?: %v\n", word, t.Search(word, true))
	}
	for _, word := range s.Queries.Partial {
		fmt.Fprintf(w, "The substring %s is 'in the' trie, although it is never inserted: %v\n",
			word, t.Search(word, false))
	}
	fmt.Fprintf(w, "All inserted words of the trie are: %s\n", strings.Join(t.Words(), sep))
	for _, partial := range s.Queries.Suggest {
		fmt.Fprintf(w, "If I type in '%s', the trie will suggest the words: %s\n",
			partial, strings.Join(t.Suggestions(partial), sep))
	}
}
