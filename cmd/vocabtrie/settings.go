package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	trie "github.com/sarthakjha889/go-vocab-trie"
)

type Settings struct {
	Vocab     string          `toml:"vocab"`
	Separator string          `toml:"separator"`
	Log       LogSettings     `toml:"log"`
	Queries   QueriesSettings `toml:"queries"`
}

type LogSettings struct {
	Verbose bool `toml:"verbose"`
}

// QueriesSettings lists the words the report asks about.
type QueriesSettings struct {
	Inserted []string `toml:"inserted"`
	Partial  []string `toml:"partial"`
	Suggest  []string `toml:"suggest"`
}

func defaultSettings() Settings {
	return Settings{
		Vocab:     "vocab.txt",
		Separator: trie.Separator,
		Queries: QueriesSettings{
			Inserted: []string{"hello", "test", "world", "hellokitty", "ant", "an", "abc", "hell"},
			Partial:  []string{"hell"},
			Suggest:  []string{"he", "a"},
		},
	}
}

// loadSettings decodes the toml file at path over the defaults. A missing
// file leaves the defaults in place.
func loadSettings(path string) (Settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("%s is not a valid toml config file: %w", path, err)
	}
	return s, nil
}
