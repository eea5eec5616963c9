// Package answers reads the answer book checked by "aoc verify".
package answers

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEntry is returned for an entry without a day or part.
var ErrInvalidEntry = errors.New("answers: invalid entry")

// Entry is one expected answer. An empty Input means the configured input
// directory's dayN.txt.
type Entry struct {
	Day   int    `yaml:"day"`
	Part  int    `yaml:"part"`
	Input string `yaml:"input,omitempty"`
	Want  int64  `yaml:"want"`
}

// Book represents the structure of answers.yaml.
type Book struct {
	Answers []Entry `yaml:"answers"`
}

// Parse decodes a YAML answer book.
func Parse(data []byte) (Book, error) {
	var b Book
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Book{}, fmt.Errorf("answers: parse: %w", err)
	}
	for i, e := range b.Answers {
		if e.Day == 0 || e.Part == 0 {
			return Book{}, fmt.Errorf("%w: #%d needs day and part", ErrInvalidEntry, i+1)
		}
	}

	return b, nil
}

// Load reads and parses the answer book at path.
func Load(path string) (Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Book{}, fmt.Errorf("answers: read %s: %w", path, err)
	}

	return Parse(data)
}
