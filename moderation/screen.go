// Package moderation screens user-supplied activity names and
// descriptions against a blocked-word list before anything is
// persisted or surfaced to other users.
package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"sched-bot/errors"
)

//go:embed blocked/*
var blockedFolder embed.FS

// NameScreen matches normalized input against an Aho-Corasick
// automaton built from the blocked-word list.
type NameScreen struct {
	matcher *goahocorasick.Machine
}

// NewNameScreen builds the automaton from the given words.
func NewNameScreen(words []string) (*NameScreen, error) {
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &NameScreen{matcher: m}, nil
}

// NewDefaultNameScreen loads the embedded blocked-word lists.
func NewDefaultNameScreen() (*NameScreen, error) {
	words, err := loadBlockedWords("blocked")
	if err != nil {
		return nil, err
	}
	return NewNameScreen(words)
}

// Blocked reports whether the text contains any blocked word after
// normalization (case folding, leet substitution, noise stripping).
func (s *NameScreen) Blocked(text string) bool {
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return false
	}
	return len(s.matcher.MultiPatternSearch(normalized, true)) > 0
}

// loadBlockedWords parses every .txt file of the embedded directory
// into a unique word list, one word per line.
func loadBlockedWords(path string) ([]string, error) {
	entries, err := fs.ReadDir(blockedFolder, path)
	if err != nil {
		return nil, err
	}

	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := blockedFolder.ReadFile(path + "/" + entry.Name())
		if err != nil {
			return nil, err
		}
		// A scanner handles both \n and \r\n line endings
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word != "" {
				unique[word] = struct{}{}
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	words := make([]string, 0, len(unique))
	for word := range unique {
		words = append(words, word)
	}
	return words, nil
}

// normalizeRunes folds case, maps common leet substitutions back to
// letters and drops punctuation, spacing and symbols.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if unicode.IsPunct(clean) || unicode.IsSpace(clean) || unicode.IsSymbol(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
