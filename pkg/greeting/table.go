package greeting

import (
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/cases"
)

// Table maps a language key to its ordered, non-empty list of greetings.
type Table struct {
	langs map[string][]string
}

// NewTable validates entries and builds an immutable table.
// Keys are case-folded; every language needs at least one non-empty greeting.
func NewTable(entries map[string][]string) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	langs := make(map[string][]string, len(entries))
	for lang, words := range entries {
		key := fold(lang)
		if key == "" {
			return nil, fmt.Errorf("%w: empty language key", ErrEmptyTable)
		}
		if len(words) == 0 || slices.Contains(words, "") {
			return nil, fmt.Errorf("%w: %s", ErrEmptyGreetings, lang)
		}
		langs[key] = slices.Clone(words)
	}

	return &Table{langs: langs}, nil
}

// MustNewTable is NewTable that panics on invalid entries.
func MustNewTable(entries map[string][]string) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the table the publication ships with.
func Default() *Table {
	return MustNewTable(map[string][]string{
		"english":    {"Hello", "Hi"},
		"french":     {"Salut"},
		"german":     {"Hallo", "Tag"},
		"spanish":    {"Hola"},
		"portuguese": {"Olá"},
		"italian":    {"Ciao"},
		"swedish":    {"Hallå"},
	})
}

// Has reports whether lang is a known language, ignoring case.
func (t *Table) Has(lang string) bool {
	_, ok := t.langs[fold(lang)]
	return ok
}

// Lookup returns a copy of the greetings for lang, ignoring case.
func (t *Table) Lookup(lang string) ([]string, bool) {
	words, ok := t.langs[fold(lang)]
	if !ok {
		return nil, false
	}
	return slices.Clone(words), true
}

// Languages returns the sorted language keys.
func (t *Table) Languages() []string {
	return slices.Sorted(maps.Keys(t.langs))
}

// Greet composes "<greeting>, <name>" using pick to choose the greeting.
func (t *Table) Greet(lang, name string, pick Picker) (string, error) {
	words, ok := t.langs[fold(lang)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	if pick == nil {
		pick = First
	}
	return pick(words) + ", " + name, nil
}

// fold builds a new Caser per call; casers are stateful and not safe to share.
func fold(s string) string {
	return cases.Fold().String(s)
}
