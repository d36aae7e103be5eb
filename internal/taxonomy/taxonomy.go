package taxonomy

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/textnorm"
)

// Category constants for taxonomy entries
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
)

// Entry is one canonical skill and the aliases that denote it.
type Entry struct {
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Taxonomy is an immutable lookup from normalized alias to canonical skill.
// It is built once and shared by any number of concurrent readers without locking.
type Taxonomy struct {
	source   string
	entries  []Entry
	index    map[string]int // normalized alias -> entry position
	byName   map[string]int
	maxWords int
}

// New builds a taxonomy from entries in declaration order.
// Canonical names are lower-cased and implicitly count as aliases of themselves.
// When two entries declare the same alias, the entry declared first keeps it.
func New(source string, entries []Entry) (*Taxonomy, error) {
	t := &Taxonomy{
		source:   source,
		entries:  make([]Entry, 0, len(entries)),
		index:    make(map[string]int),
		byName:   make(map[string]int, len(entries)),
		maxWords: 1,
	}

	for i, raw := range entries {
		if NormalizeAlias(raw.Name) == "" {
			return nil, &ValidationError{Entry: i, Message: "skill name is empty"}
		}
		name := strings.Join(strings.Fields(strings.ToLower(raw.Name)), " ")
		if _, dup := t.byName[name]; dup {
			return nil, &ValidationError{Entry: i, Message: fmt.Sprintf("duplicate skill name %q", name)}
		}

		category := strings.ToLower(strings.TrimSpace(raw.Category))
		if category == "" {
			category = CategoryTechnical
		}

		pos := len(t.entries)
		entry := Entry{Name: name, Category: category}
		seen := make(map[string]bool)
		for _, alias := range append([]string{raw.Name}, raw.Aliases...) {
			key := NormalizeAlias(alias)
			if key == "" {
				return nil, &ValidationError{Entry: i, Message: fmt.Sprintf("alias %q of %q normalizes to nothing", alias, name)}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			entry.Aliases = append(entry.Aliases, key)

			if _, taken := t.index[key]; !taken {
				t.index[key] = pos
			}
			if words := strings.Count(key, " ") + 1; words > t.maxWords {
				t.maxWords = words
			}
		}

		t.entries = append(t.entries, entry)
		t.byName[name] = pos
	}

	return t, nil
}

// NormalizeAlias reduces an alias to the space-joined token form produced by the text normalizer.
func NormalizeAlias(alias string) string {
	return strings.Join(textnorm.Tokenize(alias), " ")
}

// Lookup returns the canonical skill for an already-normalized phrase.
func (t *Taxonomy) Lookup(phrase string) (string, bool) {
	pos, ok := t.index[phrase]
	if !ok {
		return "", false
	}
	return t.entries[pos].Name, true
}

// MaxPhraseWords returns the length, in words, of the longest alias.
func (t *Taxonomy) MaxPhraseWords() int {
	return t.maxWords
}

// IsPhrase reports whether phrase is a multi-word alias.
func (t *Taxonomy) IsPhrase(phrase string) bool {
	if !strings.Contains(phrase, " ") {
		return false
	}
	_, ok := t.index[phrase]
	return ok
}

// Category returns the category of a canonical skill, or "" if the skill is unknown.
func (t *Taxonomy) Category(name string) string {
	pos, ok := t.byName[name]
	if !ok {
		return ""
	}
	return t.entries[pos].Category
}

// Len returns the number of canonical skills.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Source describes where the taxonomy was loaded from.
func (t *Taxonomy) Source() string {
	return t.source
}

// Entries returns a copy of the normalized entries in declaration order.
func (t *Taxonomy) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Name: e.Name, Category: e.Category, Aliases: append([]string(nil), e.Aliases...)}
	}
	return out
}
