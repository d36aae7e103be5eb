// Package textnorm turns raw document text into a stream of lower-cased tokens.
package textnorm

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	urlPattern        = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+\.[A-Za-z]{2,}`)
	pageMarkerPattern = regexp.MustCompile(`(?i)\bpage\s+\d+(?:\s*(?:of|/)\s*\d+)?\b`)
)

// PhraseIndex reports which multi-word phrases must be kept together as one token.
type PhraseIndex interface {
	// MaxPhraseWords is the length, in words, of the longest phrase.
	MaxPhraseWords() int
	// IsPhrase reports whether the space-joined words form a known phrase.
	IsPhrase(phrase string) bool
}

// Normalizer tokenizes text and merges known phrases into single tokens.
// A Normalizer is immutable and safe for concurrent use.
type Normalizer struct {
	phrases PhraseIndex
}

// New returns a Normalizer that merges phrases from the given index. A nil index disables merging.
func New(phrases PhraseIndex) *Normalizer {
	return &Normalizer{phrases: phrases}
}

// Normalize returns the tokens of raw without phrase merging.
func Normalize(raw string) iter.Seq[string] {
	return New(nil).Normalize(raw)
}

// Tokenize collects the tokens of raw into a slice.
func Tokenize(raw string) []string {
	var out []string
	for tok := range Normalize(raw) {
		out = append(out, tok)
	}
	return out
}

// Normalize returns a lazy sequence over the tokens of raw. Nothing is computed until the
// sequence is ranged over, and ranging over it again starts from the beginning.
// Multi-word phrases from the index are emitted as one space-joined token, longest first.
func (n *Normalizer) Normalize(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		maxWords := 1
		if n.phrases != nil {
			maxWords = max(1, n.phrases.MaxPhraseWords())
		}

		if maxWords == 1 {
			for w := range words(raw) {
				if !yield(w) {
					return
				}
			}
			return
		}

		next, stop := iter.Pull(words(raw))
		defer stop()

		buf := make([]string, 0, maxWords)
		for {
			for len(buf) < maxWords {
				w, ok := next()
				if !ok {
					break
				}
				buf = append(buf, w)
			}
			if len(buf) == 0 {
				return
			}

			size, tok := 1, buf[0]
			for k := min(maxWords, len(buf)); k >= 2; k-- {
				phrase := strings.Join(buf[:k], " ")
				if n.phrases.IsPhrase(phrase) {
					size, tok = k, phrase
					break
				}
			}

			if !yield(tok) {
				return
			}
			buf = append(buf[:0], buf[size:]...)
		}
	}
}

// Clean applies Unicode compatibility normalization and lower-casing, and removes URLs,
// e-mail addresses and page markers left over from document conversion.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	text := norm.NFKC.String(raw)
	text = urlPattern.ReplaceAllString(text, " ")
	text = emailPattern.ReplaceAllString(text, " ")
	text = pageMarkerPattern.ReplaceAllString(text, " ")
	// A Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(text)
}

// words streams the raw word tokens of text.
// Letters and digits form words; '+', '#' and '.' are kept inside words so that
// names like c++, c# and node.js survive.
func words(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		text := Clean(raw)
		start := -1
		for i, r := range text {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if w, ok := finishWord(text[start:i]); ok && !yield(w) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			if w, ok := finishWord(text[start:]); ok {
				yield(w)
			}
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// finishWord trims sentence punctuation from a candidate word and drops punctuation-only tokens.
func finishWord(w string) (string, bool) {
	w = strings.TrimRight(w, ".")
	// Keep a leading dot only when it prefixes a name such as ".net".
	for strings.HasPrefix(w, "..") {
		w = w[1:]
	}
	if strings.HasPrefix(w, ".") && len(w) > 1 {
		if next, _ := utf8.DecodeRuneInString(w[1:]); !unicode.IsLetter(next) {
			w = strings.TrimLeft(w, ".")
		}
	}
	for _, r := range w {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return w, true
		}
	}
	return "", false
}
