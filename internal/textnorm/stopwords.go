package textnorm

import (
	"iter"
	"unicode/utf8"
)

// englishStopwords are function words that carry no topical signal.
var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
	"can", "could", "did", "do", "does", "doing", "don", "down", "during", "each", "etc", "few", "for",
	"from", "further", "had", "has", "have", "having", "here", "how", "if", "in", "into", "is", "just",
	"more", "most", "must", "no", "nor", "not", "now", "of", "off", "on", "once", "only", "or", "other",
	"out", "over", "own", "per", "same", "should", "so", "some", "such", "than", "that", "the", "then",
	"there", "these", "this", "those", "through", "to", "too", "under", "until", "up", "very", "via",
	"was", "were", "what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"within", "would", "yet",
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "her", "hers", "herself", "it", "its", "itself",
	"they", "them", "their", "theirs", "themselves",
}

// resumeStopwords are words present in nearly every resume or job posting.
var resumeStopwords = []string{
	"job", "jobs", "work", "worked", "working", "experience", "experienced", "skill", "skills", "ability",
	"knowledge", "responsibility", "responsibilities", "duty", "duties", "task", "tasks", "role", "position",
	"company", "organization", "team", "project", "projects", "year", "years", "month", "months",
	"education", "degree", "university", "college", "school", "qualification", "qualifications",
	"certification", "certificate", "training", "course", "candidate", "looking", "seeking",
}

var stopwords = func() map[string]bool {
	set := make(map[string]bool, len(englishStopwords)+len(resumeStopwords))
	for _, w := range englishStopwords {
		set[w] = true
	}
	for _, w := range resumeStopwords {
		set[w] = true
	}
	return set
}()

// IsStopword reports whether tok is an English or resume-boilerplate stopword.
func IsStopword(tok string) bool {
	return stopwords[tok]
}

// ContentTokens filters seq down to tokens that carry topical signal:
// stopwords and single-character tokens are dropped.
func ContentTokens(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for tok := range seq {
			if stopwords[tok] || utf8.RuneCountInString(tok) < 2 {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}
