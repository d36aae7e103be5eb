package textnorm

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type phraseSet map[string]bool

func (p phraseSet) MaxPhraseWords() int {
	longest := 1
	for phrase := range p {
		n := len(Tokenize(phrase))
		if n > longest {
			longest = n
		}
	}
	return longest
}

func (p phraseSet) IsPhrase(phrase string) bool { return p[phrase] }

func TestTokenize_LowercasesAndStripsPunctuation(t *testing.T) {
	tokens := Tokenize("Experienced in Python, SQL, and Project Management.")
	assert.Equal(t, []string{"experienced", "in", "python", "sql", "and", "project", "management"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \n\t  "))
	assert.Empty(t, Tokenize("... --- !!! • ▪"))
}

func TestTokenize_KeepsTechnologyNames(t *testing.T) {
	tokens := Tokenize("Built APIs in C++, C# and Node.js; deployed on .NET.")
	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "node.js")
	assert.Contains(t, tokens, ".net")
}

func TestTokenize_StripsConversionArtifacts(t *testing.T) {
	raw := "• Led   migration\f\n▪ Page 2 of 3\n● See https://example.com/cv or mail jane@example.com"
	tokens := Tokenize(raw)
	assert.Equal(t, []string{"led", "migration", "see", "or", "mail"}, tokens)
}

func TestTokenize_FoldsLigatures(t *testing.T) {
	// U+FB01 LATIN SMALL LIGATURE FI, typical of PDF text extraction.
	tokens := Tokenize("Proﬁcient in ＰＹＴＨＯＮ")
	assert.Equal(t, []string{"proficient", "in", "python"}, tokens)
}

func TestNormalizer_MergesPhrasesLongestFirst(t *testing.T) {
	n := New(phraseSet{"machine learning": true, "machine learning engineer": true, "project management": true})

	tokens := slices.Collect(n.Normalize("Machine learning engineer with project management background"))
	assert.Equal(t, []string{"machine learning engineer", "with", "project management", "background"}, tokens)

	tokens = slices.Collect(n.Normalize("machine learning models"))
	assert.Equal(t, []string{"machine learning", "models"}, tokens)
}

func TestNormalizer_PhraseAtEndOfText(t *testing.T) {
	n := New(phraseSet{"project management": true})
	tokens := slices.Collect(n.Normalize("strong in project management"))
	assert.Equal(t, []string{"strong", "in", "project management"}, tokens)
}

func TestNormalizer_IsRestartable(t *testing.T) {
	n := New(phraseSet{"machine learning": true})
	seq := n.Normalize("Machine learning and statistics")

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"machine learning", "and", "statistics"}, first)
}

func TestNormalizer_EarlyStop(t *testing.T) {
	n := New(phraseSet{"machine learning": true})
	var got []string
	for tok := range n.Normalize("one two three four") {
		got = append(got, tok)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestContentTokens_DropsStopwords(t *testing.T) {
	tokens := slices.Collect(ContentTokens(Normalize("I have years of experience with Go and a passion for Kubernetes")))
	assert.Equal(t, []string{"go", "passion", "kubernetes"}, tokens)
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("experience"))
	assert.False(t, IsStopword("python"))
}

func TestFinishWord_LeadingDot(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"dotted name", ".net", ".net", true},
		{"accented letter after dot", ".été", ".été", true},
		{"digit after dot", ".5", "5", true},
		{"multibyte digit after dot", ".٣", "٣", true},
		{"repeated dots", "...net", ".net", true},
		{"trailing dots", "node.js..", "node.js", true},
		{"only dots", "...", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := finishWord(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
