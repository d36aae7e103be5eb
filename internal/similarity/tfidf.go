// Package similarity scores how alike two texts are using TF-IDF weighted cosine similarity.
package similarity

import (
	"iter"
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/textnorm"
)

// corpusSize is the number of documents the IDF is computed over: always the pair being compared.
const corpusSize = 2

// Vector is a sparse term-weight vector keyed by token.
type Vector map[string]float64

// termFrequencies counts the non-stopword tokens of a sequence.
func termFrequencies(tokens iter.Seq[string]) (map[string]int, int) {
	tf := make(map[string]int)
	total := 0
	for tok := range textnorm.ContentTokens(tokens) {
		tf[tok]++
		total++
	}
	return tf, total
}

// idf is the smoothed inverse document frequency ln((1+n)/(1+df))+1, so terms shared by both
// documents keep a non-zero weight.
func idf(df int) float64 {
	return math.Log(float64(1+corpusSize)/float64(1+df)) + 1
}

// Vectors builds the TF-IDF vectors of two token sequences over their shared vocabulary.
// Term frequency is the raw count divided by the document's content-token count.
func Vectors(a, b iter.Seq[string]) (Vector, Vector) {
	tfA, totalA := termFrequencies(a)
	tfB, totalB := termFrequencies(b)

	va := make(Vector, len(tfA))
	vb := make(Vector, len(tfB))

	for term, n := range tfA {
		df := 1
		if _, ok := tfB[term]; ok {
			df = 2
		}
		va[term] = float64(n) / float64(totalA) * idf(df)
	}
	for term, n := range tfB {
		df := 1
		if _, ok := tfA[term]; ok {
			df = 2
		}
		vb[term] = float64(n) / float64(totalB) * idf(df)
	}

	return va, vb
}

// Cosine returns the cosine of the angle between two vectors, clamped to [0,1].
// Sums run over the sorted union vocabulary so Cosine(a,b) and Cosine(b,a) are bit-identical.
// An empty vector on either side yields 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	vocab := make([]string, 0, len(a)+len(b))
	for term := range a {
		vocab = append(vocab, term)
	}
	for term := range b {
		if _, ok := a[term]; !ok {
			vocab = append(vocab, term)
		}
	}
	sort.Strings(vocab)

	var dot, normA, normB float64
	for _, term := range vocab {
		x, y := a[term], b[term]
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return clamp(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// Score returns the TF-IDF cosine similarity of two token sequences in [0,1].
func Score(a, b iter.Seq[string]) float64 {
	va, vb := Vectors(a, b)
	return Cosine(va, vb)
}

// ScoreText normalizes both texts and returns their similarity.
func ScoreText(a, b string) float64 {
	return Score(textnorm.Normalize(a), textnorm.Normalize(b))
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
