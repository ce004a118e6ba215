package analysis

import (
	"hash/fnv"
	"math"
	"regexp"
	"strings"

	"github.com/noemalabs/noema/internal/domain"
)

// EmbeddingDim is the fixed dimension of hashed term-frequency embeddings
// (matches the vector(64) column in the archive schema).
const EmbeddingDim = 64

var wordPattern = regexp.MustCompile(`[\p{L}\d]+`)

// TermVectorizer builds term-frequency vectors over a shared vocabulary and
// compares them with cosine similarity. It is the classical stand-in for a
// trained semantic model.
type TermVectorizer struct{}

func NewTermVectorizer() *TermVectorizer {
	return &TermVectorizer{}
}

// Tokenize lowercases the text and extracts word tokens.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// SimilarityMatrix returns the full pairwise cosine similarity matrix over
// the given texts. The diagonal is exactly 1.0 for any text with at least one
// token. Returns ErrDegenerateInput when no text yields a token.
func (v *TermVectorizer) SimilarityMatrix(texts []string) ([][]float64, error) {
	vocab := make(map[string]int)
	tokenized := make([][]string, len(texts))
	for i, text := range texts {
		tokens := Tokenize(text)
		tokenized[i] = tokens
		for _, tok := range tokens {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}
	if len(vocab) == 0 {
		return nil, domain.ErrDegenerateInput
	}

	vectors := make([][]float64, len(texts))
	norms := make([]float64, len(texts))
	for i, tokens := range tokenized {
		vec := make([]float64, len(vocab))
		for _, tok := range tokens {
			vec[vocab[tok]]++
		}
		vectors[i] = vec
		norms[i] = norm(vec)
	}

	matrix := make([][]float64, len(texts))
	for i := range texts {
		matrix[i] = make([]float64, len(texts))
	}
	for i := range texts {
		for j := i; j < len(texts); j++ {
			var sim float64
			switch {
			case i == j && norms[i] > 0:
				sim = 1.0
			case norms[i] > 0 && norms[j] > 0:
				sim = dot(vectors[i], vectors[j]) / (norms[i] * norms[j])
			}
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix, nil
}

// Embed maps a text to a fixed-dimension L2-normalized vector via feature
// hashing of its term frequencies.
func (v *TermVectorizer) Embed(text string) []float32 {
	vec := make([]float64, EmbeddingDim)
	for _, tok := range Tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(tok))
		vec[h.Sum32()%EmbeddingDim]++
	}

	n := norm(vec)
	out := make([]float32, EmbeddingDim)
	if n == 0 {
		return out
	}
	for i, val := range vec {
		out[i] = float32(val / n)
	}
	return out
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
