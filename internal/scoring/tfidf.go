package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/floats"
)

// maxVocabulary caps the TF-IDF vocabulary at the most frequent terms across
// the corpus.
const maxVocabulary = 2000

var termPattern = regexp.MustCompile(`[a-zA-Z0-9_]{2,}`)

// vectorize builds L2-normalized TF-IDF vectors for the given documents after
// English stop-word removal. ok is false when the corpus yields an empty
// vocabulary.
func vectorize(docs []string) (vectors [][]float64, ok bool) {
	counts := make([]map[string]float64, len(docs))
	totals := make(map[string]float64)
	docFreq := make(map[string]float64)

	for i, doc := range docs {
		cleaned := stopwords.CleanString(strings.ToLower(doc), "en", false)
		counts[i] = make(map[string]float64)
		for _, term := range termPattern.FindAllString(cleaned, -1) {
			counts[i][term]++
			totals[term]++
		}
		for term := range counts[i] {
			docFreq[term]++
		}
	}

	if len(totals) == 0 {
		return nil, false
	}

	vocab := make([]string, 0, len(totals))
	for term := range totals {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if totals[vocab[i]] != totals[vocab[j]] {
			return totals[vocab[i]] > totals[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxVocabulary {
		vocab = vocab[:maxVocabulary]
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		// Smoothed IDF keeps terms present in every document from
		// zeroing out in a two-document corpus.
		idf[i] = math.Log((1+n)/(1+docFreq[term])) + 1
	}

	vectors = make([][]float64, len(docs))
	for d := range docs {
		vec := make([]float64, len(vocab))
		for i, term := range vocab {
			vec[i] = counts[d][term] * idf[i]
		}
		if norm := floats.Norm(vec, 2); norm > 0 {
			floats.Scale(1/norm, vec)
		}
		vectors[d] = vec
	}
	return vectors, true
}

// cosine returns the cosine similarity between two equal-length vectors.
// A zero vector has no direction and contributes zero similarity.
func cosine(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}
