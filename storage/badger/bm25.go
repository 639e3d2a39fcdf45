package badger

import (
	"math"
	"strings"
	"unicode"
)

// BM25 constants. Standard Okapi defaults.
const (
	bm25K1 = 1.2
	bm25B  = 0.75
)

// tokenize lowercases text and splits it on non-alphanumeric runes.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// fieldStats holds corpus-wide statistics for one searchable field.
type fieldStats struct {
	docCount  int
	totalLen  int
	termDocs  map[string]int // term -> number of docs containing it
	docTokens []map[string]int
	docLens   []int
}

func newFieldStats() *fieldStats {
	return &fieldStats{termDocs: make(map[string]int)}
}

// addDoc records one document's tokens for this field and returns its index.
func (s *fieldStats) addDoc(text string) int {
	tokens := tokenize(text)
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	for term := range counts {
		s.termDocs[term]++
	}
	s.docCount++
	s.totalLen += len(tokens)
	s.docTokens = append(s.docTokens, counts)
	s.docLens = append(s.docLens, len(tokens))
	return s.docCount - 1
}

// score computes the BM25 score of the query terms against document docIdx.
func (s *fieldStats) score(terms []string, docIdx int) float64 {
	if s.docCount == 0 || s.docLens[docIdx] == 0 {
		return 0
	}
	avgLen := float64(s.totalLen) / float64(s.docCount)
	counts := s.docTokens[docIdx]
	docLen := float64(s.docLens[docIdx])

	var total float64
	for _, term := range terms {
		tf := float64(counts[term])
		if tf == 0 {
			continue
		}
		df := float64(s.termDocs[term])
		idf := math.Log(1 + (float64(s.docCount)-df+0.5)/(df+0.5))
		total += idf * (tf * (bm25K1 + 1)) / (tf + bm25K1*(1-bm25B+bm25B*docLen/avgLen))
	}
	return total
}
