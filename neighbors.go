package embeval

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// WordDistance is a word and its Euclidean distance to a query.
type WordDistance struct {
	Word     string
	Distance float64
}

// Nearest returns the k words that are closest to word by Euclidean
// distance, nearest first. The query word itself is included, usually
// at distance 0. false is returned when the word is not in the
// vocabulary.
func (e *Embeddings) Nearest(word string, k int) ([]WordDistance, bool) {
	idx, ok := e.indices[word]
	if !ok {
		return nil, false
	}

	return e.NearestToVector(e.row(idx), k), true
}

// NearestToVector returns the k words that are closest to vec by
// Euclidean distance, nearest first. Words at the same distance are
// ordered by their id.
func (e *Embeddings) NearestToVector(vec []float64, k int) []WordDistance {
	distances := make([]float64, len(e.words))
	for idx := range e.words {
		distances[idx] = floats.Distance(e.row(idx), vec, 2)
	}

	ids := make([]int, len(e.words))
	for idx := range ids {
		ids[idx] = idx
	}

	sort.SliceStable(ids, func(i, j int) bool {
		return distances[ids[i]] < distances[ids[j]]
	})

	if k > len(ids) {
		k = len(ids)
	}
	if k < 0 {
		k = 0
	}

	results := make([]WordDistance, k)
	for idx, id := range ids[:k] {
		results[idx] = WordDistance{Word: e.words[id], Distance: distances[id]}
	}

	return results
}
