package embeval

import (
	"sort"
)

// WordSimilarity is a word and its cosine similarity to a query.
type WordSimilarity struct {
	Word       string
	Similarity float64
}

// Analogy returns the words that are to word3 as word2 is to word1,
// most similar first. The input words are excluded from the results.
// The embeddings are assumed to be normalized.
func (e *Embeddings) Analogy(word1, word2, word3 string, limit int) ([]WordSimilarity, error) {
	skips := make(map[int]struct{}, 3)
	rows := make([][]float64, 3)
	for idx, word := range []string{word1, word2, word3} {
		id, ok := e.indices[word]
		if !ok {
			return nil, unknownWord(word)
		}
		skips[id] = struct{}{}
		rows[idx] = e.row(id)
	}

	v4 := offset(rows[0], rows[1], rows[2])
	if err := normalize(v4); err != nil {
		return nil, err
	}

	return e.similarity(v4, skips, limit), nil
}

// Similarity returns the words that are most similar to word by cosine
// similarity. The word itself is excluded from the results. The
// embeddings are assumed to be normalized.
func (e *Embeddings) Similarity(word string, limit int) ([]WordSimilarity, error) {
	id, ok := e.indices[word]
	if !ok {
		return nil, unknownWord(word)
	}

	skips := map[int]struct{}{
		id: {},
	}

	return e.similarity(e.row(id), skips, limit), nil
}

func (e *Embeddings) similarity(vec []float64, skips map[int]struct{}, limit int) []WordSimilarity {
	if limit <= 0 {
		return []WordSimilarity{}
	}
	results := make([]WordSimilarity, 0, limit)

	for id, sim := range dotAll(e.matrix, vec) {
		// Skip words in the skip set.
		if _, ok := skips[id]; ok {
			continue
		}

		// Insert after words with the same similarity, so that ties
		// keep vocabulary order.
		ip := sort.Search(len(results), func(i int) bool {
			return results[i].Similarity < sim
		})
		if ip < limit {
			results = insertWithLimit(results, limit, ip, WordSimilarity{e.words[id], sim})
		}
	}

	return results
}

func insertWithLimit(slice []WordSimilarity, limit, index int, value WordSimilarity) []WordSimilarity {
	if len(slice) < limit {
		slice = append(slice, WordSimilarity{})
	}

	copy(slice[index+1:], slice[index:len(slice)-1])
	slice[index] = value
	return slice
}
