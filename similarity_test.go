package embeval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func similarityWords(results []WordSimilarity) []string {
	ws := make([]string, len(results))
	for idx, result := range results {
		ws[idx] = result.Word
	}
	return ws
}

func TestAnalogy(t *testing.T) {
	embeds := readEmbeddingsOrFail(t, "testdata/embeddings.txt", true)

	answers, err := embeds.Analogy("man", "king", "woman", 2)
	require.NoError(t, err)
	require.Len(t, answers, 2)

	// apple is orthogonal to the offset vector.
	assert.Equal(t, []string{"queen", "apple"}, similarityWords(answers))
	assert.InDelta(t, 0.0, answers[1].Similarity, 1e-9)
}

func TestAnalogyUnknownWord(t *testing.T) {
	embeds := readEmbeddingsOrFail(t, "testdata/embeddings.txt", true)

	_, err := embeds.Analogy("man", "king", "princess", 10)
	assert.True(t, errors.Is(err, ErrUnknownWord))
}

func TestSimilarity(t *testing.T) {
	embeds := readEmbeddingsOrFail(t, "testdata/embeddings.txt", true)

	answers, err := embeds.Similarity("king", 10)
	require.NoError(t, err)

	// woman and apple tie and keep vocabulary order.
	assert.Equal(t, []string{"man", "queen", "woman", "apple"}, similarityWords(answers))
	assert.InDelta(t, 0.7071, answers[0].Similarity, 1e-4)
	assert.InDelta(t, 0.5, answers[1].Similarity, 1e-4)
}

func TestSimilarityLimit(t *testing.T) {
	embeds := readEmbeddingsOrFail(t, "testdata/embeddings.txt", true)

	answers, err := embeds.Similarity("king", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"man"}, similarityWords(answers))

	for _, limit := range []int{0, -1} {
		answers, err = embeds.Similarity("king", limit)
		require.NoError(t, err)
		assert.Empty(t, answers, "limit: %d", limit)

		answers, err = embeds.Analogy("man", "king", "woman", limit)
		require.NoError(t, err)
		assert.Empty(t, answers, "limit: %d", limit)
	}
}

func TestSimilarityUnknownWord(t *testing.T) {
	embeds := readEmbeddingsOrFail(t, "testdata/embeddings.txt", true)

	_, err := embeds.Similarity("Bogus", 10)
	assert.True(t, errors.Is(err, ErrUnknownWord))
}
