package embeval

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func word2vecBinary(t *testing.T, words []string, vecs [][]float32) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d\n", len(words), len(vecs[0]))
	for idx, word := range words {
		buf.WriteString(word + " ")
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, vecs[idx]))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func TestReadWord2VecBinary(t *testing.T) {
	data := word2vecBinary(t, []string{"man", "woman", "apple"}, [][]float32{
		{3, 4, 0},
		{0, 1, 0},
		{0, 0, 2},
	})

	embeds, err := ReadWord2VecBinary(bufio.NewReader(bytes.NewReader(data)), true)
	require.NoError(t, err)

	assert.Equal(t, 3, embeds.Size())
	assert.Equal(t, 3, embeds.Dims())
	assert.Equal(t, []string{"man", "woman", "apple"}, embeds.Words())

	vec, ok := embeds.Vector("man")
	require.True(t, ok)
	assert.True(t, floats.EqualApprox([]float64{0.6, 0.8, 0}, vec, 1e-7))
}

func TestReadWord2VecBinaryTruncated(t *testing.T) {
	data := word2vecBinary(t, []string{"man", "woman"}, [][]float32{
		{1, 0},
		{0, 1},
	})

	_, err := ReadWord2VecBinary(bufio.NewReader(bytes.NewReader(data[:len(data)-5])), false)
	require.Error(t, err)

	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestReadWord2VecBinaryBadHeader(t *testing.T) {
	_, err := ReadWord2VecBinary(bufio.NewReader(strings.NewReader("many words\n")), false)

	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestWriteTextRoundTrip(t *testing.T) {
	data := word2vecBinary(t, []string{"man", "woman"}, [][]float32{
		{0.5, -0.25},
		{1, 2},
	})

	fromBinary, err := ReadWord2VecBinary(bufio.NewReader(bytes.NewReader(data)), false)
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, WriteText(&text, fromBinary))
	assert.Equal(t, "2 2\nman 0.500000 -0.250000\nwoman 1.000000 2.000000\n", text.String())

	fromText, err := ReadEmbeddings(bufio.NewReader(&text), false)
	require.NoError(t, err)

	assert.Equal(t, fromBinary.Words(), fromText.Words())
	for _, word := range fromBinary.Words() {
		v1, _ := fromBinary.Vector(word)
		v2, _ := fromText.Vector(word)
		assert.True(t, floats.EqualApprox(v1, v2, 1e-6), "vectors of '%s' differ", word)
	}
}

func TestReadWord2VecBinaryLargeHeader(t *testing.T) {
	for _, header := range []string{
		"99999999999 99999999999\n",
		"100000000 4\nfoo ",
		"1 99999999\nfoo ",
	} {
		_, err := ReadWord2VecBinary(bufio.NewReader(strings.NewReader(header)), false)

		var formatErr *FormatError
		assert.True(t, errors.As(err, &formatErr), "header: %q", header)
	}
}
