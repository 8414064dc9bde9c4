package embeval

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadWord2VecBinary reads embeddings in the binary word2vec format. If
// normalize is true, the vectors are scaled to unit length.
func ReadWord2VecBinary(r *bufio.Reader, normalize bool) (*Embeddings, error) {
	var nWords, dims int
	if _, err := fmt.Fscanf(r, "%d %d\n", &nWords, &dims); err != nil {
		return nil, formatErrorf(1, err, "cannot read header")
	}

	if err := checkShape(nWords, dims, 1); err != nil {
		return nil, err
	}

	// The row buffer is sized by the header.
	if dims > maxLineSize {
		return nil, formatErrorf(1, nil, "vector size %d is too large", dims)
	}

	words := make([]string, 0, preallocWords(nWords))
	data := make([]float64, 0, preallocValues(nWords, dims))
	vec := make([]float32, dims)

	for w := 0; w < nWords; w++ {
		word, err := r.ReadString(' ')
		if err != nil {
			return nil, formatErrorf(0, err, "cannot read word %d", w)
		}
		word = strings.TrimSpace(word)

		if err = binary.Read(r, binary.LittleEndian, vec); err != nil {
			return nil, formatErrorf(0, err, "cannot read the vector of '%s'", word)
		}

		for _, val := range vec {
			data = append(data, float64(val))
		}

		words = append(words, word)
	}

	embeds := newEmbeddings(words, data, dims)
	if normalize {
		if err := embeds.normalize(); err != nil {
			return nil, err
		}
	}

	return embeds, nil
}

// WriteText writes embeddings in the word2vec text format.
func WriteText(w io.Writer, embeds *Embeddings) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", embeds.Size(), embeds.Dims()); err != nil {
		return err
	}

	for idx, word := range embeds.words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}

		for _, val := range embeds.row(idx) {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
			if _, err := bw.WriteString(strconv.FormatFloat(val, 'f', 6, 64)); err != nil {
				return err
			}
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
