package embeval

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const maxLineSize = 1024 * 1024

// Bounds on what is allocated from the header alone. Larger
// vocabularies grow while they are read.
const (
	maxPreallocWords  = 1 << 16
	maxPreallocValues = 1 << 20
)

// Embeddings stores a vocabulary and the matrix of its word vectors.
// Row i of the matrix is the vector of the i-th vocabulary word.
//
// Embeddings are not modified after construction, so they can be
// shared between goroutines.
type Embeddings struct {
	words   []string
	indices map[string]int
	matrix  *mat.Dense
}

func newEmbeddings(words []string, data []float64, dims int) *Embeddings {
	indices := make(map[string]int, len(words))
	for idx, word := range words {
		// The first occurrence of a word determines its id.
		if _, ok := indices[word]; !ok {
			indices[word] = idx
		}
	}

	return &Embeddings{
		words:   words,
		indices: indices,
		matrix:  mat.NewDense(len(words), dims, data),
	}
}

// ReadEmbeddings reads embeddings in the word2vec text format. The
// first line contains the number of words and the vector size, every
// following line a word and its vector components. If normalize is
// true, the vectors are scaled to unit length.
func ReadEmbeddings(r *bufio.Reader, normalize bool) (*Embeddings, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	nextLine := func() ([]string, bool) {
		for scanner.Scan() {
			lineNo++
			if fields := strings.Fields(scanner.Text()); len(fields) != 0 {
				return fields, true
			}
		}
		return nil, false
	}

	header, ok := nextLine()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, formatErrorf(0, nil, "missing header")
	}

	nWords, dims, err := parseHeader(header, lineNo)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, preallocWords(nWords))
	data := make([]float64, 0, preallocValues(nWords, dims))

	for {
		fields, ok := nextLine()
		if !ok {
			break
		}

		if len(words) == nWords {
			return nil, formatErrorf(lineNo, nil, "more than %d words", nWords)
		}

		if len(fields) != dims+1 {
			return nil, formatErrorf(lineNo, nil, "expected %d vector components, found %d", dims, len(fields)-1)
		}

		for _, field := range fields[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, formatErrorf(lineNo, err, "invalid vector component")
			}
			data = append(data, val)
		}

		words = append(words, fields[0])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(words) != nWords {
		return nil, formatErrorf(0, nil, "expected %d words, found %d", nWords, len(words))
	}

	embeds := newEmbeddings(words, data, dims)
	if normalize {
		if err := embeds.normalize(); err != nil {
			return nil, err
		}
	}

	return embeds, nil
}

// ReadEmbeddingsFile reads embeddings in the word2vec text format from
// the file at path.
func ReadEmbeddingsFile(path string, normalize bool) (*Embeddings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadEmbeddings(bufio.NewReader(f), normalize)
}

func parseHeader(fields []string, lineNo int) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, formatErrorf(lineNo, nil, "header should contain the number of words and the vector size")
	}

	nWords, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, formatErrorf(lineNo, err, "invalid number of words")
	}

	dims, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, formatErrorf(lineNo, err, "invalid vector size")
	}

	if err := checkShape(nWords, dims, lineNo); err != nil {
		return 0, 0, err
	}

	return nWords, dims, nil
}

// checkShape verifies that a matrix of nWords x dims can be addressed.
func checkShape(nWords, dims, lineNo int) error {
	if nWords <= 0 || dims <= 0 {
		return formatErrorf(lineNo, nil, "number of words and vector size must be positive, was %d %d", nWords, dims)
	}

	if nWords > math.MaxInt32 || dims > math.MaxInt32 || nWords > math.MaxInt/dims {
		return formatErrorf(lineNo, nil, "matrix of %d x %d is too large", nWords, dims)
	}

	return nil
}

func preallocWords(nWords int) int {
	if nWords > maxPreallocWords {
		return maxPreallocWords
	}

	return nWords
}

func preallocValues(nWords, dims int) int {
	if n := preallocWords(nWords) * dims; n < maxPreallocValues {
		return n
	}

	return maxPreallocValues
}

func (e *Embeddings) normalize() error {
	for idx := range e.words {
		if err := normalize(e.matrix.RawRowView(idx)); err != nil {
			return formatErrorf(0, err, "cannot normalize the vector of '%s'", e.words[idx])
		}
	}

	return nil
}

// Size returns the number of words.
func (e *Embeddings) Size() int {
	return len(e.words)
}

// Dims returns the vector size.
func (e *Embeddings) Dims() int {
	_, cols := e.matrix.Dims()
	return cols
}

// Words returns the vocabulary in file order. The returned slice must
// not be modified.
func (e *Embeddings) Words() []string {
	return e.words
}

// Word returns the word with the given id.
func (e *Embeddings) Word(id int) string {
	return e.words[id]
}

// Index returns the id of a word.
func (e *Embeddings) Index(word string) (int, bool) {
	idx, ok := e.indices[word]
	return idx, ok
}

// Vector returns a copy of the vector of a word.
func (e *Embeddings) Vector(word string) ([]float64, bool) {
	idx, ok := e.indices[word]
	if !ok {
		return nil, false
	}

	vec := make([]float64, e.Dims())
	copy(vec, e.matrix.RawRowView(idx))

	return vec, true
}

// Matrix returns the embedding matrix. It must not be modified.
func (e *Embeddings) Matrix() mat.Matrix {
	return e.matrix
}

func (e *Embeddings) row(idx int) []float64 {
	return e.matrix.RawRowView(idx)
}
