package embeval

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Method selects how an analogy candidate is scored.
type Method int

const (
	// Offset scores candidates by cosine similarity to the normalized
	// offset vector w2 - w1 + w3.
	Offset Method = iota

	// Multiplicative scores candidates by
	// (cos(c, w2) * cos(c, w3)) / (cos(c, w1) + epsilon), with the
	// cosines shifted into [0, 1].
	Multiplicative
)

// Epsilon keeps the multiplicative score finite.
const Epsilon = 0.001

func (m Method) String() string {
	switch m {
	case Offset:
		return "offset"
	case Multiplicative:
		return "multiplicative"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts the numeric measure function to a Method.
func ParseMethod(n int) (Method, error) {
	switch Method(n) {
	case Offset, Multiplicative:
		return Method(n), nil
	default:
		return 0, fmt.Errorf("unknown measure function: %d", n)
	}
}

// Result counts the outcome of an analogy evaluation.
type Result struct {
	// Total is the number of analogies that were evaluated.
	Total int

	// InDict is the number of analogies of which all words are in the
	// vocabulary.
	InDict int

	// Correct is the number of analogies that were predicted correctly.
	Correct int
}

// Add returns the sum of two results.
func (r Result) Add(other Result) Result {
	return Result{
		Total:   r.Total + other.Total,
		InDict:  r.InDict + other.InDict,
		Correct: r.Correct + other.Correct,
	}
}

// Accuracy returns the fraction of in-vocabulary analogies that were
// predicted correctly. ErrDivideByZero is returned when there are no
// in-vocabulary analogies.
func (r Result) Accuracy() (float64, error) {
	if r.InDict == 0 {
		return 0, ErrDivideByZero
	}

	return float64(r.Correct) / float64(r.InDict), nil
}

// Evaluator predicts analogies using embeddings. The embeddings are
// assumed to be normalized.
type Evaluator struct {
	Embeddings *Embeddings
	Method     Method

	// Workers is the number of goroutines used by Evaluate. Values
	// below 2 evaluate sequentially.
	Workers int

	// Log receives a debug entry for every incorrect prediction. It
	// may be nil.
	Log logrus.FieldLogger
}

// Predict returns the id of the word that is to w3 as w2 is to w1. The
// ids of the input words are never predicted; -1 is returned when the
// vocabulary contains no other words.
func (e *Evaluator) Predict(w1, w2, w3 string) (int, error) {
	ids := make([]int, 3)
	for idx, word := range []string{w1, w2, w3} {
		id, ok := e.Embeddings.Index(word)
		if !ok {
			return -1, unknownWord(word)
		}
		ids[idx] = id
	}

	scores, err := e.scores(ids[0], ids[1], ids[2])
	if err != nil {
		return -1, err
	}

	mask(scores, ids...)

	return argmax(scores), nil
}

func (e *Evaluator) scores(id1, id2, id3 int) ([]float64, error) {
	m := e.Embeddings.matrix

	switch e.Method {
	case Offset:
		pattern := offset(e.Embeddings.row(id1), e.Embeddings.row(id2), e.Embeddings.row(id3))
		if err := normalize(pattern); err != nil {
			return nil, err
		}
		return dotAll(m, pattern), nil
	case Multiplicative:
		cos2 := dotAll(m, e.Embeddings.row(id2))
		cos3 := dotAll(m, e.Embeddings.row(id3))
		cos1 := dotAll(m, e.Embeddings.row(id1))
		for idx := range cos1 {
			cos1[idx] = rescale(cos1[idx]) + Epsilon
			cos2[idx] = rescale(cos2[idx]) * rescale(cos3[idx])
		}
		floats.Div(cos2, cos1)
		return cos2, nil
	default:
		return nil, fmt.Errorf("unknown method: %s", e.Method)
	}
}

// rescale maps a cosine similarity from [-1, 1] to [0, 1].
func rescale(cos float64) float64 {
	return (cos + 1) / 2
}

// Evaluate predicts the fourth word of every analogy. Analogies that
// contain a word that is not in the vocabulary are only counted in
// Result.Total.
func (e *Evaluator) Evaluate(tuples []Tuple) (Result, error) {
	if e.Workers < 2 || len(tuples) < 2 {
		return e.evaluate(tuples)
	}

	workers := e.Workers
	if workers > len(tuples) {
		workers = len(tuples)
	}
	block := (len(tuples) + workers - 1) / workers

	results := make([]Result, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for t := 0; t < workers; t++ {
		start := t * block
		if start >= len(tuples) {
			break
		}
		end := start + block
		if end > len(tuples) {
			end = len(tuples)
		}

		wg.Add(1)
		go func(t, start, end int) {
			defer wg.Done()
			results[t], errs[t] = e.evaluate(tuples[start:end])
		}(t, start, end)
	}
	wg.Wait()

	var result Result
	for t := range results {
		if errs[t] != nil {
			return Result{}, errs[t]
		}
		result = result.Add(results[t])
	}

	return result, nil
}

func (e *Evaluator) evaluate(tuples []Tuple) (Result, error) {
	result := Result{Total: len(tuples)}

	for _, tuple := range tuples {
		if !e.inDict(tuple) {
			continue
		}
		result.InDict++

		predicted, err := e.Predict(tuple[0], tuple[1], tuple[2])
		if err != nil {
			return Result{}, fmt.Errorf("cannot predict %s %s %s: %w", tuple[0], tuple[1], tuple[2], err)
		}

		if id4, _ := e.Embeddings.Index(tuple[3]); predicted == id4 {
			result.Correct++
		} else if e.Log != nil {
			e.Log.WithFields(logrus.Fields{
				"analogy":   fmt.Sprintf("%s:%s::%s:%s", tuple[0], tuple[1], tuple[2], tuple[3]),
				"predicted": e.wordOrNone(predicted),
			}).Debug("incorrect prediction")
		}
	}

	return result, nil
}

func (e *Evaluator) inDict(tuple Tuple) bool {
	for _, word := range tuple {
		if _, ok := e.Embeddings.Index(word); !ok {
			return false
		}
	}

	return true
}

func (e *Evaluator) wordOrNone(id int) string {
	if id < 0 {
		return "<none>"
	}

	return e.Embeddings.Word(id)
}

// EvaluateAll evaluates every category of an analogy set. It returns
// the result per category and the overall result.
func (e *Evaluator) EvaluateAll(analogies *Analogies) (map[Category]Result, Result, error) {
	perCategory := make(map[Category]Result, len(Categories))
	var overall Result

	for _, c := range Categories {
		result, err := e.Evaluate(analogies.Group(c))
		if err != nil {
			return nil, Result{}, fmt.Errorf("%s: %w", c, err)
		}

		if e.Log != nil {
			e.Log.WithFields(logrus.Fields{
				"category": c.String(),
				"total":    result.Total,
				"in_dict":  result.InDict,
				"correct":  result.Correct,
			}).Debug("evaluated category")
		}

		perCategory[c] = result
		overall = overall.Add(result)
	}

	return perCategory, overall, nil
}
