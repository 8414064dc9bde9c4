package embeval

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned when a computation would divide by
	// zero: a zero-length vector during normalization or an accuracy
	// over zero in-dictionary analogies.
	ErrDivideByZero = errors.New("division by zero")

	// ErrUnknownWord is returned when a word is not in the vocabulary.
	ErrUnknownWord = errors.New("unknown word")
)

// FormatError is returned when an embedding or analogy file is malformed.
type FormatError struct {
	// Line is the 1-based line number, 0 when the problem is not tied
	// to a particular line.
	Line int
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}

	if e.Line > 0 {
		return fmt.Sprintf("format error on line %d: %s", e.Line, msg)
	}

	return "format error: " + msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErrorf(line int, err error, format string, args ...interface{}) *FormatError {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...), Err: err}
}

func unknownWord(word string) error {
	return fmt.Errorf("%w: %s", ErrUnknownWord, word)
}
