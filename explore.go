package embeval

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultNearest is the default number of neighbors shown per query.
const DefaultNearest = 20

// ExitCommand ends an exploration session.
const ExitCommand = "EXIT"

// Explorer answers nearest-neighbor queries read one per line. The line
// ExitCommand ends the session, even if it is a vocabulary word.
type Explorer struct {
	Embeddings *Embeddings

	// K is the number of neighbors that is written per query.
	K int

	// Prompt is written to PromptOut before every query. No prompt is
	// written when PromptOut is nil.
	Prompt    string
	PromptOut io.Writer

	// Log may be nil.
	Log logrus.FieldLogger
}

// Run reads queries from in until the input is exhausted or the exit
// command is read. For every word in the vocabulary, its K nearest
// words are written to out, one per line. Other queries are ignored.
// A vocabulary word that is spelled like the exit command ends the
// session and cannot be queried.
func (e *Explorer) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	w := bufio.NewWriter(out)

	for {
		if e.PromptOut != nil {
			fmt.Fprint(e.PromptOut, e.Prompt)
		}

		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == ExitCommand {
			break
		}

		results, ok := e.Embeddings.Nearest(query, e.K)
		if !ok {
			if e.Log != nil && query != "" {
				e.Log.WithField("query", query).Debug("word not in vocabulary")
			}
			continue
		}

		for _, result := range results {
			if _, err := fmt.Fprintln(w, result.Word); err != nil {
				return err
			}
		}

		if err := w.Flush(); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	return scanner.Err()
}
