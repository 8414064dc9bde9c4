package embeval

import (
	"fmt"
	"io"
)

// WriteReport writes the result of every category followed by the
// overall result. The accuracy of a result without in-vocabulary
// analogies is written as n/a.
func WriteReport(w io.Writer, perCategory map[Category]Result, overall Result) error {
	for _, c := range Categories {
		if err := writeResult(w, c.String(), perCategory[c]); err != nil {
			return err
		}
	}

	return writeResult(w, "overall", overall)
}

func writeResult(w io.Writer, label string, result Result) error {
	acc := "n/a"
	if a, err := result.Accuracy(); err == nil {
		acc = fmt.Sprintf("%.4f", a)
	}

	_, err := fmt.Fprintf(w, "%s total %d in dict %d correct %d acc = %s\n",
		label, result.Total, result.InDict, result.Correct, acc)
	return err
}
