package embeval

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// SectionMarker starts a new section in an analogy file.
const SectionMarker = ":"

// Category is an analogy category.
type Category int

const (
	Capital Category = iota
	State
	Family
)

// Categories lists the categories in report order.
var Categories = []Category{Capital, State, Family}

func (c Category) String() string {
	switch c {
	case Capital:
		return "capital"
	case State:
		return "state"
	case Family:
		return "family"
	default:
		return "unknown"
	}
}

// Tuple is an analogy: Tuple[0] is to Tuple[1] as Tuple[2] is to Tuple[3].
type Tuple [4]string

// Analogies holds the tuples of an analogy file per category.
type Analogies struct {
	Groups [3][]Tuple

	// Sections is the number of section markers that were read.
	Sections int
}

// Group returns the tuples of a category.
func (a *Analogies) Group(c Category) []Tuple {
	return a.Groups[c]
}

// Merged reports whether sections beyond the third were folded into
// the family group.
func (a *Analogies) Merged() bool {
	return a.Sections > 3
}

// sectionCategory maps a section counter to a category. Only the first
// two sections have a category of their own, lines before the first
// marker and after the third marker end up in the family group.
func sectionCategory(section int) Category {
	switch section {
	case 1:
		return Capital
	case 2:
		return State
	default:
		return Family
	}
}

// ReadAnalogies reads an analogy file. Section markers are lines that
// start with ':', all other non-empty lines must contain four words.
func ReadAnalogies(r io.Reader) (*Analogies, error) {
	analogies := &Analogies{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if fields[0] == SectionMarker {
			analogies.Sections++
			continue
		}

		if len(fields) != 4 {
			return nil, formatErrorf(lineNo, nil, "expected 4 words, found %d", len(fields))
		}

		c := sectionCategory(analogies.Sections)
		analogies.Groups[c] = append(analogies.Groups[c], Tuple{fields[0], fields[1], fields[2], fields[3]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return analogies, nil
}

// ReadAnalogiesFile reads the analogy file at path.
func ReadAnalogiesFile(path string) (*Analogies, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadAnalogies(f)
}
