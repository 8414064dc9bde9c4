package embeval

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAnalogiesFromFile(t *testing.T) {
	analogies, err := ReadAnalogiesFile("testdata/analogies.txt")
	require.NoError(t, err)

	assert.Equal(t, 3, analogies.Sections)
	assert.False(t, analogies.Merged())
	assert.Equal(t, []Tuple{{"athens", "greece", "berlin", "germany"}}, analogies.Group(Capital))
	assert.Equal(t, []Tuple{{"woman", "queen", "man", "king"}}, analogies.Group(State))
	assert.Len(t, analogies.Group(Family), 4)
}

func TestReadAnalogiesSections(t *testing.T) {
	data := `a b c d
: one
e f g h

: two
i j k l
: three
m n o p
: four
q r s t
`

	analogies, err := ReadAnalogies(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 4, analogies.Sections)
	assert.True(t, analogies.Merged())
	assert.Equal(t, []Tuple{{"e", "f", "g", "h"}}, analogies.Group(Capital))
	assert.Equal(t, []Tuple{{"i", "j", "k", "l"}}, analogies.Group(State))

	// Lines before the first marker and from the third marker on are
	// family analogies.
	assert.Equal(t, []Tuple{
		{"a", "b", "c", "d"},
		{"m", "n", "o", "p"},
		{"q", "r", "s", "t"},
	}, analogies.Group(Family))
}

func TestReadAnalogiesFormatError(t *testing.T) {
	_, err := ReadAnalogies(strings.NewReader(": capital\nathens greece berlin\n"))
	require.Error(t, err)

	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, 2, formatErr.Line)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "capital", Capital.String())
	assert.Equal(t, "state", State.String())
	assert.Equal(t, "family", Family.String())
	assert.Equal(t, "unknown", Category(7).String())
}
