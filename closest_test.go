package argv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestChoice(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name string

		input   string
		choices []string
		expSugg string
	}{
		{"one edit away", "mnkey", []string{"cat", "monkey"}, "monkey"},
		{"transposed option", "--vebrose", []string{"--help", "--verbose"}, "--verbose"},
		{"too far to suggest", "zebra", []string{"cat", "monkey"}, ""},
		{"no choices", "cat", nil, ""},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expSugg, suggestion(tc.input, tc.choices))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, levenshtein("cat", "cat"))
	assert.Equal(t, 3, levenshtein("", "cat"))
	assert.Equal(t, 3, levenshtein("cat", ""))
	assert.Equal(t, 1, levenshtein("cat", "cart"))
	assert.Equal(t, 2, levenshtein("vebrose", "verbose"))
}
