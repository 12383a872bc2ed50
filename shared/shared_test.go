package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEllipsize(t *testing.T) {
	testCases := []struct {
		input    string
		n        int
		expected string
	}{
		{input: "Main hall", n: 0, expected: ""},
		{input: "", n: 3, expected: ""},
		{input: "Main hall", n: 20, expected: "Main hall"},
		{input: "Main hall", n: 9, expected: "Main hall"},
		{input: "Main hall", n: 5, expected: "Main…"},
		{input: "Zürich hall", n: 3, expected: "Zü…"},
		{input: "ab", n: 1, expected: "…"},
		{input: "a", n: 1, expected: "a"},
	}
	for _, tc := range testCases {
		assert.EqualValues(t, tc.expected, Ellipsize(tc.input, tc.n), "%q/%d", tc.input, tc.n)
	}
}
