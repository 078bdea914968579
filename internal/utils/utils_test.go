package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello", Normalize("Hello"))
	assert.Equal(t, "hello", Normalize("  HELLO\n"))
	assert.Equal(t, Normalize("Hello"), Normalize("hello"))
}

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"hello", true},
		{"z", true},
		{"", false},
		{"hello2", false},
		{"user-name", false},
		{"Hello", false},
		{"héllo", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidInput(tc.input))
		})
	}
}

func TestSortUnique(t *testing.T) {
	got := SortUnique([]string{"cut", "cat", "cut", "bat", "cat", "cat"})
	assert.Equal(t, []string{"bat", "cat", "cut"}, got)
	assert.Empty(t, SortUnique(nil))
}

func TestTruncate(t *testing.T) {
	words := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, Truncate(words, 2))
	assert.Equal(t, words, Truncate(words, 3))
	assert.Equal(t, words, Truncate(words, 0))
	assert.Equal(t, words, Truncate(words, 10))
}
