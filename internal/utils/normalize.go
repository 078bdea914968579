package utils

import "strings"

// Normalize trims surrounding space and lowercases a word before it reaches
// the dictionary, which is case sensitive.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
