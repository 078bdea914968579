package utils

import "slices"

// SortUnique sorts words ascending and removes exact duplicates in place.
func SortUnique(words []string) []string {
	slices.Sort(words)
	return slices.Compact(words)
}

// Truncate returns at most limit words. A limit of zero or less means no limit.
func Truncate(words []string, limit int) []string {
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}
