package utils

// IsLowerAlpha reports whether s is made only of the letters a to z.
func IsLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// IsValidInput checks if a normalized query should be looked up.
// Empty strings and anything outside a to z are rejected.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	return IsLowerAlpha(s)
}
