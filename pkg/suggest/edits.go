package suggest

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// EditCount is the number of candidates GenerateEdits returns for a word of
// n bytes, duplicates included.
func EditCount(n int) int {
	transpositions := 0
	if n > 1 {
		transpositions = n - 1
	}
	return (n+1)*len(alphabet) + n + n*len(alphabet) + transpositions
}

// GenerateEdits returns every string one insertion, deletion, substitution or
// adjacent transposition away from word, over the letters a to z. Substituting
// a letter with itself is included, so word itself appears len(word) times.
// Nothing is deduplicated.
func GenerateEdits(word string) []string {
	n := len(word)
	edits := make([]string, 0, EditCount(n))

	// insertions
	for i := 0; i <= n; i++ {
		for j := 0; j < len(alphabet); j++ {
			edits = append(edits, word[:i]+alphabet[j:j+1]+word[i:])
		}
	}

	// deletions
	for i := 0; i < n; i++ {
		edits = append(edits, word[:i]+word[i+1:])
	}

	// substitutions
	buf := []byte(word)
	for i := 0; i < n; i++ {
		orig := buf[i]
		for j := 0; j < len(alphabet); j++ {
			buf[i] = alphabet[j]
			edits = append(edits, string(buf))
		}
		buf[i] = orig
	}

	// transpositions; i+1 < n keeps empty and single-letter words out
	for i := 0; i+1 < n; i++ {
		buf[i], buf[i+1] = buf[i+1], buf[i]
		edits = append(edits, string(buf))
		buf[i], buf[i+1] = buf[i+1], buf[i]
	}

	return edits
}
