package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/charmbracelet/log"
)

// ErrSourceUnavailable is returned when the vocabulary file cannot be opened.
var ErrSourceUnavailable = errors.New("vocabulary source unavailable")

// Load reads a whitespace-delimited word list from path into lex and returns
// the number of tokens read. Words are lowercased before insertion.
func Load(path string, lex Lexicon) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	defer file.Close()

	start := time.Now()
	count, err := LoadReader(file, lex)
	if err != nil {
		return count, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	stats := lex.Stats()
	log.Debugf("Loaded %d tokens (%d unique words) from %s in %v", count, stats.Words, path, time.Since(start))
	return count, nil
}

// LoadReader inserts every whitespace-delimited token of r into lex.
func LoadReader(r io.Reader, lex Lexicon) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	count := 0
	for scanner.Scan() {
		lex.Insert(utils.Normalize(scanner.Text()))
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, nil
}
