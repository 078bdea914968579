package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReaderNormalizesCase(t *testing.T) {
	lex := NewTrie()
	count, err := LoadReader(strings.NewReader("Hello WORLD\n  hello\tGo\n"), lex)
	require.NoError(t, err)

	assert.Equal(t, 4, count)
	assert.Equal(t, 3, lex.Stats().Words)
	assert.True(t, lex.Search("hello"))
	assert.True(t, lex.Search("world"))
	assert.True(t, lex.Search("go"))
	assert.False(t, lex.Search("Hello"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ncut\nbat\n"), 0o644))

	for name, mk := range backends(t) {
		t.Run(name, func(t *testing.T) {
			lex := mk()
			count, err := Load(path, lex)
			require.NoError(t, err)
			assert.Equal(t, 3, count)
			assert.True(t, lex.Search("cut"))
		})
	}
}

func TestLoadMissingSource(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), NewTrie())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
