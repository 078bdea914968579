package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

// serve runs a server over the encoded requests and returns a decoder
// positioned after the ready banner.
func serve(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()

	trie := dictionary.NewTrie()
	for _, w := range []string{"cat", "cut", "bat"} {
		trie.Insert(w)
	}

	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	var out bytes.Buffer
	cfg := config.DefaultConfig().Server
	cfg.MaxLimit = 5
	srv := NewServer(suggest.NewCorrector(trie, 16), cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return dec
}

func TestCheckFound(t *testing.T) {
	dec := serve(t, Request{ID: "req_001", Word: "Cat"})

	var resp CheckResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "req_001", resp.ID)
	assert.Equal(t, "cat", resp.Word)
	assert.True(t, resp.Found)
	assert.Empty(t, resp.Suggestions)
	assert.Equal(t, 0, resp.Count)
}

func TestCheckSuggestions(t *testing.T) {
	dec := serve(t,
		Request{ID: "a", Word: "cot"},
		Request{ID: "b", Word: "cot", Limit: 1},
	)

	var full, limited CheckResponse
	require.NoError(t, dec.Decode(&full))
	require.NoError(t, dec.Decode(&limited))

	assert.False(t, full.Found)
	assert.Equal(t, []string{"cat", "cut"}, full.Suggestions)
	assert.Equal(t, 2, full.Count)

	assert.Equal(t, "b", limited.ID)
	assert.Equal(t, []string{"cat"}, limited.Suggestions)
	assert.Equal(t, 1, limited.Count)
}

func TestCheckValidation(t *testing.T) {
	testCases := []struct {
		word        string
		description string
	}{
		{"", "missing word"},
		{"c4t", "non alphabetic"},
		{"abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijklmnop", "too long"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			dec := serve(t, Request{ID: "bad", Word: tc.word})
			var resp CheckError
			require.NoError(t, dec.Decode(&resp))
			assert.Equal(t, "bad", resp.ID)
			assert.Equal(t, 400, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestActions(t *testing.T) {
	dec := serve(t,
		Request{ID: "h", Action: "health"},
		Request{ID: "i", Action: "get_info"},
		Request{ID: "x", Action: "set_size"},
	)

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, StatusResponse{ID: "h", Status: "ok"}, health)

	var info InfoResponse
	require.NoError(t, dec.Decode(&info))
	assert.Equal(t, "i", info.ID)
	assert.Equal(t, "trie", info.Stats["backend"])
	assert.Contains(t, info.Stats, "words")
	assert.Contains(t, info.Stats, "cacheEntries")

	var unknown CheckError
	require.NoError(t, dec.Decode(&unknown))
	assert.Equal(t, 404, unknown.Code)
}

func TestStartReturnsOnEOF(t *testing.T) {
	dec := serve(t)
	var v any
	assert.Error(t, dec.Decode(&v), "nothing but the ready banner is written")
}
