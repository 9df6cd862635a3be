package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newTestCompleter() *suggest.Completer {
	c := suggest.NewCompleter(suggest.DefaultLimits(), 16)
	for word, freq := range map[string]int{
		"apple": 5, "app": 3, "application": 2, "apply": 1,
		"cat": 4, "chat": 1,
	} {
		for i := 0; i < freq; i++ {
			c.AddWord(word)
		}
	}
	return c
}

// serve runs the server over the encoded requests and returns a decoder
// positioned after the ready message.
func serve(t *testing.T, c suggest.ICompleter, cfg *config.Config, requests ...any) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := NewServer(c, cfg, &in, &out)
	require.NoError(t, srv.Start())
	assert.Equal(t, len(requests), srv.Requests())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec
}

func TestComplete(t *testing.T) {
	dec := serve(t, newTestCompleter(), nil,
		Request{ID: "1", Query: "app", Limit: 3},
		Request{ID: "2", Action: ActionComplete, Query: "zzz"},
	)

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Suggestions, 3)
	assert.Equal(t, Suggestion{Word: "apple", Rank: 1, Frequency: 5}, resp.Suggestions[0])
	assert.Equal(t, Suggestion{Word: "app", Rank: 2, Frequency: 3}, resp.Suggestions[1])
	assert.Equal(t, Suggestion{Word: "application", Rank: 3, Frequency: 2}, resp.Suggestions[2])

	resp = CompletionResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "2", resp.ID)
	assert.Equal(t, "prefix_unknown", resp.Status)
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Suggestions)
}

func TestCompleteKeepsCapitals(t *testing.T) {
	dec := serve(t, newTestCompleter(), nil, Request{ID: "1", Query: "Appl"})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "Apple", resp.Suggestions[0].Word)
}

func TestSpell(t *testing.T) {
	dec := serve(t, newTestCompleter(), nil,
		Request{ID: "s", Action: ActionSpell, Query: "cst"},
		Request{ID: "n", Action: ActionSpell, Query: "qqqqqqqq"},
	)

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "cat", resp.Suggestions[0].Word)
	assert.Equal(t, 1, resp.Suggestions[0].Distance)

	resp = CompletionResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "no_corrections", resp.Status)
}

func TestQuery(t *testing.T) {
	dec := serve(t, newTestCompleter(), nil,
		Request{ID: "known", Action: ActionQuery, Query: "cat"},
		Request{ID: "typo", Action: ActionQuery, Query: "ca"},
	)

	var known QueryResponse
	require.NoError(t, dec.Decode(&known))
	assert.True(t, known.Known)
	assert.Empty(t, known.Corrections)
	require.Len(t, known.Suggestions, 1)
	assert.Equal(t, "cat", known.Suggestions[0].Word)

	var typo QueryResponse
	require.NoError(t, dec.Decode(&typo))
	assert.False(t, typo.Known)
	require.Len(t, typo.Suggestions, 1)
	assert.Equal(t, "cat", typo.Suggestions[0].Word)
	for _, c := range typo.Corrections {
		assert.NotEqual(t, "cat", c.Word)
	}
	assert.Equal(t, len(typo.Suggestions)+len(typo.Corrections), typo.Count)
}

func TestCheckAndAdd(t *testing.T) {
	dec := serve(t, newTestCompleter(), nil,
		Request{ID: "1", Action: ActionCheck, Query: "dog"},
		Request{ID: "2", Action: ActionAdd, Query: "Dog"},
		Request{ID: "3", Action: ActionCheck, Query: "dog"},
		Request{ID: "4", Action: ActionComplete, Query: "do"},
	)

	var check WordResponse
	require.NoError(t, dec.Decode(&check))
	assert.False(t, check.Known)
	assert.Zero(t, check.Frequency)

	var add WordResponse
	require.NoError(t, dec.Decode(&add))
	assert.Equal(t, "dog", add.Word)
	assert.Equal(t, 1, add.Frequency)

	check = WordResponse{}
	require.NoError(t, dec.Decode(&check))
	assert.True(t, check.Known)
	assert.Equal(t, 1, check.Frequency)

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "dog", resp.Suggestions[0].Word)
}

func TestStatsAndHealth(t *testing.T) {
	dec := serve(t, newTestCompleter(), nil,
		Request{ID: "h", Action: ActionHealth},
		Request{ID: "s", Action: ActionStats},
	)

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, "h", health.ID)
	assert.Equal(t, "ok", health.Status)

	var stats StatsResponse
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 6, stats.Stats["totalWords"])
	assert.Equal(t, 2, stats.Stats["requests"])
}

func TestErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxQuery = 5

	dec := serve(t, newTestCompleter(), cfg,
		Request{ID: "empty"},
		Request{ID: "long", Query: "abcdefgh"},
		Request{ID: "bad", Action: "explode", Query: "app"},
		"not a map",
		Request{ID: "add", Action: ActionAdd, Query: "123"},
		Request{ID: "after", Query: "app"},
	)

	for _, id := range []string{"empty", "long", "bad", "", "add"} {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 400, resp.Code)
		assert.NotEmpty(t, resp.Error)
	}

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "after", resp.ID)
	assert.Equal(t, "ok", resp.Status)
}

func TestLimitClamp(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxLimit = 2
	cfg.Server.DefaultLimit = 1

	dec := serve(t, newTestCompleter(), cfg,
		Request{ID: "max", Query: "app", Limit: 50},
		Request{ID: "default", Query: "app"},
	)

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Len(t, resp.Suggestions, 2)

	resp = CompletionResponse{}
	require.NoError(t, dec.Decode(&resp))
	assert.Len(t, resp.Suggestions, 1)
}
