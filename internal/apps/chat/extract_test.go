package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseJSON(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  string
		found bool
	}{
		{
			name:  "plain string",
			body:  `"hello there"`,
			want:  "hello there",
			found: true,
		},
		{
			name:  "openai choices message content",
			body:  `{"choices":[{"message":{"role":"assistant","content":"from choices"}}]}`,
			want:  "from choices",
			found: true,
		},
		{
			name:  "openai choices delta content",
			body:  `{"choices":[{"delta":{"content":"streamed"}}]}`,
			want:  "streamed",
			found: true,
		},
		{
			name:  "flat reply key",
			body:  `{"reply":"direct reply"}`,
			want:  "direct reply",
			found: true,
		},
		{
			name:  "response key",
			body:  `{"response":"resp"}`,
			want:  "resp",
			found: true,
		},
		{
			name:  "key order reply beats message",
			body:  `{"message":"second","reply":"first"}`,
			want:  "first",
			found: true,
		},
		{
			name:  "huggingface array of generated_text",
			body:  `[{"generated_text":"generated"}]`,
			want:  "generated",
			found: true,
		},
		{
			name:  "nested summary_text",
			body:  `{"data":{"results":[{"summary_text":"summarized"}]}}`,
			want:  "summarized",
			found: true,
		},
		{
			name:  "choices with non-string content falls through",
			body:  `{"choices":[{"message":{"content":42}}],"text":"fallback"}`,
			want:  "fallback",
			found: true,
		},
		{
			name:  "deeply nested object with no textual leaf",
			body:  `{"a":{"b":{"c":[1,2,{"d":true}]}}}`,
			found: false,
		},
		{
			name:  "empty choices array",
			body:  `{"choices":[]}`,
			found: false,
		},
		{
			name:  "number",
			body:  `42`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractReply(parseJSON(t, tt.body))
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractReplyDeterministicAcrossBranches(t *testing.T) {
	// Two candidate leaves in sibling branches: the walk visits keys in
	// sorted order, so "alpha" must win every run.
	body := `{"zulu":{"text":"from zulu"},"alpha":{"text":"from alpha"}}`
	for i := 0; i < 20; i++ {
		got, found := ExtractReply(parseJSON(t, body))
		require.True(t, found)
		assert.Equal(t, "from alpha", got)
	}
}

func TestExtractReplyEmptyStringIsFound(t *testing.T) {
	// An empty reply is still a reply; absence is signalled separately.
	got, found := ExtractReply(parseJSON(t, `{"reply":""}`))
	assert.True(t, found)
	assert.Equal(t, "", got)
}
