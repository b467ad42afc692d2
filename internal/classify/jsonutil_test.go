package classify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare object",
			content: `{"species":"Kudzu","invasive":true,"summary":"vine"}`,
			want:    `{"species":"Kudzu","invasive":true,"summary":"vine"}`,
		},
		{
			name:    "markdown fence",
			content: "```json\n{\"species\":\"Kudzu\",\"invasive\":true,\"summary\":\"vine\"}\n```",
			want:    `{"species":"Kudzu","invasive":true,"summary":"vine"}`,
		},
		{
			name:    "fence without language tag",
			content: "```\n{\"species\":\"Ivy\",\"invasive\":false,\"summary\":\"ok\"}\n```",
			want:    `{"species":"Ivy","invasive":false,"summary":"ok"}`,
		},
		{
			name:    "embedded in prose",
			content: `sure, it's {"species":"Kudzu","invasive":true,"summary":"aggressive vine"} hope that helps`,
			want:    `{"species":"Kudzu","invasive":true,"summary":"aggressive vine"}`,
		},
		{
			name:    "no JSON at all",
			content: "I cannot identify this plant.",
			want:    "",
		},
		{
			name:    "empty input",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.content))
		})
	}
}

func TestCoerceVerdict_RecoversProseEmbeddedJSON(t *testing.T) {
	raw := `sure, it's {"species":"Kudzu","invasive":true,"summary":"aggressive vine"} hope that helps`

	v := coerceVerdict(raw)

	assert.Equal(t, "Kudzu", v.Species)
	assert.True(t, v.Invasive)
	assert.Equal(t, "aggressive vine", v.Summary)
}

func TestCoerceVerdict_StrictJSON(t *testing.T) {
	payload := Verdict{Species: "Ailanthus altissima", Invasive: true, Summary: "tree of heaven"}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	v := coerceVerdict(string(raw))

	assert.Equal(t, payload, v)
}

func TestCoerceVerdict_GarbageDegradesToUnknown(t *testing.T) {
	v := coerceVerdict("no idea, looks like { a broken answer")

	assert.Equal(t, "Unknown", v.Species)
	assert.False(t, v.Invasive)
	assert.Equal(t, "no idea, looks like { a broken answer", v.Summary)
}

func TestCoerceVerdict_EmptyResponse(t *testing.T) {
	v := coerceVerdict("")

	assert.Equal(t, "Unknown", v.Species)
	assert.False(t, v.Invasive)
	assert.Equal(t, "No analysis returned", v.Summary)
}
