package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	raw, err := Schema()
	require.NoError(t, err)

	var doc struct {
		Title      string                    `json:"title"`
		Type       string                    `json:"type"`
		Ref        string                    `json:"$ref"`
		Required   []string                  `json:"required"`
		Properties map[string]map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "DigitalOceanMcpSettings", doc.Title)
	assert.Equal(t, "object", doc.Type)
	assert.Empty(t, doc.Ref, "schema should be inlined")
	assert.Empty(t, doc.Required, "all fields are optional on the wire")

	for _, key := range []string{KeyAPIToken, KeyServices, KeyAPIEndpoint} {
		prop, ok := doc.Properties[key]
		if assert.True(t, ok, "missing property %q", key) {
			assert.Equal(t, "string", prop["type"], key)
			assert.NotEmpty(t, prop["description"], key)
		}
	}
	assert.Len(t, doc.Properties, 3)
}

func TestSchema_Stable(t *testing.T) {
	first, err := Schema()
	require.NoError(t, err)
	second, err := Schema()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
