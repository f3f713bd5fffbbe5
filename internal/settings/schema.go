package settings

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
)

const schemaTitle = "DigitalOceanMcpSettings"

// Schema returns the JSON Schema of the settings document as a compact JSON
// string. The schema is inlined (no $ref/$defs) so hosts can build a form
// from the root object directly. Output is stable across calls.
func Schema() (string, error) {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
		// Unknown keys are ignored when decoding, so the schema allows them too.
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(&Settings{})
	s.Title = schemaTitle
	s.Description = "Settings for the DigitalOcean MCP context server."

	data, err := json.Marshal(s)
	if err != nil {
		return "", errors.Schema(errors.Wrap(err, "encoding settings schema"))
	}
	return string(data), nil
}
