package extension

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/settings"
)

//go:embed configuration/installation_instructions.md
var installationInstructions string

//go:embed configuration/default_settings.jsonc
var defaultSettingsTemplate string

// tokenPlaceholder is the quoted token value in the default settings template.
const tokenPlaceholder = `"YOUR_DIGITALOCEAN_API_TOKEN"`

// ContextServerConfiguration builds the settings UI descriptor for serverID
// (ServerID when empty). Settings are loaded best effort: when they are
// missing or unreadable the token placeholder becomes an empty string. The
// only error is a failure to encode the settings schema.
func (e *Extension) ContextServerConfiguration(ctx context.Context, serverID string) (*Configuration, error) {
	serverID = serverIDOrDefault(serverID)

	token := e.currentToken(ctx, serverID)
	defaults := strings.ReplaceAll(defaultSettingsTemplate, tokenPlaceholder, quoteJSON(token))

	schema, err := settings.Schema()
	if err != nil {
		return nil, err
	}

	return &Configuration{
		InstallationInstructions: installationInstructions,
		DefaultSettings:          defaults,
		SettingsSchema:           schema,
	}, nil
}

// currentToken returns the configured token, or "" when it is blank or the
// settings cannot be loaded.
func (e *Extension) currentToken(ctx context.Context, serverID string) string {
	logger := e.logger.With("server", serverID)

	raw, err := e.host.ProjectSettings(ctx, serverID)
	if err != nil {
		logger.Warn("loading settings for default configuration, using empty token", "error", err)
		return ""
	}
	s, err := settings.Parse(raw)
	if err != nil {
		logger.Warn("parsing settings for default configuration, using empty token", "error", err)
		return ""
	}
	token, ok := s.Token()
	if !ok {
		return ""
	}
	return token
}

// quoteJSON encodes s as a JSON string literal without HTML escaping.
func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
