package extension

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tailscale/hujson"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/logging"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/settings"
)

// defaultToken decodes the token value out of a default settings document.
func defaultToken(t *testing.T, doc string) string {
	t.Helper()
	std, err := hujson.Standardize([]byte(doc))
	require.NoError(t, err, "default settings must stay valid JSONC")

	var s struct {
		Token string `json:"digitalocean_api_token"`
	}
	require.NoError(t, json.Unmarshal(std, &s))
	return s.Token
}

func TestDefaultSettingsTemplate(t *testing.T) {
	assert.Equal(t, 1, strings.Count(defaultSettingsTemplate, tokenPlaceholder))
	assert.Equal(t, "YOUR_DIGITALOCEAN_API_TOKEN", defaultToken(t, defaultSettingsTemplate))
	assert.NotEmpty(t, installationInstructions)
}

func TestContextServerConfiguration(t *testing.T) {
	tests := []struct {
		name      string
		settings  string
		wantToken string
	}{
		{"absent settings", "", ""},
		{"empty object", `{}`, ""},
		{"blank token", `{"digitalocean_api_token": "   "}`, ""},
		{"token filled in", `{"digitalocean_api_token": "abc123"}`, "abc123"},
		{"malformed settings", `{"digitalocean_api_token": `, ""},
		{"token needing escapes", `{"digitalocean_api_token": "a\"b\\c<d>"}`, "a\"b\\c<d>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := New(fakeHost(tt.settings), WithLogger(logging.ForTest(t)))

			cfg, err := ext.ContextServerConfiguration(t.Context(), ServerID)
			require.NoError(t, err)

			assert.Equal(t, installationInstructions, cfg.InstallationInstructions)
			assert.NotContains(t, cfg.DefaultSettings, tokenPlaceholder)
			assert.Equal(t, tt.wantToken, defaultToken(t, cfg.DefaultSettings))

			schema, err := settings.Schema()
			require.NoError(t, err)
			assert.Equal(t, schema, cfg.SettingsSchema)
		})
	}
}

func TestContextServerConfiguration_EmptyPlaceholder(t *testing.T) {
	cfg, err := New(fakeHost(`{}`)).ContextServerConfiguration(t.Context(), ServerID)
	require.NoError(t, err)
	assert.Contains(t, cfg.DefaultSettings, `"digitalocean_api_token": ""`)
}

func TestContextServerConfiguration_LiteralToken(t *testing.T) {
	cfg, err := New(fakeHost(`{"digitalocean_api_token": " dop_v1_abc "}`)).ContextServerConfiguration(t.Context(), "")
	require.NoError(t, err)
	assert.Contains(t, cfg.DefaultSettings, `"digitalocean_api_token": " dop_v1_abc "`)
}

func TestContextServerConfiguration_SettingsStoreFailure(t *testing.T) {
	var logs bytes.Buffer
	h := fakeHost(`{"digitalocean_api_token": "abc123"}`)
	h.SettingsErr = errors.New("permission denied")
	ext := New(h, WithLogger(logging.New(logging.Config{Output: &logs})))

	cfg, err := ext.ContextServerConfiguration(t.Context(), ServerID)
	require.NoError(t, err)
	assert.Equal(t, "", defaultToken(t, cfg.DefaultSettings))
	assert.Contains(t, logs.String(), "permission denied")
}

func TestContextServerConfiguration_Idempotent(t *testing.T) {
	ext := New(fakeHost(`{"digitalocean_api_token": "abc123", "services": "apps"}`))

	first, err := ext.ContextServerConfiguration(t.Context(), ServerID)
	require.NoError(t, err)
	second, err := ext.ContextServerConfiguration(t.Context(), ServerID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestContextServerConfiguration_NoInstall(t *testing.T) {
	h := fakeHost(`{"digitalocean_api_token": "abc123"}`)
	h.Installed = nil

	_, err := New(h).ContextServerConfiguration(t.Context(), ServerID)
	require.NoError(t, err)
	assert.Empty(t, h.Installs)
}

func TestQuoteJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"abc123", `"abc123"`},
		{`a"b`, `"a\"b"`},
		{"<&>", `"<&>"`},
	}
	for _, tt := range tests {
		if got := quoteJSON(tt.in); got != tt.want {
			t.Errorf("quoteJSON(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
