package settings

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
)

// JSON keys of the settings document.
const (
	KeyAPIToken    = "digitalocean_api_token"
	KeyServices    = "services"
	KeyAPIEndpoint = "digitalocean_api_endpoint"
)

// ErrTokenRequired is returned by Resolve when the token is missing or blank.
var ErrTokenRequired = errors.Validation(errors.New(KeyAPIToken + " is required"))

// Settings is the settings document as stored by the host. Nil fields were
// absent from the document.
type Settings struct {
	DigitalOceanAPIToken    *string `json:"digitalocean_api_token,omitempty" jsonschema_description:"DigitalOcean personal access token passed to the server as DIGITALOCEAN_API_TOKEN."`
	Services                *string `json:"services,omitempty" jsonschema_description:"Comma or space separated list of services to enable, passed through as --services. All services are enabled when unset."`
	DigitalOceanAPIEndpoint *string `json:"digitalocean_api_endpoint,omitempty" jsonschema_description:"Override for the DigitalOcean API base URL, passed as DIGITALOCEAN_API_ENDPOINT."`
}

// Resolved holds normalized settings. Empty optional fields are unset.
type Resolved struct {
	Token    string
	Services string
	Endpoint string
}

// HasServices reports whether a services filter is set.
func (r *Resolved) HasServices() bool { return r.Services != "" }

// HasEndpoint reports whether an endpoint override is set.
func (r *Resolved) HasEndpoint() bool { return r.Endpoint != "" }

// Parse decodes a raw settings value. Absent input (nil, blank, or JSON
// null) yields empty Settings. Malformed input is a validation error.
func Parse(raw []byte) (*Settings, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &Settings{}, nil
	}

	// Standardize rewrites its argument in place.
	std, err := hujson.Standardize(bytes.Clone(trimmed))
	if err != nil {
		return nil, errors.Validation(errors.Wrap(err, "parsing settings"))
	}

	var s Settings
	if err := json.Unmarshal(std, &s); err != nil {
		return nil, errors.Validation(errors.Wrap(err, "decoding settings"))
	}
	return &s, nil
}

// Resolve parses raw and resolves it. See Settings.Resolve.
func Resolve(raw []byte) (*Resolved, error) {
	s, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return s.Resolve()
}

// Resolve validates the token and normalizes the optional fields.
// The token is checked after trimming but returned as written; services and
// endpoint are trimmed with internal whitespace left alone.
func (s *Settings) Resolve() (*Resolved, error) {
	token, ok := s.Token()
	if !ok {
		return nil, ErrTokenRequired
	}
	return &Resolved{
		Token:    token,
		Services: trimmed(s.Services),
		Endpoint: trimmed(s.DigitalOceanAPIEndpoint),
	}, nil
}

// Token returns the token and whether it is non-blank.
func (s *Settings) Token() (string, bool) {
	if s == nil || s.DigitalOceanAPIToken == nil || strings.TrimSpace(*s.DigitalOceanAPIToken) == "" {
		return "", false
	}
	return *s.DigitalOceanAPIToken, true
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
