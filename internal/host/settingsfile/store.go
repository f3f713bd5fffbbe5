// Package settingsfile implements host.SettingsStore over an editor settings
// file in JSONC form:
//
//	{
//	  "context_servers": {
//	    "mcp-server-digitalocean": {
//	      "settings": { "digitalocean_api_token": "..." }
//	    }
//	  }
//	}
package settingsfile

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"

	"github.com/tailscale/hujson"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
)

// Store reads context server settings from a single file.
type Store struct {
	path string
}

// New creates a Store backed by path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file path.
func (s *Store) Path() string { return s.path }

type document struct {
	ContextServers map[string]struct {
		Settings json.RawMessage `json:"settings"`
	} `json:"context_servers"`
}

// ProjectSettings returns the "settings" value of serverID. A missing file,
// server entry, or settings key yields nil with no error.
func (s *Store) ProjectSettings(_ context.Context, serverID string) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading settings file %s", s.path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing settings file %s", s.path)
	}

	var doc document
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, errors.Wrapf(err, "decoding settings file %s", s.path)
	}

	entry, ok := doc.ContextServers[serverID]
	if !ok || len(entry.Settings) == 0 {
		return nil, nil
	}
	return entry.Settings, nil
}
