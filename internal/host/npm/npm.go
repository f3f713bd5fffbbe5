// Package npm implements host.PackageManager on top of the npm CLI.
//
// Packages are installed into a prefix directory (the project directory by
// default), so the server script ends up at
// <dir>/node_modules/<name>/<entry>.
package npm

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/logging"
)

// Manager installs packages with npm into Dir.
type Manager struct {
	dir    string
	binary string
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithBinary sets the npm executable. Defaults to "npm".
func WithBinary(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.binary = path
		}
	}
}

// WithLogger sets the logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a Manager rooted at dir.
func New(dir string, opts ...Option) *Manager {
	m := &Manager{
		dir:    dir,
		binary: "npm",
		logger: logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// packageJSON is the subset of package.json read back after installation.
type packageJSON struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InstalledVersion reads node_modules/<name>/package.json under the prefix.
func (m *Manager) InstalledVersion(_ context.Context, name string) (string, bool, error) {
	path := filepath.Join(m.dir, "node_modules", filepath.FromSlash(name), "package.json")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "reading %s", path)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", false, errors.Wrapf(err, "parsing %s", path)
	}
	if pkg.Version == "" {
		return "", false, nil
	}
	return pkg.Version, true, nil
}

// Install runs `npm install --prefix <dir> <name>@<version>`.
// npm output is captured and included in the error on failure.
func (m *Manager) Install(ctx context.Context, name, version string) error {
	spec := name + "@" + version
	args := []string{"install", "--prefix", m.dir, "--no-audit", "--no-fund", spec}

	m.logger.Info("installing package", "package", spec, "dir", m.dir)
	m.logger.Debug("running npm", "binary", m.binary, "args", strings.Join(args, " "))

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, m.binary, args...)
	cmd.Dir = m.dir
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if out := strings.TrimSpace(output.String()); out != "" {
			return errors.Wrapf(err, "npm install %s: %s", spec, lastLine(out))
		}
		return errors.Wrapf(err, "npm install %s", spec)
	}

	m.logger.Debug("npm install finished", "package", spec)
	return nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
