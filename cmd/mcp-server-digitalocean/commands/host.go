package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/extension"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/host"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/host/nodepath"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/host/npm"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/host/settingsfile"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/logging"
)

// session is an Extension wired to the reference host for one invocation.
type session struct {
	ext      *extension.Extension
	serverID string
}

// newSession builds the reference host from flags and config:
// npm in the project directory, the editor settings file, and node from
// node_binary or PATH.
func (o *rootOptions) newSession(ctx context.Context) (*session, error) {
	cfg := o.cfg
	logger := logging.FromContext(ctx)

	dir := firstNonEmpty(o.dir, cfg.WorkDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.IO(errors.Wrap(err, "resolving working directory"))
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.IO(errors.Wrapf(err, "resolving project directory %s", dir))
	}

	settingsPath := firstNonEmpty(o.settingsFile, cfg.SettingsFile)
	if !filepath.IsAbs(settingsPath) {
		settingsPath = filepath.Join(dir, settingsPath)
	}

	store := settingsfile.New(settingsPath)
	h := host.Compose(
		npm.New(dir, npm.WithBinary(cfg.NPMBinary), npm.WithLogger(logger)),
		store,
		nodepath.New(cfg.NodeBinary),
		host.FixedWorkDir(dir),
	)

	logger.Debug("using project", "dir", dir, "settings", store.Path())

	return &session{
		ext: extension.New(h,
			extension.WithLogger(logger),
			extension.WithPackage(cfg.Package.Name, cfg.Package.Version, cfg.Package.ServerPath),
		),
		serverID: firstNonEmpty(o.serverID, cfg.ServerID),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
