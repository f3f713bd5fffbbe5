// Package nodepath implements host.Runtime by locating the node binary.
package nodepath

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
)

// Resolver finds node from an explicit override or from PATH.
type Resolver struct {
	override string
	lookPath func(string) (string, error)
}

// New creates a Resolver. An empty override means PATH lookup.
func New(override string) *Resolver {
	return &Resolver{override: override, lookPath: exec.LookPath}
}

// NodeBinaryPath returns an absolute path to node.
func (r *Resolver) NodeBinaryPath(_ context.Context) (string, error) {
	if r.override != "" {
		path, err := filepath.Abs(r.override)
		if err != nil {
			return "", errors.Wrapf(err, "resolving node binary %s", r.override)
		}
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrap(err, "node binary")
		}
		return path, nil
	}

	path, err := r.lookPath("node")
	if err != nil {
		return "", errors.Wrap(err, "looking up node on PATH")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving node binary %s", path)
	}
	return abs, nil
}
