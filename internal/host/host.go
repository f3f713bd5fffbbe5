// Package host defines the capabilities the extension needs from its host:
// package installation, per-project settings, the runtime binary, and the
// working directory. Each capability is a black box with a success or
// failure outcome.
package host

import (
	"context"
	"os"
)

// PackageManager looks up and installs the server package.
type PackageManager interface {
	// InstalledVersion returns the installed version of name. ok is false
	// when the package is not installed.
	InstalledVersion(ctx context.Context, name string) (version string, ok bool, err error)

	// Install installs name at version.
	Install(ctx context.Context, name, version string) error
}

// SettingsStore returns the raw per-project settings of a context server.
type SettingsStore interface {
	// ProjectSettings returns nil when no settings exist for serverID.
	ProjectSettings(ctx context.Context, serverID string) ([]byte, error)
}

// Runtime locates the binary that executes the server script.
type Runtime interface {
	NodeBinaryPath(ctx context.Context) (string, error)
}

// WorkDir reports the directory the server package is installed under.
type WorkDir interface {
	Getwd() (string, error)
}

// Host bundles every capability.
type Host interface {
	PackageManager
	SettingsStore
	Runtime
	WorkDir
}

// OSWorkDir reports the process working directory.
type OSWorkDir struct{}

// Getwd returns os.Getwd.
func (OSWorkDir) Getwd() (string, error) { return os.Getwd() }

// FixedWorkDir reports a fixed directory.
type FixedWorkDir string

// Getwd returns the directory itself.
func (d FixedWorkDir) Getwd() (string, error) { return string(d), nil }

type composite struct {
	PackageManager
	SettingsStore
	Runtime
	WorkDir
}

// Compose builds a Host from separate capabilities. A nil wd uses OSWorkDir.
func Compose(pm PackageManager, ss SettingsStore, rt Runtime, wd WorkDir) Host {
	if wd == nil {
		wd = OSWorkDir{}
	}
	return &composite{
		PackageManager: pm,
		SettingsStore:  ss,
		Runtime:        rt,
		WorkDir:        wd,
	}
}
