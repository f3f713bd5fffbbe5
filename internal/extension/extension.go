package extension

import (
	"log/slog"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/host"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/logging"
)

// Package and launch constants.
const (
	// ServerID is the context server id the host stores settings under.
	ServerID = "mcp-server-digitalocean"

	// PackageName is the npm package providing the server.
	PackageName = "@digitalocean/mcp"

	// PackageVersion is the pinned version tag.
	PackageVersion = "latest"

	// ServerPath is the server entry script relative to the working directory.
	ServerPath = "node_modules/@digitalocean/mcp/index.js"

	// ServicesFlag precedes the services filter argument.
	ServicesFlag = "--services"

	// EnvAPIToken carries the API token to the server process.
	EnvAPIToken = "DIGITALOCEAN_API_TOKEN"

	// EnvAPIEndpoint carries the API endpoint override.
	EnvAPIEndpoint = "DIGITALOCEAN_API_ENDPOINT"
)

// EnvVar is one environment variable for the server process.
type EnvVar struct {
	Name  string
	Value string
}

// Command describes how the host should spawn the server.
type Command struct {
	// Command is the runtime binary (node).
	Command string
	// Args starts with the absolute server script path.
	Args []string
	// Env is ordered: token first, then the endpoint override if set.
	Env []EnvVar
}

// Configuration is what the host shows in its settings UI.
type Configuration struct {
	InstallationInstructions string
	DefaultSettings          string
	SettingsSchema           string
}

// Extension builds launch and configuration descriptors.
type Extension struct {
	host       host.Host
	logger     *slog.Logger
	pkgName    string
	pkgVersion string
	serverPath string
}

// Option configures an Extension.
type Option func(*Extension)

// WithLogger sets the logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extension) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithPackage overrides the server package, its pinned version, and the
// entry script path. Empty values keep the defaults.
func WithPackage(name, version, serverPath string) Option {
	return func(e *Extension) {
		if name != "" {
			e.pkgName = name
		}
		if version != "" {
			e.pkgVersion = version
		}
		if serverPath != "" {
			e.serverPath = serverPath
		}
	}
}

// New creates an Extension backed by h.
func New(h host.Host, opts ...Option) *Extension {
	e := &Extension{
		host:       h,
		logger:     logging.NewDiscard(),
		pkgName:    PackageName,
		pkgVersion: PackageVersion,
		serverPath: ServerPath,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func serverIDOrDefault(id string) string {
	if id == "" {
		return ServerID
	}
	return id
}
