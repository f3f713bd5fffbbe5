package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/extension"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/redact"
)

// commandOutput is the printed launch descriptor.
type commandOutput struct {
	Command string      `json:"command" yaml:"command" toml:"command"`
	Args    []string    `json:"args" yaml:"args" toml:"args"`
	Env     []envOutput `json:"env" yaml:"env" toml:"env"`
}

type envOutput struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

func newCommandCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "command",
		Short: "Print the launch command for the DigitalOcean MCP server",
		Long: `Print the command the editor should spawn to run the DigitalOcean MCP server.

Installs @digitalocean/mcp into the project directory with npm when the
pinned version is not installed, then resolves the context server settings.
The token is required; the services filter and endpoint override are
optional and ignored when blank.

The API token is masked in the output unless --show-secrets is given.`,
		Example: `  # Launch command for the current project
  mcp-server-digitalocean command

  # Launch command for another project, written to a file
  mcp-server-digitalocean command -C ~/src/infra --show-secrets --output-file launch.json

  See Also:
    mcp-server-digitalocean configuration - Settings UI descriptor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd.Context())
			if err != nil {
				return errors.ForCLI(err)
			}

			launch, err := s.ext.ContextServerCommand(cmd.Context(), s.serverID)
			if err != nil {
				return errors.ForCLI(err)
			}
			return opts.emit(cmd, newCommandOutput(launch, opts.showSecrets))
		},
	}
}

func newCommandOutput(c *extension.Command, showSecrets bool) commandOutput {
	out := commandOutput{
		Command: c.Command,
		Args:    c.Args,
		Env:     make([]envOutput, len(c.Env)),
	}
	for i, e := range c.Env {
		value := e.Value
		if !showSecrets {
			value = redact.Pair(e.Name, e.Value)
		}
		out.Env[i] = envOutput{Name: e.Name, Value: value}
	}
	return out
}
