package commands

import (
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/redact"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/settings"
)

type configurationOutput struct {
	InstallationInstructions string `json:"installation_instructions" yaml:"installation_instructions" toml:"installation_instructions"`
	DefaultSettings          string `json:"default_settings" yaml:"default_settings" toml:"default_settings"`
	SettingsSchema           string `json:"settings_schema" yaml:"settings_schema" toml:"settings_schema"`
}

func newConfigurationCmd(opts *rootOptions) *cobra.Command {
	var defaultsOnly bool

	c := &cobra.Command{
		Use:     "configuration",
		Aliases: []string{"config"},
		Short:   "Print the settings UI descriptor",
		Long: `Print what the editor shows when configuring the DigitalOcean MCP server:
installation instructions, a default settings document, and the settings
JSON schema.

The default settings carry the token currently configured for the project,
or an empty token when none is set or the settings cannot be read. This
command never installs anything. With --defaults-only only the default
settings document is printed, as JSONC.`,
		Example: `  # Full descriptor as JSON
  mcp-server-digitalocean configuration

  # Seed a settings snippet
  mcp-server-digitalocean configuration --defaults-only > do-settings.jsonc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd.Context())
			if err != nil {
				return errors.ForCLI(err)
			}

			cfg, err := s.ext.ContextServerConfiguration(cmd.Context(), s.serverID)
			if err != nil {
				return errors.ForCLI(err)
			}
			defaults := cfg.DefaultSettings
			if !opts.showSecrets {
				defaults = maskDefaultToken(defaults)
			}

			if defaultsOnly {
				return opts.write(cmd, []byte(defaults))
			}
			return opts.emit(cmd, configurationOutput{
				InstallationInstructions: cfg.InstallationInstructions,
				DefaultSettings:          defaults,
				SettingsSchema:           cfg.SettingsSchema,
			})
		},
	}
	c.Flags().BoolVar(&defaultsOnly, "defaults-only", false, "print only the default settings document")
	return c
}

// maskDefaultToken masks a non-empty token in the default settings document,
// keeping its comments and layout.
func maskDefaultToken(doc string) string {
	v, err := hujson.Parse([]byte(doc))
	if err != nil {
		return doc
	}
	field := v.Find("/" + settings.KeyAPIToken)
	if field == nil {
		return doc
	}
	lit, ok := field.Value.(hujson.Literal)
	if !ok || lit.Kind() != '"' || lit.String() == "" {
		return doc
	}
	field.Value = hujson.String(redact.MaskValue(lit.String()))
	return string(v.Pack())
}
