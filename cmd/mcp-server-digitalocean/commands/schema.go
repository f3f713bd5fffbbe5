package commands

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/settings"
)

func newSchemaCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the settings JSON schema",
		Long: `Print the JSON schema of the context server settings document.

The schema is always printed as indented JSON; --output is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := settings.Schema()
			if err != nil {
				return errors.ForCLI(err)
			}

			var buf bytes.Buffer
			if err := json.Indent(&buf, []byte(schema), "", "  "); err != nil {
				return errors.ForCLI(errors.Schema(errors.Wrap(err, "indenting settings schema")))
			}
			buf.WriteByte('\n')
			return opts.write(cmd, buf.Bytes())
		},
	}
}
