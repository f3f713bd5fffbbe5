package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	buildinfo "github.com/thoreinstein/mcp-server-digitalocean/cmd"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/extension"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, commit, and build date, and the server package this build launches.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mcp-server-digitalocean version %s\n", buildinfo.Version)
			fmt.Fprintf(out, "  commit:  %s\n", buildinfo.Commit)
			fmt.Fprintf(out, "  built:   %s\n", buildinfo.Date)
			fmt.Fprintf(out, "  package: %s@%s\n", extension.PackageName, extension.PackageVersion)
		},
	}
}
