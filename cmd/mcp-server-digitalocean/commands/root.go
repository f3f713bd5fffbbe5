// Package commands implements the CLI commands for mcp-server-digitalocean.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	buildinfo "github.com/thoreinstein/mcp-server-digitalocean/cmd"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/config"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/logging"
)

// rootOptions holds persistent flag values and the loaded config.
type rootOptions struct {
	verbosity    int
	quiet        bool
	logFormat    string
	logFile      string
	configPath   string
	dir          string
	settingsFile string
	serverID     string
	output       string
	outputFile   string
	showSecrets  bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mcp-server-digitalocean",
		Short: "Launch and configure the DigitalOcean MCP server for editor hosts",
		Long: `mcp-server-digitalocean adapts the DigitalOcean MCP server (@digitalocean/mcp)
to an editor's context server settings.

It reads the per-project context server settings (API token, services filter,
API endpoint override), makes sure the server package is installed with npm,
and prints the launch command the editor should spawn. It also prints the
settings UI descriptor: installation instructions, default settings, and the
settings JSON schema.

Settings are read from the editor settings file (default .zed/settings.json
in the project directory) under context_servers.<server-id>.settings.`,
		Example: `  # Print the launch command for the current project
  mcp-server-digitalocean command

  # Same, with the token visible and as YAML
  mcp-server-digitalocean command --show-secrets -o yaml

  # Print the settings UI descriptor
  mcp-server-digitalocean configuration

  # Print the settings schema
  mcp-server-digitalocean schema`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.setupLogging(cmd); err != nil {
				return err
			}
			return opts.loadConfig(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		Version:       buildinfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetVersionTemplate("mcp-server-digitalocean version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity level (e.g., -v, -vv)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text, json")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to file in JSON format")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ./config.yaml or $XDG_CONFIG_HOME/mcp-server-digitalocean/config.yaml)")
	flags.StringVarP(&opts.dir, "dir", "C", "", "project directory the server package is installed under (default: current directory)")
	flags.StringVar(&opts.settingsFile, "settings", "", "editor settings file, relative to the project directory")
	flags.StringVar(&opts.serverID, "server-id", "", "context server id the settings are stored under")
	flags.StringVarP(&opts.output, "output", "o", string(formatJSON), "output format: json, yaml, toml")
	flags.StringVar(&opts.outputFile, "output-file", "", "write output to a file instead of stdout")
	flags.BoolVar(&opts.showSecrets, "show-secrets", false, "reveal the API token in printed output")

	rootCmd.AddCommand(
		newCommandCmd(opts),
		newConfigurationCmd(opts),
		newSchemaCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// setupLogging configures the default logger based on verbosity flags.
func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	if o.quiet && o.verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass only one of -q and -v")
	}

	var level slog.Level
	if o.quiet {
		level = slog.LevelError
	} else {
		v := o.verbosity
		if v == 0 {
			switch os.Getenv("DOMCP_DEBUG") {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	var handlers []slog.Handler
	switch logging.Format(o.logFormat) {
	case logging.FormatText, logging.FormatJSON:
		handlers = append(handlers, logging.New(logging.Config{
			Level:  level,
			Format: logging.Format(o.logFormat),
			Output: cmd.ErrOrStderr(),
		}).Handler())
	default:
		return errors.NewUserError(errors.Newf("invalid log format %q", o.logFormat), "Use --log-format text or --log-format json")
	}

	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		handlers = append(handlers, logging.New(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}).Handler())
	}

	handler := handlers[0]
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// loadConfig initializes Viper and loads the config file.
func (o *rootOptions) loadConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	config.Init()
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return errors.NewConfigError(err)
	}
	o.cfg = cfg

	logging.FromContext(cmd.Context()).Debug("loaded config",
		"file", config.FileUsed(),
		"package", cfg.Package.Name+"@"+cfg.Package.Version,
	)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// PrintError writes err and any suggestion it carries to w.
func PrintError(w io.Writer, err error) {
	label := "Error:"
	if logging.SupportsColor(w) {
		label = color.New(color.FgRed, color.Bold).Sprint(label)
	}
	fmt.Fprintln(w, label, err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(w, "Suggestion:", exitErr.Suggestion)
	}
}
