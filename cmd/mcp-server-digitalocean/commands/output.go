package commands

import (
	"bytes"
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/pkg/fileutil"
)

type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
	formatTOML outputFormat = "toml"
)

// encode renders v in format. JSON is indented with two spaces; every format
// ends with a newline.
func encode(format outputFormat, v any) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case formatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, errors.Wrap(err, "encoding JSON")
		}
	case formatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, errors.Wrap(err, "encoding YAML")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encoding YAML")
		}
	case formatTOML:
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, errors.Wrap(err, "encoding TOML")
		}
	default:
		return nil, errors.NewUserError(errors.Newf("invalid output format %q", format), "Use -o json, -o yaml, or -o toml")
	}
	return buf.Bytes(), nil
}

// emit encodes v with the --output format and writes it to stdout or --output-file.
func (o *rootOptions) emit(cmd *cobra.Command, v any) error {
	data, err := encode(outputFormat(o.output), v)
	if err != nil {
		return err
	}
	return o.write(cmd, data)
}

// write sends data to --output-file (mode 0600, the token may be inside) or stdout.
func (o *rootOptions) write(cmd *cobra.Command, data []byte) error {
	if o.outputFile != "" {
		if err := fileutil.AtomicWriteFile(o.outputFile, data, 0o600); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "writing %s", o.outputFile), "Check that the output directory exists")
		}
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)
	return errors.Wrap(err, "writing output")
}
