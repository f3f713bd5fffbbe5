package commands

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/logging"
)

// project is an isolated project directory with the server package
// installed at 1.0.0 and a fake node binary.
type project struct {
	dir  string
	node string
}

func setupProject(t *testing.T, settings string) project {
	t.Helper()

	t.Setenv("DOMCP_CONFIG_DIR", t.TempDir())
	t.Setenv("DOMCP_DEBUG", "")
	t.Setenv("DOMCP_CONFIG", "")
	dir := t.TempDir()
	t.Chdir(dir)

	node := filepath.Join(t.TempDir(), "node")
	require.NoError(t, os.WriteFile(node, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("DOMCP_NODE_BINARY", node)
	t.Setenv("DOMCP_PACKAGE_VERSION", "1.0.0")

	pkgDir := filepath.Join(dir, "node_modules", "@digitalocean", "mcp")
	require.NoError(t, os.MkdirAll(pkgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "package.json"),
		[]byte(`{"name": "@digitalocean/mcp", "version": "1.0.0"}`), 0o644))

	if settings != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".zed"), 0o755))
		doc := `{
  // project settings
  "context_servers": {
    "mcp-server-digitalocean": {"settings": ` + settings + `},
  },
}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".zed", "settings.json"), []byte(doc), 0o600))
	}

	return project{dir: dir, node: node}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func TestCommand(t *testing.T) {
	p := setupProject(t, `{"digitalocean_api_token": "abc123", "services": "  droplets, apps  "}`)

	stdout, _, err := run(t, "command", "-C", p.dir)
	require.NoError(t, err)

	var got commandOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, p.node, got.Command)
	assert.Equal(t, []string{
		filepath.Join(p.dir, "node_modules", "@digitalocean", "mcp", "index.js"),
		"--services",
		"droplets, apps",
	}, got.Args)
	assert.Equal(t, []envOutput{{Name: "DIGITALOCEAN_API_TOKEN", Value: "****c123"}}, got.Env)
}

func TestCommand_ShowSecrets(t *testing.T) {
	p := setupProject(t, `{"digitalocean_api_token": "abc123", "digitalocean_api_endpoint": "https://api.example.com"}`)

	stdout, _, err := run(t, "command", "-C", p.dir, "--show-secrets")
	require.NoError(t, err)

	var got commandOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []envOutput{
		{Name: "DIGITALOCEAN_API_TOKEN", Value: "abc123"},
		{Name: "DIGITALOCEAN_API_ENDPOINT", Value: "https://api.example.com"},
	}, got.Env)
}

func TestCommand_MissingToken(t *testing.T) {
	for _, settings := range []string{"", `{}`, `{"digitalocean_api_token": "  "}`} {
		t.Run(settings, func(t *testing.T) {
			p := setupProject(t, settings)

			stdout, _, err := run(t, "command", "-C", p.dir)
			require.Error(t, err)
			assert.Empty(t, stdout)
			assert.Equal(t, "digitalocean_api_token is required", err.Error())
			assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
		})
	}
}

func TestCommand_InstallFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake npm script requires a POSIX shell")
	}
	p := setupProject(t, `{"digitalocean_api_token": "abc123"}`)
	t.Setenv("DOMCP_PACKAGE_VERSION", "2.0.0")

	npm := filepath.Join(t.TempDir(), "npm")
	require.NoError(t, os.WriteFile(npm, []byte("#!/bin/sh\necho 'npm ERR! network' >&2\nexit 1\n"), 0o755))
	t.Setenv("DOMCP_NPM_BINARY", npm)

	_, _, err := run(t, "command", "-C", p.dir)
	require.Error(t, err)
	assert.Equal(t, errors.KindInstall, errors.KindOf(err))
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "installing @digitalocean/mcp@2.0.0")
}

func TestCommand_OutputFormats(t *testing.T) {
	p := setupProject(t, `{"digitalocean_api_token": "abc123"}`)

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := run(t, "command", "-C", p.dir, "-o", "yaml")
		require.NoError(t, err)

		var got commandOutput
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, p.node, got.Command)
		assert.Len(t, got.Args, 1)
	})

	t.Run("toml", func(t *testing.T) {
		stdout, _, err := run(t, "command", "-C", p.dir, "-o", "toml")
		require.NoError(t, err)
		assert.Contains(t, stdout, "[[env]]")
		assert.Contains(t, stdout, "DIGITALOCEAN_API_TOKEN")
	})

	t.Run("invalid", func(t *testing.T) {
		_, _, err := run(t, "command", "-C", p.dir, "-o", "xml")
		require.Error(t, err)
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})
}

func TestCommand_OutputFile(t *testing.T) {
	p := setupProject(t, `{"digitalocean_api_token": "abc123"}`)
	outFile := filepath.Join(t.TempDir(), "launch.json")

	stdout, _, err := run(t, "command", "-C", p.dir, "--show-secrets", "--output-file", outFile)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"value": "abc123"`)
}

func TestConfiguration(t *testing.T) {
	p := setupProject(t, `{"digitalocean_api_token": "abc123456"}`)

	stdout, _, err := run(t, "configuration", "-C", p.dir)
	require.NoError(t, err)

	var got configurationOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Contains(t, got.InstallationInstructions, "DigitalOcean")
	assert.Contains(t, got.DefaultSettings, `"digitalocean_api_token": "****3456"`)
	assert.NotContains(t, got.DefaultSettings, "abc123456")
	assert.Contains(t, got.SettingsSchema, `"digitalocean_api_token"`)

	stdout, _, err = run(t, "configuration", "-C", p.dir, "--show-secrets", "--defaults-only")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"digitalocean_api_token": "abc123456"`)
	assert.Contains(t, stdout, "///", "comments are kept")
}

func TestConfiguration_NoSettings(t *testing.T) {
	p := setupProject(t, "")

	stdout, _, err := run(t, "configuration", "-C", p.dir, "--defaults-only")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"digitalocean_api_token": ""`)
}

func TestConfiguration_BrokenSettingsFile(t *testing.T) {
	p := setupProject(t, "")
	require.NoError(t, os.MkdirAll(filepath.Join(p.dir, ".zed"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(p.dir, ".zed", "settings.json"), []byte(`{"context_servers": `), 0o600))

	stdout, stderr, err := run(t, "configuration", "-C", p.dir, "--defaults-only")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"digitalocean_api_token": ""`)
	assert.Contains(t, stderr, "WARN")
}

func TestSchema(t *testing.T) {
	setupProject(t, "")

	stdout, _, err := run(t, "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "DigitalOceanMcpSettings", doc["title"])
	assert.True(t, strings.HasSuffix(stdout, "}\n"))
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mcp-server-digitalocean version")
	assert.Contains(t, stdout, "@digitalocean/mcp@latest")
}

func TestRoot_QuietVerboseConflict(t *testing.T) {
	setupProject(t, "")

	_, _, err := run(t, "schema", "-q", "-v")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestRoot_InvalidLogFormat(t *testing.T) {
	setupProject(t, "")

	_, _, err := run(t, "schema", "--log-format", "xml")
	require.Error(t, err)
}

func TestRoot_BadConfig(t *testing.T) {
	setupProject(t, "")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 9\n"), 0o600))

	_, _, err := run(t, "command", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config version")
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestRoot_LogFile(t *testing.T) {
	p := setupProject(t, `{"digitalocean_api_token": "abc123"}`)
	logFile := filepath.Join(t.TempDir(), "domcp.log")

	_, _, err := run(t, "command", "-C", p.dir, "-vv", "--log-file", logFile)
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "built launch command")
	assert.Contains(t, string(data), `"settings":"`+filepath.Join(p.dir, ".zed", "settings.json")+`"`)
}

func TestRoot_ConfigFromEnv(t *testing.T) {
	setupProject(t, "")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 9\n"), 0o600))
	t.Setenv("DOMCP_CONFIG", cfgPath)

	_, _, err := run(t, "command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config version")
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestSetupLogging_MasksSecrets(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("DOMCP_DEBUG", "")

	logFile := filepath.Join(t.TempDir(), "domcp.log")
	opts := &rootOptions{logFormat: "json", logFile: logFile}

	var stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetErr(&stderr)
	cmd.SetContext(t.Context())
	require.NoError(t, opts.setupLogging(cmd))

	logging.FromContext(cmd.Context()).Warn("loaded settings", "api_token", "dop_v1_secretvalue")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	for name, out := range map[string]string{"log file": string(data), "stderr": stderr.String()} {
		assert.Contains(t, out, `"api_token":"****alue"`, name)
		assert.NotContains(t, out, "secretvalue", name)
	}
}

func TestMaskDefaultToken(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "masks token and keeps comments",
			doc:  "{\n  // token\n  \"digitalocean_api_token\": \"abc123456\",\n  \"services\": \"\"\n}\n",
			want: "{\n  // token\n  \"digitalocean_api_token\": \"****3456\",\n  \"services\": \"\"\n}\n",
		},
		{
			name: "empty token untouched",
			doc:  `{"digitalocean_api_token": ""}`,
			want: `{"digitalocean_api_token": ""}`,
		},
		{
			name: "not parseable",
			doc:  `{"digitalocean_api_token": `,
			want: `{"digitalocean_api_token": `,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskDefaultToken(tt.doc))
		})
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.ForCLI(errors.Validation(errors.New("digitalocean_api_token is required"))))

	out := buf.String()
	assert.Contains(t, out, "Error: digitalocean_api_token is required")
	assert.Contains(t, out, "Suggestion:")
}
