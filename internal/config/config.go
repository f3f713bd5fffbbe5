package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/thoreinstein/mcp-server-digitalocean/internal/errors"
	"github.com/thoreinstein/mcp-server-digitalocean/internal/extension"
)

// AppName is the application name used for config file naming.
const AppName = "mcp-server-digitalocean"

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "DOMCP"

// EnvConfigFile names the variable holding an explicit config file path,
// used when Load is given no path.
const EnvConfigFile = EnvPrefix + "_CONFIG"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version      int     `mapstructure:"version" yaml:"version"`
	ServerID     string  `mapstructure:"server_id" yaml:"server_id"`
	Package      Package `mapstructure:"package" yaml:"package"`
	SettingsFile string  `mapstructure:"settings_file" yaml:"settings_file"`
	WorkDir      string  `mapstructure:"work_dir" yaml:"work_dir"`
	NPMBinary    string  `mapstructure:"npm_binary" yaml:"npm_binary"`
	NodeBinary   string  `mapstructure:"node_binary" yaml:"node_binary"`
}

// Package identifies the server package and its entry script.
type Package struct {
	Name       string `mapstructure:"name" yaml:"name"`
	Version    string `mapstructure:"version" yaml:"version"`
	ServerPath string `mapstructure:"server_path" yaml:"server_path"`
}

// ConfigDir returns the user config directory, honoring DOMCP_CONFIG_DIR.
func ConfigDir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Init resets Viper and installs search paths, env binding, and defaults.
// Call this once at application startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("server_id", extension.ServerID)
	viper.SetDefault("package.name", extension.PackageName)
	viper.SetDefault("package.version", extension.PackageVersion)
	viper.SetDefault("package.server_path", extension.ServerPath)
	viper.SetDefault("settings_file", filepath.Join(".zed", "settings.json"))
	viper.SetDefault("work_dir", "")
	viper.SetDefault("npm_binary", "npm")
	viper.SetDefault("node_binary", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file is an error.
// If path is empty, $DOMCP_CONFIG is treated as an explicit path; without it
// the default locations are searched and a missing file falls back to defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// Without an explicit path a missing file means defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.Newf("validating config: %s", strings.Join(msgs, "; "))
	}

	return &cfg, nil
}

// FileUsed returns the config file Load read, or "" when defaults were used.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
