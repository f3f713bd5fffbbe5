// Package config loads the reference host's own configuration using Viper.
//
// The configuration decides where the host looks for things (the project
// directory, the editor settings file, the npm and node binaries) and which
// server package it launches. It is distinct from the per-project context
// server settings, which are read by the settings store.
//
// # Configuration File
//
// config.yaml is searched in the current directory and then in
// $XDG_CONFIG_HOME/mcp-server-digitalocean (or $DOMCP_CONFIG_DIR). An explicit
// file can be named with --config or $DOMCP_CONFIG:
//
//	version: 1
//	server_id: mcp-server-digitalocean
//	settings_file: .zed/settings.json
//	package:
//	  name: "@digitalocean/mcp"
//	  version: latest
//	  server_path: node_modules/@digitalocean/mcp/index.js
//	npm_binary: npm
//	node_binary: ""   # empty means look up node on PATH
//
// Every key can be overridden from the environment with the DOMCP_ prefix,
// with dots replaced by underscores (DOMCP_PACKAGE_VERSION=1.2.0).
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return errors.Wrap(err, "loading config")
//	}
//
// A missing file is fine when no explicit path is given; defaults apply.
// Loaded values are always passed through [Validate].
package config
