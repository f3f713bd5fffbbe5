// Package settings resolves the per-project context server settings for the
// DigitalOcean MCP server.
//
// The settings document is host-provided JSON (comments and trailing commas
// are accepted):
//
//	{
//	  "digitalocean_api_token": "dop_v1_...",
//	  "services": "droplets, apps",
//	  "digitalocean_api_endpoint": "https://api.digitalocean.com"
//	}
//
// Every field is optional on the wire. [Resolve] applies a normalize-then-
// validate policy: optional values that are empty after trimming count as
// unset, and a token that is missing or blank fails with a validation error.
package settings
