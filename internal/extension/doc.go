// Package extension adapts the DigitalOcean MCP server to a host editor's
// context server interface.
//
// An [Extension] answers two host requests:
//
//   - [Extension.ContextServerCommand] makes sure @digitalocean/mcp is
//     installed, resolves the project settings, and returns the [Command]
//     the host spawns: node, the server script, an optional --services
//     filter, and the DIGITALOCEAN_API_TOKEN / DIGITALOCEAN_API_ENDPOINT
//     environment.
//   - [Extension.ContextServerConfiguration] returns the installation
//     instructions, a default settings document with the current token
//     filled in, and the settings JSON schema for the host's settings UI.
//
// Everything the extension needs from the outside world comes through the
// [host.Host] passed to [New]; the extension itself keeps no state between
// calls.
package extension
