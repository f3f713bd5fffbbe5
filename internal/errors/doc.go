// Package errors provides error handling conventions for
// mcp-server-digitalocean.
//
// It re-exports the github.com/cockroachdb/errors constructors used across
// the module, defines the error kinds a host can observe, and provides an
// ExitError type for the CLI.
//
// # Error Kinds
//
// Every failure surfaced to a host carries exactly one kind, attached with
// [Mark] so the user-facing message is unchanged:
//
//   - [ErrValidation]: settings are malformed or the API token is missing
//   - [ErrInstall]: the server package could not be looked up or installed
//   - [ErrIO]: working directory, settings store, or runtime lookup failed
//   - [ErrSchema]: the settings schema could not be serialized
//
// Callers classify with [errors.Is] or [KindOf]:
//
//	if errors.Is(err, doerrors.ErrValidation) {
//	    // ask the user to fix their settings
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): validation errors the user can fix in settings
//   - ExitSystem (2): install, I/O, and schema failures
//
// [ForCLI] converts any error into an [ExitError] with the matching code and
// a suggestion for the user.
package errors
