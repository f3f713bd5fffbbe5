// Package logging provides structured logging for mcp-server-digitalocean
// using slog.
//
// Library packages accept a *slog.Logger and default to [NewDiscard]; the
// CLI builds the real logger from its -v/-q/--log-format flags and stores it
// on the command context with [NewContext].
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("installing package", "package", "@digitalocean/mcp")
//
// Attributes whose keys or values look like credentials are masked by the
// text handler, so a token passed as an attribute prints as "****abcd".
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
