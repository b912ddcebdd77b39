// Package logging builds the slog loggers used across dscpctl.
//
// Diagnostics always go to stderr so stdout stays reserved for rendered
// command output. The package adds a Trace level below Debug for pre-call
// request logging and maps the CLI's repeated -v flag onto levels.
package logging
