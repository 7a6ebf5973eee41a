// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the tool's own flags into the application's configuration and
// passes everything after "--" through untouched as the raw export token
// stream.
package cli
