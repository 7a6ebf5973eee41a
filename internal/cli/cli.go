package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/embergrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. Everything after a literal "--"
// is set aside untouched as the raw export token stream before flag parsing
// begins, so export flags like -BG never collide with the tool's own flags.
// It returns a populated app.Config, a boolean indicating if the program
// should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	head := args
	var exportTokens []string
	for i, arg := range args {
		if arg == "--" {
			head = args[:i]
			exportTokens = args[i+1:]
			break
		}
	}

	flagSet := flag.NewFlagSet("embergrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Embergrid - compiles and submits wildfire-growth simulation jobs.

Usage:
  embergrid [options] PARAMS_FILE -- <export requests...>

Arguments:
  PARAMS_FILE
    Path to the 45-line simulation parameter file.
  <export requests...>
    Raw export flags and their arguments, passed through verbatim,
    e.g. -BG fire1 2001-10-16T13:00:00-05:00

Options:
`)
		flagSet.PrintDefaults()
	}

	paramsFlag := flagSet.String("params", "", "Path to the simulation parameter file.")
	settingsFlag := flagSet.String("settings", "", "Path to an HCL settings file or a directory of them.")
	outPrefixFlag := flagSet.String("out-prefix", "", "Scenario-relative prefix for export output paths. Overrides the settings file.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health and metrics server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Compile and validate the job locally, skipping every network step.")

	if err := flagSet.Parse(head); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *paramsFlag != "" {
		path = *paramsFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Parameter file path determined.", "path", path)

	if path == "" {
		slog.Debug("No parameter file provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ParamsPath:      path,
		ExportTokens:    exportTokens,
		SettingsPath:    *settingsFlag,
		OutputPrefix:    *outPrefixFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		DryRun:          *dryRunFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
