package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/pathmap/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("pathmap", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pathmap - read, check, and mutate config documents by key path.

Usage:
  pathmap -doc DOC [options] OP [PATH] [VALUE]

Arguments:
  OP
    One of: fetch, get, exists, validate, put, put-auto, put-new,
    put-new-auto, ensure, update, merge.
  PATH
    Dotted key path into the document, e.g. server.tls.cert.
    Omit it (or pass "") to address the document root.
  VALUE
    Required for write operations; optional fallback for get. Parsed as
    JSON, with a plain-string fallback.

Options:
`)
		flagSet.PrintDefaults()
	}

	docFlag := flagSet.String("doc", "", "Path to a document file or a directory of documents.")
	formatFlag := flagSet.String("format", "json", "Output format. Options: 'json', 'yaml' or 'hcl'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	outFormat := strings.ToLower(*formatFlag)
	switch outFormat {
	case "json", "yaml", "hcl":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'json', 'yaml' or 'hcl'"}
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

	cfg := app.Config{
		DocPath:   *docFlag,
		Op:        strings.ToLower(flagSet.Arg(0)),
		OutFormat: outFormat,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}
	if flagSet.NArg() > 1 {
		cfg.PathExpr = flagSet.Arg(1)
	}
	if flagSet.NArg() > 2 {
		cfg.Value = flagSet.Arg(2)
		cfg.HasValue = true
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
