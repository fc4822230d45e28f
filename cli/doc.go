// Package cli contains the command line interface for pyson.
//
// # Usage
//
//	pyson [flags] <command> [args]
//
// Commands are implemented in package cmd: dump (default), get, check,
// fmt json|yaml, and eval. Every command accepts "-" as a source to read
// standard input.
//
// # Configuration
//
// Flag defaults may be set in a PYSON file at
// $XDG_CONFIG_HOME/pyson/config, one flag per line:
//
//	log-level:str:debug
//	log-format:str:json
//	color:str:never
//
// A missing or malformed config file is ignored. Command-line flags override
// config file values.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (text, json)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: include caller information
//   - --[no-]log-pretty: colorize text output
//
// Logs are written to standard error.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling in the given mode
//   - --pprof-dir: profile output directory (default
//     $XDG_CACHE_HOME/pyson/pprof)
package cli
