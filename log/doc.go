// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Time formatting, caller information, level, and output format are
// applied at logger creation time using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("document loaded", slog.Int("records", doc.Len()))
//	logger.Error("decode failed", slog.Any("error", err))
//
// The package also maintains a default logger writing to [os.Stderr],
// reconfigured with [Config] and used by the package-level functions:
//
//	log.Config(log.WithLevel(log.LevelDebug))
//	log.Debug("reading source", slog.String("path", path))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// # Adding Attributes
//
// [Logger.With] returns a logger that includes the given attributes in
// every subsequent message:
//
//	logger = logger.With(slog.String("command", "dump"))
//
// # Context-Aware Logging
//
// Each level has a context-aware and a context-unaware variant. The
// context-unaware variants use [DefaultContextProvider], which returns
// [context.TODO] unless replaced.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded.
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON] are supported. Text output is
// colorized unless [WithPretty] disables it.
package log
