// Package log builds [log/slog] handlers from level and format strings.
//
// It supports three output formats ([FormatJSON], [FormatLogfmt] and
// [FormatText]) and four levels ([LevelError], [LevelWarn], [LevelInfo]
// and [LevelDebug]). Use [NewHandler] to create a handler directly, or a
// [Config] whose flags are registered on a [github.com/spf13/pflag] flag
// set:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
