// Package logger provides leveled, structured logging for wren.
//
// Loggers are built on zerolog and expose a small interface so the exec
// engine can log without caring where records go:
//
//	log := logger.NewConsoleLogger(logger.LevelDebug, os.Stderr, false)
//	log.Info("starting", logger.F("command", "go test ./..."))
//
// Library code should default to NewSilentLogger; the CLI builds a logger
// from the "log" section of wren.yml via FromConfig.
package logger
