// Package output provides styled terminal output for wren.
//
// # Overview
//
// A Printer writes to an injected io.Writer, so callers and tests decide
// where text goes. The executor uses one to announce commands and report
// elapsed time; the CLI uses one for everything else.
//
// # Usage
//
//	p := output.New(os.Stdout)
//	p.Command("go test ./...")   // >> go test ./...
//	p.Success("All tasks done")
//	p.Info("Next steps:")
//	p.Step("wren task list")
//
// Error reports a failure on stderr without a Printer:
//
//	output.Error(err.Error())
//
// # Verbose Mode
//
//	p.SetVerbose(true)
//	p.Verbose("only shown with --verbose")
//
// # Styling
//
// The package uses lipgloss for terminal styling:
//
//   - Success: 🐦 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
//
// Elapsed starts with EraseLine so it replaces whatever partial line the
// live display left behind.
package output
