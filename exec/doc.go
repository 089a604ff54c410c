// Package exec runs external commands while relaying their live output.
//
// The exec package provides four main components:
//
// 1. Invocation - a command line split on whitespace, plus working directory and environment
// 2. Executor - spawns the child, relays stdout/stderr live, and assembles a Result
// 3. GenericCommand - Fluent API for building and executing commands
// 4. TaskRegistry - named command lines, usually loaded from wren.yml
//
// # Basic Usage
//
//	executor := exec.NewExecutor(nil)
//	res, err := executor.Run(ctx, "go test ./...")
//	if err == nil && !res.Success() {
//	    // the command ran but failed
//	}
//
// A non-zero exit status is not an error: Execute returns a Result and the
// caller decides. RunChecked, or GenericCommand.Checked, turns it into an
// error of kind KindExit.
//
// # Live Output
//
// In display mode the child's stdout and stderr are read by one goroutine
// each. A reader publishes every line it reads into a Mailbox, overwriting
// any line the display has not shown yet, and closes its done channel when
// the pipe reaches EOF. The display loop drains both mailboxes to the
// output writer (stdout first, after an erase-line sequence) and stops only
// once both readers are done, never by watching the child itself, so the
// last line of output is always shown. Fast producers may have lines skipped
// on screen; Result.Stdout and Result.Stderr still hold the full transcript.
//
// # Progress
//
// Pass a progress.Session to drive a spinner:
//
//	spin := progress.NewSpinner(os.Stderr)
//	defer spin.Close()
//	_, err := exec.NewGenericCommand(executor, "make build").
//	    WithDir("./service").
//	    WithProgress(spin).
//	    Checked().
//	    Run(ctx)
//
// Status and done text are sent before the child starts, Activate right
// after it starts, and Deactivate once it has finished, whatever the outcome.
//
// # Errors
//
// Failures are *Error values. Use errors.Is with ErrInvalidCommand, ErrSpawn,
// ErrWait, ErrChannel or ErrExit to tell them apart. Broken output pipes
// (ErrStreamRead) are logged and never abort the command.
package exec
