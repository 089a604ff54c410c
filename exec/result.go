package exec

import "time"

// Result holds the outcome of a finished command.
type Result struct {
	// Command is the command line that was run.
	Command string
	// ExitCode is the process exit code. -1 if the process was killed by a signal.
	ExitCode int
	// Stdout is the complete standard output, in display mode too.
	Stdout []byte
	// Stderr is the complete standard error, in display mode too.
	Stderr []byte
	// Duration is how long the process ran.
	Duration time.Duration
}

// Success reports whether the process exited with status 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}
