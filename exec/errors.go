package exec

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Kind classifies an execution failure.
type Kind int

const (
	// KindInvalidCommand means the command line had no tokens.
	KindInvalidCommand Kind = iota + 1
	// KindSpawn means the OS could not start the process.
	KindSpawn
	// KindWait means waiting for the process failed.
	KindWait
	// KindStreamRead means an output pipe broke. Logged, never returned.
	KindStreamRead
	// KindChannel means a progress session call failed.
	KindChannel
	// KindExit means a checked run exited non-zero.
	KindExit
)

// Sentinels matched with errors.Is against an *Error of the same kind.
var (
	ErrInvalidCommand = errors.New("invalid command")
	ErrSpawn          = errors.New("failed to start")
	ErrWait           = errors.New("failed while waiting")
	ErrStreamRead     = errors.New("failed to read output")
	ErrChannel        = errors.New("progress session failed")
	ErrExit           = errors.New("exited with failure")
)

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidCommand:
		return ErrInvalidCommand
	case KindSpawn:
		return ErrSpawn
	case KindWait:
		return ErrWait
	case KindStreamRead:
		return ErrStreamRead
	case KindChannel:
		return ErrChannel
	case KindExit:
		return ErrExit
	default:
		return nil
	}
}

// String returns the kind name used in messages.
func (k Kind) String() string {
	switch k {
	case KindInvalidCommand:
		return "InvalidCommand"
	case KindSpawn:
		return "SpawnError"
	case KindWait:
		return "WaitError"
	case KindStreamRead:
		return "StreamReadError"
	case KindChannel:
		return "ChannelError"
	case KindExit:
		return "ExitError"
	default:
		return "UnknownError"
	}
}

// Error is returned by every failing run. Command is the literal command line.
type Error struct {
	Kind    Kind
	Command string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindExit:
		fmt.Fprintf(&b, "Subcommand '%s' failed!", e.Command)
	case KindInvalidCommand:
		fmt.Fprintf(&b, "%s: %q", e.Kind.sentinel(), e.Command)
	default:
		fmt.Fprintf(&b, "%s %s", e.Command, e.Kind.sentinel())
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, command string, err error) *Error {
	return &Error{Kind: kind, Command: command, Err: err}
}

// spawnError wraps a start failure, adding an install hint for missing binaries.
func spawnError(command, name string, err error) *Error {
	if isCommandNotFound(err) {
		err = enhanceError(err, name)
	}
	return newError(KindSpawn, command, err)
}

// isCommandNotFound checks if an error indicates a command was not found
func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}

// enhanceError adds helpful message for missing commands
func enhanceError(err error, cmd string) error {
	return fmt.Errorf("%w\n💡 Command '%s' not found. Please install it and try again", err, cmd)
}
