package progress

import "errors"

var (
	// ErrSessionClosed is returned by every call made after Close.
	ErrSessionClosed = errors.New("progress: session closed")
	// ErrNotActive is returned by Deactivate when Activate was never called.
	ErrNotActive = errors.New("progress: session not active")
	// ErrAlreadyActive is returned by a second Activate without a Deactivate.
	ErrAlreadyActive = errors.New("progress: session already active")
)

// Session is the signaling side of a progress indicator.
//
// A run announces what it is about to do, pre-registers the text to show
// when it finishes, then brackets the child process with Activate and
// Deactivate. Every call fails once the indicator has gone away.
type Session interface {
	SendStatusMessage(text string) error
	SendDoneMessage(text string) error
	Activate() error
	Deactivate() error
}
