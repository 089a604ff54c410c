// Package progress provides the spinner shown while a command runs.
//
// The exec package only talks to the Session interface:
//
//	s := progress.NewSpinner(os.Stderr)
//	defer s.Close()
//	_ = s.SendStatusMessage("go test ./...")
//	_ = s.SendDoneMessage("go test ./...")
//	_ = s.Activate()
//	// ... child runs ...
//	_ = s.Deactivate()
//
// Spinner renders with bubbletea and the bubbles spinner component. It
// never reads from stdin, so it coexists with a child that owns the terminal
// input.
package progress
