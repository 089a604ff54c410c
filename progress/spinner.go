package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Spinner is a Session rendered as an animated terminal spinner.
type Spinner struct {
	out    io.Writer
	frames spinner.Spinner
	style  lipgloss.Style

	mu       sync.Mutex
	status   string
	doneText string
	program  *tea.Program
	exited   chan struct{}
	closed   bool
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithFrames sets the spinner animation.
func WithFrames(frames spinner.Spinner) Option {
	return func(s *Spinner) { s.frames = frames }
}

// WithStyle sets the style applied to the spinner glyph.
func WithStyle(style lipgloss.Style) Option {
	return func(s *Spinner) { s.style = style }
}

// NewSpinner creates a spinner that renders to out (os.Stderr if nil).
func NewSpinner(out io.Writer, opts ...Option) *Spinner {
	if out == nil {
		out = os.Stderr
	}
	s := &Spinner{
		out:    out,
		frames: spinner.Dot,
		style:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendStatusMessage sets the text shown next to the spinner.
func (s *Spinner) SendStatusMessage(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.status = text
	if s.program != nil {
		s.program.Send(statusMsg(text))
	}
	return nil
}

// SendDoneMessage sets the text shown once the spinner is deactivated.
func (s *Spinner) SendDoneMessage(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.doneText = text
	return nil
}

// Activate starts the animation.
func (s *Spinner) Activate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.program != nil {
		return ErrAlreadyActive
	}

	m := newSpinnerModel(s.status, s.frames, s.style, terminalWidth(s.out))
	p := tea.NewProgram(m,
		tea.WithOutput(s.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		// A spinner that fails to render must not affect the command.
		_, _ = p.Run()
	}()

	s.program = p
	s.exited = exited
	return nil
}

// Deactivate stops the animation, prints the done text and waits until the
// final frame has been written.
func (s *Spinner) Deactivate() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.program == nil {
		s.mu.Unlock()
		return ErrNotActive
	}
	p, exited, text := s.program, s.exited, s.doneText
	s.program, s.exited = nil, nil
	s.mu.Unlock()

	p.Send(finishMsg{text: text})
	<-exited
	return nil
}

// Close stops a running animation and makes every later call fail with
// ErrSessionClosed.
func (s *Spinner) Close() error {
	s.mu.Lock()
	active := s.program != nil
	s.mu.Unlock()

	if active {
		if err := s.Deactivate(); err != nil && err != ErrNotActive {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// IsTerminal reports whether w is a terminal the spinner can animate on.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, defaulting to 80 when unknown.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

type statusMsg string

type finishMsg struct {
	text string
}

// spinnerModel is the bubbletea model behind Spinner
type spinnerModel struct {
	spinner spinner.Model
	status  string
	width   int
	done    bool
	text    string
}

func newSpinnerModel(status string, frames spinner.Spinner, style lipgloss.Style, width int) *spinnerModel {
	s := spinner.New()
	s.Spinner = frames
	s.Style = style
	return &spinnerModel{
		spinner: s,
		status:  status,
		width:   width,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.status = string(msg)
	case finishMsg:
		m.done = true
		m.text = msg.text
		if m.text == "" {
			m.text = m.status
		}
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		return fmt.Sprintf("✓ %s\n", truncate(m.text, m.width-2))
	}
	// glyph, space, and the trailing "..."
	return fmt.Sprintf("%s %s...", m.spinner.View(), truncate(m.status, m.width-6))
}

// truncate shortens s to maxWidth runes, marking the cut with "...".
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	if maxWidth < 3 {
		return "..."[:maxWidth]
	}
	return string(runes[:maxWidth-3]) + "..."
}
