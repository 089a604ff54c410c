package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// EraseLine clears the current terminal line and returns the cursor to column 0.
const EraseLine = "\x1b[2K\x1b[G"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	commandStyle = lipgloss.NewStyle().Bold(true)
)

// Printer writes styled messages to a writer.
type Printer struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// New creates a printer writing to out. A nil writer means os.Stdout.
func New(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

// SetVerbose enables or disables verbose output for debugging.
func (p *Printer) SetVerbose(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.verbose = v
}

// Success prints a success message with 🐦 and green color.
func (p *Printer) Success(msg string) {
	p.println(successStyle.Render("🐦 " + msg))
}

// Error prints an error message with ❌ and red color.
func (p *Printer) Error(msg string) {
	p.println(errorStyle.Render("❌ " + msg))
}

// Info prints an informational message in cyan.
func (p *Printer) Info(msg string) {
	p.println(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
func (p *Printer) Step(msg string) {
	p.println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	p.mu.Lock()
	v := p.verbose
	p.mu.Unlock()
	if v {
		p.println(stepStyle.Render("🔍 " + msg))
	}
}

// Command announces a command line before it runs.
//
//	>> go test ./...
func (p *Printer) Command(line string) {
	p.println(commandStyle.Render(">> " + line))
}

// Elapsed reports how long a command took, clearing any partial line first.
func (p *Printer) Elapsed(d time.Duration) {
	p.println(EraseLine + stepStyle.Render(fmt.Sprintf("> Time elapsed: %s", d.Round(time.Millisecond))))
}

func (p *Printer) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, s)
}

var std = New(os.Stderr)

// Error prints an error message to stderr.
func Error(msg string) { std.Error(msg) }
