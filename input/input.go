package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter. Nil arguments fall back to os.Stdin and os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	cmd := p.Prompt("Command", "go build ./...")
//	// Displays: Command (go build ./...): _
func (p *Prompter) Prompt(message, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprint(p.out, promptStyle.Render(message)+" "+
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue))+": ")
	} else {
		fmt.Fprint(p.out, promptStyle.Render(message)+": ")
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return defaultValue
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// If defaultYes is true, pressing Enter returns true.
//
//	// Displays: Run go test ./...? [Y/n]: _
func (p *Prompter) Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprint(p.out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return defaultYes
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes
	}
	return line == "y" || line == "yes"
}
