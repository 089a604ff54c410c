// Package input provides interactive terminal input utilities.
//
// # Overview
//
// A Prompter asks questions on one writer and reads answers from one
// reader. wren uses it for `run --confirm` and for `task add` when no
// --command flag is given.
//
// # Usage
//
//	p := input.NewPrompter(os.Stdin, os.Stdout)
//
//	// Ask for text input with a default
//	command := p.Prompt("Command", "go test ./...")
//
//	// Ask yes/no question
//	if p.Confirm("Run 'make deploy'?", false) {
//	    // User said yes
//	}
//
// # Styling
//
// The package uses lipgloss for consistent terminal styling:
//   - Prompts are displayed in cyan and bold
//   - Hints (defaults, [Y/n]) are displayed in gray
//
// # Non-Interactive Mode
//
// Prefer flags when a value is known, and prompt only when it is missing:
//
//	if commandFlag == "" {
//	    commandFlag = p.Prompt("Command", "")
//	}
package input
