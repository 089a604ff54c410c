package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		def      string
		expected string
	}{
		{"typed value", "make test\n", "go test", "make test"},
		{"enter keeps default", "\n", "go test", "go test"},
		{"eof keeps default", "", "go test", "go test"},
		{"no trailing newline", "ls", "", "ls"},
		{"whitespace trimmed", "   go vet   \n", "", "go vet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.answer), &out)

			assert.Equal(t, tt.expected, p.Prompt("Command", tt.def))
			assert.Contains(t, out.String(), "Command")
		})
	}
}

func TestPrompt_ShowsDefault(t *testing.T) {
	var out bytes.Buffer
	NewPrompter(strings.NewReader("\n"), &out).Prompt("Command", "go build")
	assert.Contains(t, out.String(), "(go build)")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		defaultYes bool
		expected   bool
	}{
		{"yes", "y\n", false, true},
		{"YES", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"enter default yes", "\n", true, true},
		{"enter default no", "\n", false, false},
		{"eof default yes", "", true, true},
		{"garbage", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.answer), &out)
			assert.Equal(t, tt.expected, p.Confirm("Continue?", tt.defaultYes))
		})
	}
}

func TestConfirm_Hint(t *testing.T) {
	var out bytes.Buffer
	NewPrompter(strings.NewReader("\n"), &out).Confirm("Run?", true)
	assert.Contains(t, out.String(), "[Y/n]")

	out.Reset()
	NewPrompter(strings.NewReader("\n"), &out).Confirm("Run?", false)
	assert.Contains(t, out.String(), "[y/N]")
}
