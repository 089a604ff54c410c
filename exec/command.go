package exec

import (
	"context"
	"strings"

	"github.com/simonhull/firebird-suite/wren/progress"
)

// GenericCommand provides a fluent API for building and executing commands
type GenericCommand struct {
	executor *Executor
	line     string
	env      []string
	dir      string
	display  *bool
	session  progress.Session
	checked  bool
}

// NewGenericCommand creates a new generic command builder for a command line
func NewGenericCommand(executor *Executor, line string) *GenericCommand {
	return &GenericCommand{
		executor: executor,
		line:     line,
	}
}

// WithEnv adds environment variables
func (g *GenericCommand) WithEnv(env ...string) *GenericCommand {
	g.env = append(g.env, env...)
	return g
}

// WithDir sets the working directory
func (g *GenericCommand) WithDir(dir string) *GenericCommand {
	g.dir = dir
	return g
}

// WithDisplay overrides the executor's live output setting
func (g *GenericCommand) WithDisplay(on bool) *GenericCommand {
	g.display = &on
	return g
}

// WithProgress drives session while the command runs
func (g *GenericCommand) WithProgress(session progress.Session) *GenericCommand {
	g.session = session
	return g
}

// Checked makes a non-zero exit status an error
func (g *GenericCommand) Checked() *GenericCommand {
	g.checked = true
	return g
}

// Run executes the command
func (g *GenericCommand) Run(ctx context.Context) (*Result, error) {
	cmdExecutor := *g.executor
	cmdExecutor.env = append(append([]string(nil), g.executor.env...), g.env...)
	if g.display != nil {
		cmdExecutor.display = *g.display
	}

	dir := g.dir
	if dir == "" {
		dir = g.executor.dir
	}

	inv, err := Parse(g.line, dir)
	if err != nil {
		return nil, err
	}

	if g.checked {
		return cmdExecutor.RunChecked(ctx, inv, g.session)
	}
	return cmdExecutor.Execute(ctx, inv, g.session)
}

// String returns the command string representation for debugging
func (g *GenericCommand) String() string {
	return strings.Join(strings.Fields(g.line), " ")
}
