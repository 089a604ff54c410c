package exec

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Invocation is a parsed command ready to spawn. It is not modified after Parse.
type Invocation struct {
	Name string
	Args []string
	Dir  string
	Env  []string

	line string
}

// Parse splits command on whitespace into a program name and arguments.
// Quotes, escapes, pipes and globs are not interpreted. An empty dir keeps
// the caller's working directory.
func Parse(command, dir string) (*Invocation, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, newError(KindInvalidCommand, command, nil)
	}
	return &Invocation{
		Name: fields[0],
		Args: fields[1:],
		Dir:  dir,
		line: command,
	}, nil
}

// String returns the command line exactly as the user wrote it.
func (i *Invocation) String() string {
	return i.line
}

// withEnv returns a copy of i carrying extra environment entries.
func (i *Invocation) withEnv(env ...string) *Invocation {
	if len(env) == 0 {
		return i
	}
	cp := *i
	cp.Env = append(append([]string(nil), i.Env...), env...)
	return &cp
}

// commandFunc builds the OS command; replaced in tests.
type commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

func (i *Invocation) build(ctx context.Context, newCmd commandFunc) *exec.Cmd {
	cmd := newCmd(ctx, i.Name, i.Args...)
	if i.Dir != "" {
		cmd.Dir = i.Dir
	}
	if len(i.Env) > 0 {
		base := cmd.Env
		if base == nil {
			base = os.Environ()
		}
		cmd.Env = append(base, i.Env...)
	}
	return cmd
}
