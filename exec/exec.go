package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/simonhull/firebird-suite/wren/logger"
	"github.com/simonhull/firebird-suite/wren/output"
	"github.com/simonhull/firebird-suite/wren/progress"
)

// cancelGrace is how long a cancelled run waits for the child's pipes to
// close on their own before closing them from our side.
const cancelGrace = time.Second

// Executor runs external commands, relaying their output live
type Executor struct {
	stdout      io.Writer
	env         []string
	dir         string
	display     bool
	showCommand bool
	showElapsed bool
	interval    time.Duration
	log         logger.Logger
	printer     *output.Printer

	// For mocking in tests
	commandFunc commandFunc
}

// Options configures command execution
type Options struct {
	Stdout          io.Writer     // Terminal sink for live output and messages
	Env             []string      // Additional environment variables
	Dir             string        // Working directory
	Display         bool          // Relay live output while the command runs
	ShowCommand     bool          // Print ">> command" before running
	ShowElapsed     bool          // Print elapsed time after a successful checked run
	RefreshInterval time.Duration // Display loop wake-up interval
	Logger          logger.Logger
}

// NewExecutor creates an executor with sensible defaults
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{
			Stdout:      os.Stdout,
			Display:     true,
			ShowCommand: true,
			ShowElapsed: true,
		}
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Executor{
		stdout:      stdout,
		env:         opts.Env,
		dir:         opts.Dir,
		display:     opts.Display,
		showCommand: opts.ShowCommand,
		showElapsed: opts.ShowElapsed,
		interval:    opts.RefreshInterval,
		log:         log,
		printer:     output.New(stdout),
		commandFunc: exec.CommandContext,
	}
}

// Run parses command and runs it in the executor's working directory.
func (e *Executor) Run(ctx context.Context, command string) (*Result, error) {
	return e.RunIn(ctx, e.dir, command)
}

// RunIn parses command and runs it in dir.
func (e *Executor) RunIn(ctx context.Context, dir, command string) (*Result, error) {
	inv, err := Parse(command, dir)
	if err != nil {
		return nil, err
	}
	return e.Execute(ctx, inv, nil)
}

// RunWithProgress runs command while driving session.
func (e *Executor) RunWithProgress(ctx context.Context, session progress.Session, command string) (*Result, error) {
	inv, err := Parse(command, e.dir)
	if err != nil {
		return nil, err
	}
	return e.Execute(ctx, inv, session)
}

// RunChecked executes inv and turns a non-zero exit into a KindExit error.
// On success the elapsed time is printed when ShowElapsed is set.
func (e *Executor) RunChecked(ctx context.Context, inv *Invocation, session progress.Session) (*Result, error) {
	res, err := e.Execute(ctx, inv, session)
	if err != nil {
		return res, err
	}
	if !res.Success() {
		return res, newError(KindExit, inv.String(), fmt.Errorf("exit status %d", res.ExitCode))
	}
	if e.showElapsed {
		e.printer.Elapsed(res.Duration)
	}
	return res, nil
}

// Execute spawns inv, relays its output when display is enabled, and waits
// for it to exit. A non-zero exit status is not an error; check
// Result.Success. session may be nil.
func (e *Executor) Execute(ctx context.Context, inv *Invocation, session progress.Session) (res *Result, err error) {
	line := inv.String()
	log := e.log.WithFields(
		logger.F("run_id", uuid.NewString()),
		logger.F("command", line),
	)

	if e.showCommand {
		e.printer.Command(line)
	}

	if session != nil {
		if err := session.SendStatusMessage(line); err != nil {
			return nil, newError(KindChannel, line, err)
		}
		if err := session.SendDoneMessage(line); err != nil {
			return nil, newError(KindChannel, line, err)
		}
	}

	cmd := inv.withEnv(e.env...).build(ctx, e.commandFunc)

	var (
		stdoutBuf, stderrBuf bytes.Buffer
		stdoutR, stderrR     *streamReader
		pipes                []io.Closer
	)
	if e.display {
		outPipe, err := cmd.StdoutPipe()
		if err != nil {
			return nil, spawnError(line, inv.Name, err)
		}
		errPipe, err := cmd.StderrPipe()
		if err != nil {
			return nil, spawnError(line, inv.Name, err)
		}
		stdoutR = newStreamReader("stdout", outPipe, &Mailbox{}, log)
		stderrR = newStreamReader("stderr", errPipe, &Mailbox{}, log)
		pipes = []io.Closer{outPipe, errPipe}
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
		// Wait copies the child's output; bound it if a grandchild keeps
		// the pipes open after cancellation.
		cmd.WaitDelay = cancelGrace
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		log.Debug("spawn failed", logger.F("error", err))
		return nil, spawnError(line, inv.Name, err)
	}
	log.Debug("started", logger.F("pid", cmd.Process.Pid), logger.F("dir", cmd.Dir))

	if session != nil {
		if err := session.Activate(); err != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			return nil, newError(KindChannel, line, err)
		}
		defer func() {
			if derr := session.Deactivate(); derr != nil && err == nil {
				err = newError(KindChannel, line, derr)
			}
		}()
	}

	if e.display {
		stop := closeOnCancel(ctx, pipes)
		go stdoutR.run()
		go stderrR.run()
		newMultiplexer(e.stdout, stdoutR, stderrR, e.interval, log).run()
		close(stop)
	}

	waitErr := cmd.Wait()

	res = &Result{
		Command:  line,
		ExitCode: exitCode(cmd),
		Duration: time.Since(start),
	}
	if e.display {
		res.Stdout, res.Stderr = stdoutR.Bytes(), stderrR.Bytes()
	} else {
		res.Stdout, res.Stderr = stdoutBuf.Bytes(), stderrBuf.Bytes()
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		switch {
		case ctx.Err() != nil:
			return res, newError(KindWait, line, fmt.Errorf("cancelled: %w", ctx.Err()))
		case errors.As(waitErr, &exitErr):
			// reported through res.ExitCode
		default:
			return res, newError(KindWait, line, waitErr)
		}
	}

	log.Debug("finished",
		logger.F("exit_code", res.ExitCode),
		logger.F("duration", res.Duration.String()),
	)
	return res, nil
}

// closeOnCancel closes the read ends of the child's pipes if ctx is
// cancelled and they are still open after cancelGrace, so a grandchild
// holding them cannot keep the readers alive. Close the returned channel
// once the readers are done.
func closeOnCancel(ctx context.Context, pipes []io.Closer) chan<- struct{} {
	stop := make(chan struct{})
	if ctx.Done() == nil {
		return stop
	}
	go func() {
		select {
		case <-stop:
			return
		case <-ctx.Done():
		}
		select {
		case <-stop:
		case <-time.After(cancelGrace):
			for _, p := range pipes {
				_ = p.Close()
			}
		}
	}()
	return stop
}

func exitCode(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}
