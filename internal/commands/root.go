package commands

import (
	"errors"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren"
	"github.com/simonhull/firebird-suite/wren/config"
	"github.com/simonhull/firebird-suite/wren/exec"
	"github.com/simonhull/firebird-suite/wren/input"
	"github.com/simonhull/firebird-suite/wren/logger"
	"github.com/simonhull/firebird-suite/wren/output"
	"github.com/simonhull/firebird-suite/wren/progress"
)

// configOptional marks commands that may create the file named by --config.
const configOptional = "config-optional"

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	verbose    bool
	configPath string

	cfg     *config.Config
	log     logger.Logger
	printer *output.Printer
}

// RootCmd creates and returns the root command for the Wren CLI
func RootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "wren",
		Short: "Run commands with live, single-line output",
		Long: `Wren runs external commands and relays their output live on a single
terminal line, with an optional spinner while they run.

Named tasks live in wren.yml:

  tasks:
    test:
      command: go test ./...
      description: Run tests

Examples:
  wren run -- go build ./...        # Run one command
  wren task run test                # Run a named task
  wren task add lint --command "golangci-lint run"`,
		Version:       wren.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the config file (default ./"+config.DefaultPath+")")

	cmd.AddCommand(runCmd(a))
	cmd.AddCommand(taskCmd(a))
	cmd.AddCommand(initCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.printer = output.New(cmd.OutOrStdout())
	a.printer.SetVerbose(a.verbose)

	cfg, err := config.Load(a.configPath)
	if errors.Is(err, config.ErrNotFound) && cmd.Annotations[configOptional] != "" {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.FromConfig(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	a.cfg = cfg
	a.log = log
	a.printer.Verbose("config: " + a.path())
	return nil
}

// path is the config file in use.
func (a *app) path() string {
	if a.configPath == "" {
		return config.DefaultPath
	}
	return a.configPath
}

// executor builds an executor from the loaded config.
func (a *app) executor(cmd *cobra.Command) (*exec.Executor, error) {
	env, err := a.cfg.Environment()
	if err != nil {
		return nil, err
	}
	return exec.NewExecutor(a.cfg.ExecutorOptions(cmd.OutOrStdout(), a.log, env)), nil
}

// session returns a spinner on stderr when one is wanted and stderr is a
// terminal. The returned func releases it.
func (a *app) session() (progress.Session, func()) {
	if !a.cfg.Spinner || !progress.IsTerminal(os.Stderr) {
		return nil, func() {}
	}
	spin := progress.NewSpinner(os.Stderr, progress.WithStyle(spinnerStyle))
	return spin, func() { _ = spin.Close() }
}

func (a *app) prompter(cmd *cobra.Command) *input.Prompter {
	return input.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}
