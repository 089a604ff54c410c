package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/exec"
)

// runCmd runs a single command line
func runCmd(a *app) *cobra.Command {
	var (
		dir       string
		noDisplay bool
		noSpinner bool
		envFile   string
		confirm   bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command...>",
		Short: "Run a command with live output",
		Long: `Runs a command, relaying its output live on a single line.

The command line is split on whitespace; quotes are not interpreted.

Examples:
  wren run -- go test ./...
  wren run --dir ./service -- make build
  wren run --no-display -- go vet ./...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir != "" {
				a.cfg.Dir = dir
			}
			if envFile != "" {
				a.cfg.EnvFile = envFile
			}
			if noDisplay {
				a.cfg.Display = false
			}
			if noSpinner {
				a.cfg.Spinner = false
			}

			line := strings.Join(args, " ")
			inv, err := exec.Parse(line, a.cfg.Dir)
			if err != nil {
				return err
			}

			if confirm && !a.prompter(cmd).Confirm(fmt.Sprintf("Run '%s'?", inv), true) {
				a.printer.Info("Aborted")
				return nil
			}

			executor, err := a.executor(cmd)
			if err != nil {
				return err
			}

			session, release := a.session()
			defer release()

			res, err := executor.RunChecked(cmd.Context(), inv, session)
			if res != nil && !a.cfg.Display {
				a.printer.Verbose(fmt.Sprintf("captured %d bytes of stdout, %d bytes of stderr", len(res.Stdout), len(res.Stderr)))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Working directory for the command")
	cmd.Flags().BoolVar(&noDisplay, "no-display", false, "Capture output without relaying it live")
	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Disable the progress spinner")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Load extra environment variables from a dotenv file")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Ask before running")

	return cmd
}
