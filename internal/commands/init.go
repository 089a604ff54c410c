package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/config"
)

// initCmd writes a starter config file
func initCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a wren.yml with defaults",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{configOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.path()); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.path())
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			cfg := config.Default()
			cfg.Tasks = map[string]config.TaskConfig{
				"test":  {Command: "go test ./...", Description: "Run tests"},
				"build": {Command: "go build ./...", Description: "Build all packages"},
			}
			if _, err := os.Stat(".env"); err == nil {
				cfg.EnvFile = ".env"
			}

			if err := config.Save(a.path(), cfg); err != nil {
				return err
			}

			a.printer.Success("Created " + a.path())
			a.printer.Step("Try: wren task list")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
