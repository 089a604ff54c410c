package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/config"
	"github.com/simonhull/firebird-suite/wren/exec"
)

var taskNameStyle = lipgloss.NewStyle().Bold(true)

// taskCmd creates the task command with subcommands
func taskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Named task commands",
		Long: `Manage and run the tasks declared in wren.yml.

Examples:
  wren task list                 # List tasks
  wren task run test build       # Run tasks in order
  wren task add fmt --command "gofmt -l ."`,
	}

	cmd.AddCommand(taskListCmd(a))
	cmd.AddCommand(taskRunCmd(a))
	cmd.AddCommand(taskAddCmd(a))

	return cmd
}

// taskListCmd lists the configured tasks
func taskListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := a.cfg.TaskRegistry()
			if err != nil {
				return err
			}

			if registry.Size() == 0 {
				a.printer.Info("No tasks defined in " + a.path())
				return nil
			}

			names := registry.List()
			descriptions := registry.ListWithDescriptions()

			width := 0
			for _, name := range names {
				width = max(width, len(name))
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				desc := descriptions[name]
				if desc == "" {
					task, _ := registry.Get(name)
					desc = task.Command
				}
				padded := name + strings.Repeat(" ", width-len(name))
				fmt.Fprintf(out, "  %s  %s\n", taskNameStyle.Render(padded), desc)
			}
			return nil
		},
	}
}

// taskRunCmd runs tasks in order, stopping at the first failure
func taskRunCmd(a *app) *cobra.Command {
	var noSpinner bool

	cmd := &cobra.Command{
		Use:   "run <name>...",
		Short: "Run tasks",
		Long:  "Runs the named tasks in order and stops at the first failure.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noSpinner {
				a.cfg.Spinner = false
			}

			registry, err := a.cfg.TaskRegistry()
			if err != nil {
				return err
			}

			executor, err := a.executor(cmd)
			if err != nil {
				return err
			}

			session, release := a.session()
			defer release()

			results, err := registry.ExecuteAll(cmd.Context(), args, executor, session)
			if err != nil {
				return err
			}

			if len(results) > 1 {
				a.printer.Success(fmt.Sprintf("%d tasks completed", len(results)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Disable the progress spinner")

	return cmd
}

// taskAddCmd declares a task in the config file
func taskAddCmd(a *app) *cobra.Command {
	var (
		command     string
		dir         string
		description string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task to the config file",
		Long: `Adds a named task to the config file, prompting for the command
when --command is not given.`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{configOptional: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config keys are case-insensitive when loaded.
			name := strings.ToLower(strings.TrimSpace(args[0]))
			if name == "" {
				return fmt.Errorf("task name cannot be empty")
			}

			// Edit the file as written, without environment overrides.
			cfg, err := config.LoadFile(a.path())
			if err != nil {
				return err
			}

			if _, exists := cfg.Tasks[name]; exists && !force {
				return fmt.Errorf("task '%s' already exists (use --force to replace it)", name)
			}

			if command == "" {
				command = a.prompter(cmd).Prompt("Command", "")
			}
			if _, err := exec.Parse(command, dir); err != nil {
				return err
			}

			if cfg.Tasks == nil {
				cfg.Tasks = make(map[string]config.TaskConfig)
			}
			cfg.Tasks[name] = config.TaskConfig{
				Command:     strings.Join(strings.Fields(command), " "),
				Dir:         dir,
				Description: description,
			}

			if err := config.Save(a.path(), cfg); err != nil {
				return err
			}

			a.printer.Success(fmt.Sprintf("Added task '%s' to %s", name, a.path()))
			return nil
		},
	}

	cmd.Flags().StringVar(&command, "command", "", "Command line to run")
	cmd.Flags().StringVar(&dir, "dir", "", "Working directory for the task")
	cmd.Flags().StringVar(&description, "description", "", "Short description shown by 'task list'")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing task")

	return cmd
}
