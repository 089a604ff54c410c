package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/firebird-suite/wren/internal/commands"
	"github.com/simonhull/firebird-suite/wren/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := commands.RootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
