package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/repolist/cmd/repolist"
	"github.com/arthur-debert/repolist/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := repolist.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print the error in red
		_ = ui.NewConsole(os.Stderr).Error(err)
		stop()
		os.Exit(1)
	}
}
