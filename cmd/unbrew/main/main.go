package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/unbrew/cmd/unbrew"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := unbrew.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !unbrew.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	stop()
	os.Exit(unbrew.ExitCode(err))
}
