// Package main is the entry point for the awscmds CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/thoreinstein/awscmds/cmd/awscmds/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := commands.Execute(ctx)
	stop()
	os.Exit(code)
}
