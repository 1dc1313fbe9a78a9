package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/un-def/ptl/internal/app"
	"github.com/un-def/ptl/internal/cli"
	"github.com/un-def/ptl/internal/hcl"
	"github.com/un-def/ptl/internal/localexecutor"
)

// main is the entrypoint for the ptl application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.CodeError)
	}
}

// run wires the concrete loader and executor into the app and executes args.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	exe := localexecutor.New(stdout, stderr)
	ptl := app.NewApp(stdout, stderr, hcl.NewLoader(), exe)
	return cli.Execute(ctx, ptl, stdout, stderr, args)
}
