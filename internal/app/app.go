package app

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/un-def/ptl/internal/config"
	"github.com/un-def/ptl/internal/executor"
	"github.com/un-def/ptl/internal/providers"
)

// App encapsulates the application's dependencies.
type App struct {
	stdout   io.Writer
	stderr   io.Writer
	loader   config.Loader
	executor executor.Executor
	registry *providers.Registry

	// The fields below are overridden in tests.
	colorize  bool
	workDir   string
	lookupEnv config.LookupFunc
}

// NewApp is the constructor for the main application. Command output goes
// to stdout, logs go to stderr.
func NewApp(stdout, stderr io.Writer, loader config.Loader, exe executor.Executor) *App {
	return &App{
		stdout:    stdout,
		stderr:    stderr,
		loader:    loader,
		executor:  exe,
		registry:  providers.Default,
		colorize:  !color.NoColor,
		lookupEnv: os.LookupEnv,
	}
}
