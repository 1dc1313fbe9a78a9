package app

import (
	"cmp"
	"context"
	"fmt"
	"strings"

	"github.com/un-def/ptl/internal/commands"
	"github.com/un-def/ptl/internal/config"
	"github.com/un-def/ptl/internal/ctxlog"
)

// Run executes the command described by opts. A returned error that is not
// an options error has already been logged and is a *ReportedError.
func (a *App) Run(ctx context.Context, opts Options) (err error) {
	if err := opts.Validate(); err != nil {
		return err
	}

	logger := NewLogger(opts.Verbosity, opts.LogFormat, a.stderr)
	ctx = ctxlog.WithLogger(ctx, logger)
	defer func() {
		if err != nil {
			ctxlog.FromContext(ctx).Error(Describe(err))
			err = &ReportedError{Err: err}
		}
	}()
	logger.Debug("App.Run method started.", "command", opts.Command)

	cfg, err := config.New(ctx, config.Options{
		File:      opts.ConfigFile,
		NoConfig:  opts.NoConfig,
		WorkDir:   a.workDir,
		LookupEnv: a.lookupEnv,
		Loader:    a.loader,
	})
	if err != nil {
		return err
	}

	verbosity := opts.Verbosity
	if verbosity == 0 && cfg.Verbosity != 0 {
		verbosity = cfg.Verbosity
		logger = NewLogger(verbosity, opts.LogFormat, a.stderr)
		ctx = ctxlog.WithLogger(ctx, logger)
	}
	logger.Debug("Configuration resolved.", "path", cfg.Path, "directory", cfg.Directory, "verbosity", verbosity)

	cmdOpts := commands.Options{
		InputDir: cmp.Or(opts.Directory, cfg.Directory),
		Layers:   opts.Layers,
		Only:     opts.Only,
	}

	tool, ok := opts.Command.tool()
	if !ok {
		return commands.Show(ctx, a.stdout, a.colorize, cmdOpts)
	}

	commandLine, err := a.toolCommandLine(ctx, tool, opts, cfg)
	if err != nil {
		return err
	}
	commandLine = append(commandLine, verbosityArgs(verbosity)...)
	if opts.ToolArgs != nil {
		commandLine = append(commandLine, opts.ToolArgs...)
	} else {
		commandLine = append(commandLine, cfg.Tool(tool).Options...)
	}
	logger.Debug("Tool command line assembled.", "argv", commandLine)

	switch opts.Command {
	case CompileCommand:
		err = commands.Compile(ctx, a.executor, commandLine, cmdOpts)
	case SyncCommand:
		err = commands.Sync(ctx, a.executor, commandLine, cmdOpts)
	default:
		panic(fmt.Sprintf("app: unhandled command %q", opts.Command))
	}
	if err != nil {
		return err
	}
	logger.Debug("App.Run method finished.")
	return nil
}

// verbosityArgs forwards the verbosity counter to the tool as -v, -vv, -q...
func verbosityArgs(verbosity int) []string {
	flag := "v"
	if verbosity < 0 {
		flag, verbosity = "q", -verbosity
	}
	if verbosity == 0 {
		return nil
	}
	return []string{"-" + strings.Repeat(flag, verbosity)}
}
