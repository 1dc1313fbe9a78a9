package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/un-def/ptl/internal/app"
)

// commandFlags are the flags shared by every command.
type commandFlags struct {
	directory  string
	verbose    int
	quiet      int
	configFile string
	noConfig   bool
	only       bool
	logFormat  string
}

func (f *commandFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.directory, "directory", "d", "", "input directory")
	flags.CountVarP(&f.verbose, "verbose", "v", "get more output")
	flags.CountVarP(&f.quiet, "quiet", "q", "get less output")
	flags.StringVarP(&f.configFile, "config", "c", "", "configuration file")
	flags.BoolVar(&f.noConfig, "no-config", false, "do not read any configuration file")
	flags.BoolVar(&f.only, "only", false, "do not include parent layers of the given layers")
	flags.StringVar(&f.logFormat, "log-format", app.LogFormatText, "log output format: text or json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkFlagsMutuallyExclusive("config", "no-config")
}

// options fills the fields shared by every command.
func (f *commandFlags) options(cmd *cobra.Command, command app.Command, layers []string) app.Options {
	opts := app.Options{
		Command:    command,
		Directory:  f.directory,
		Verbosity:  f.verbose - f.quiet,
		ConfigFile: f.configFile,
		LogFormat:  f.logFormat,
		Only:       f.only,
	}
	if cmd.Flags().Changed("no-config") {
		noConfig := f.noConfig
		opts.NoConfig = &noConfig
	}
	if len(layers) > 0 {
		opts.Layers = layers
	}
	return opts
}

func newToolCommand(runner Runner, name, short string) *cobra.Command {
	var (
		flags    commandFlags
		pipTools bool
		uv       bool
		tool     string
	)
	cmd := &cobra.Command{
		Use:         name + " [LAYER...] [-- TOOL_ARGS...]",
		Short:       short,
		Annotations: map[string]string{passthroughAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			layers, toolArgs := args, []string(nil)
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				layers, toolArgs = args[:dash], append([]string{}, args[dash:]...)
			}
			opts := flags.options(cmd, app.Command(name), layers)
			switch {
			case pipTools:
				opts.Provider = "pip-tools"
			case uv:
				opts.Provider = "uv"
			}
			opts.Tool = tool
			opts.ToolArgs = toolArgs
			return run(cmd, runner, opts)
		},
	}
	cmd.Flags().BoolVar(&pipTools, "pip-tools", false, fmt.Sprintf("use `pip-%s`", name))
	cmd.Flags().BoolVar(&uv, "uv", false, fmt.Sprintf("use `uv pip %s`", name))
	cmd.Flags().StringVar(&tool, "tool", "", "use custom tool")
	cmd.MarkFlagsMutuallyExclusive("pip-tools", "uv", "tool")
	flags.register(cmd)
	return cmd
}

func newShowCommand(runner Runner) *cobra.Command {
	var flags commandFlags
	cmd := &cobra.Command{
		Use:   "show [LAYER...]",
		Short: "show requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				return fmt.Errorf("unrecognized arguments: %s", strings.Join(args[dash:], " "))
			}
			return run(cmd, runner, flags.options(cmd, app.ShowCommand, args))
		},
	}
	flags.register(cmd)
	return cmd
}

// run executes opts. Invalid options are usage errors.
func run(cmd *cobra.Command, runner Runner, opts app.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	err := runner.Run(cmd.Context(), opts)
	var reported *app.ReportedError
	if err != nil && !errors.As(err, &reported) {
		return &ExitError{Code: CodeError, Message: err.Error()}
	}
	return err
}
