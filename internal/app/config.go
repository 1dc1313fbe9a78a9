package app

import (
	"errors"
	"fmt"

	"github.com/un-def/ptl/internal/providers"
)

// Command is a top-level operation of the application.
type Command string

const (
	CompileCommand Command = "compile"
	SyncCommand    Command = "sync"
	ShowCommand    Command = "show"
)

// tool returns the provider tool backing the command, if any.
func (c Command) tool() (providers.Tool, bool) {
	switch c {
	case CompileCommand:
		return providers.Compile, true
	case SyncCommand:
		return providers.Sync, true
	}
	return "", false
}

// Options hold everything an App run needs from the command line.
type Options struct {
	Command Command

	// Provider selects a registered provider by name, e.g. `uv`.
	Provider string
	// Tool is a custom tool command line. It is mutually exclusive with Provider.
	Tool string

	Directory  string
	Verbosity  int
	ConfigFile string
	// NoConfig is nil when not given on the command line.
	NoConfig  *bool
	LogFormat string

	// Layers are the layer arguments. Nil selects every layer.
	Layers []string
	Only   bool

	// ToolArgs are passed to the tool verbatim and replace the configured
	// tool options. Nil means none were given.
	ToolArgs []string
}

// Validate reports contradicting or unknown options.
func (o *Options) Validate() error {
	switch o.Command {
	case CompileCommand, SyncCommand:
	case ShowCommand:
		if o.Provider != "" || o.Tool != "" || o.ToolArgs != nil {
			return errors.New("show does not run a tool")
		}
	default:
		return fmt.Errorf("unknown command: %q", o.Command)
	}
	if o.Provider != "" && o.Tool != "" {
		return errors.New("provider and tool are mutually exclusive")
	}
	if o.ConfigFile != "" && o.NoConfig != nil && *o.NoConfig {
		return errors.New("config file and no-config are mutually exclusive")
	}
	switch o.LogFormat {
	case "", LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format: must be '%s' or '%s'", LogFormatText, LogFormatJSON)
	}
	return nil
}
