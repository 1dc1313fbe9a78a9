package app

import (
	"context"

	"github.com/un-def/ptl/internal/config"
	"github.com/un-def/ptl/internal/ctxlog"
	"github.com/un-def/ptl/internal/providers"
)

// toolCommandLine picks the command line for tool. The command line options
// win over the configuration; without either the registered providers are
// probed in order. Providers are always version checked, custom command
// lines are only resolved.
func (a *App) toolCommandLine(ctx context.Context, tool providers.Tool, opts Options, cfg *config.Config) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	switch {
	case opts.Tool != "":
		return providers.ProcessCommandLineString(opts.Tool)
	case opts.Provider != "":
		provider, ok := a.registry.Get(opts.Provider)
		if !ok {
			return nil, config.Errorf("unknown provider: %s", opts.Provider)
		}
		return a.checkProvider(ctx, provider, tool)
	}

	if choice := cfg.Tool(tool).Choice; choice != nil {
		if choice.Provider == "" {
			logger.Debug("Using configured tool command line.", "tool", tool, "command_line", choice.CommandLine)
			return providers.ProcessCommandLineString(choice.CommandLine)
		}
		provider, ok := a.registry.Get(choice.Provider)
		if !ok {
			return nil, config.Errorf("unknown provider: %s", choice.Provider)
		}
		return a.checkProvider(ctx, provider, tool)
	}

	argv, version, err := a.registry.FindTool(ctx, a.executor, tool)
	if err != nil {
		return nil, err
	}
	logger.Debug("Tool found.", "tool", tool, "argv", argv, "version", version)
	return argv, nil
}

func (a *App) checkProvider(ctx context.Context, provider *providers.Provider, tool providers.Tool) ([]string, error) {
	argv, err := providers.SplitCommandLine(provider.CommandLine(tool))
	if err != nil {
		return nil, err
	}
	resolved, version, err := providers.CheckToolVersion(ctx, a.executor, argv)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Provider selected.", "provider", provider.Name, "tool", tool, "version", version)
	return resolved, nil
}
