// Package providers knows which external tools can compile and sync
// requirements, and how to locate and probe them.
package providers

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"

	"github.com/un-def/ptl/internal/ctxlog"
	"github.com/un-def/ptl/internal/executor"
	"github.com/un-def/ptl/internal/fsutil"
)

// Tool is an operation delegated to a provider.
type Tool string

const (
	Compile Tool = "compile"
	Sync    Tool = "sync"
)

// Tools lists every tool in a stable order.
var Tools = []Tool{Compile, Sync}

// Provider maps tools to the command lines offering them.
type Provider struct {
	Name  string
	Tools map[Tool]string
}

// CommandLine returns the provider's command line for tool.
func (p *Provider) CommandLine(tool Tool) string {
	cmd, ok := p.Tools[tool]
	if !ok {
		panic(fmt.Sprintf("providers: %s does not offer %s", p.Name, tool))
	}
	return cmd
}

var (
	PipTools = &Provider{
		Name: "pip-tools",
		Tools: map[Tool]string{
			Compile: "pip-compile",
			Sync:    "pip-sync",
		},
	}
	UV = &Provider{
		Name: "uv",
		Tools: map[Tool]string{
			Compile: "uv pip compile",
			Sync:    "uv pip sync",
		},
	}
)

// Registry holds providers in registration order, which is also the order
// FindTool tries them in.
type Registry struct {
	providers []*Provider
}

// NewRegistry returns a registry holding the given providers.
func NewRegistry(providers ...*Provider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Default is the registry of built-in providers.
var Default = NewRegistry(PipTools, UV)

// Register appends p, replacing a provider registered under the same name.
func (r *Registry) Register(p *Provider) {
	for i, existing := range r.providers {
		if existing.Name == p.Name {
			r.providers[i] = p
			return
		}
	}
	r.providers = append(r.providers, p)
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (*Provider, bool) {
	for _, p := range r.providers {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Names returns the registered provider names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name
	}
	return names
}

// Candidates returns every registered command line for tool, in order.
func (r *Registry) Candidates(tool Tool) []string {
	var candidates []string
	for _, p := range r.providers {
		if cmd, ok := p.Tools[tool]; ok {
			candidates = append(candidates, cmd)
		}
	}
	return candidates
}

// FindExecutable resolves an executable to an absolute path. Paths must
// point at an existing regular file; bare names are looked up in PATH.
func FindExecutable(name string) (string, error) {
	if fsutil.IsPath(name) {
		path, err := filepath.Abs(name)
		if err != nil {
			return "", err
		}
		state, err := fsutil.StatFile(path)
		switch {
		case err != nil:
			return "", err
		case state == fsutil.Missing:
			return "", &ExecutableNotFoundError{Message: fmt.Sprintf("%s does not exist", path)}
		case state == fsutil.NotRegularFile:
			return "", &ExecutableNotFoundError{Message: fmt.Sprintf("%s is not a file", path)}
		}
		return path, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &ExecutableNotFoundError{Message: fmt.Sprintf("%s not in PATH", name)}
	}
	return filepath.Abs(path)
}

// SplitCommandLine splits a command line using shell quoting rules.
func SplitCommandLine(commandLine string) ([]string, error) {
	argv, err := shlex.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("invalid command line %q: %w", commandLine, err)
	}
	return argv, nil
}

// ProcessCommandLine resolves the executable of argv. The returned slice is
// a copy.
func ProcessCommandLine(argv []string) ([]string, error) {
	if len(argv) == 0 {
		return nil, &ExecutableNotFoundError{Message: "empty command line"}
	}
	path, err := FindExecutable(argv[0])
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(argv))
	out = append(out, path)
	return append(out, argv[1:]...), nil
}

// ProcessCommandLineString is ProcessCommandLine for an unsplit command line.
func ProcessCommandLineString(commandLine string) ([]string, error) {
	argv, err := SplitCommandLine(commandLine)
	if err != nil {
		return nil, err
	}
	return ProcessCommandLine(argv)
}

// CheckToolVersion resolves argv and runs it with `--version`. It returns the
// resolved command line and the first line of the output.
func CheckToolVersion(ctx context.Context, exe executor.Executor, argv []string) ([]string, string, error) {
	resolved, err := ProcessCommandLine(argv)
	if err != nil {
		return nil, "", &VersionCheckError{Err: err}
	}
	out, err := exe.Output(ctx, append(resolved[:len(resolved):len(resolved)], "--version"))
	if err != nil {
		return nil, "", &VersionCheckError{Err: err}
	}
	version, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	return resolved, strings.TrimSpace(version), nil
}

// FindTool returns the first registered command line for tool that passes
// the version check.
func (r *Registry) FindTool(ctx context.Context, exe executor.Executor, tool Tool) ([]string, string, error) {
	logger := ctxlog.FromContext(ctx)
	candidates := r.Candidates(tool)
	for _, candidate := range candidates {
		argv, err := SplitCommandLine(candidate)
		if err != nil {
			return nil, "", err
		}
		resolved, version, err := CheckToolVersion(ctx, exe, argv)
		if err != nil {
			logger.Debug("Tool candidate rejected.", "candidate", candidate, "error", err)
			continue
		}
		return resolved, version, nil
	}
	return nil, "", &ToolNotFoundError{Tool: tool, Candidates: candidates}
}
