package config

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"

	"github.com/un-def/ptl/internal/ctxlog"
	"github.com/un-def/ptl/internal/fsutil"
	"github.com/un-def/ptl/internal/providers"
)

// DotenvFile is read from the working directory when present. Its values
// rank below the process environment.
const DotenvFile = ".ptl.env"

// FileNames are the configuration file names probed in the working
// directory, in order.
var FileNames = []string{".ptl.hcl", "ptl.hcl"}

var aliasRegex = regexp.MustCompile(`^:([\w-]+):$`)

// Options are the inputs of New that come from outside the environment.
type Options struct {
	// File is an explicit configuration file path, e.g. from a flag. It
	// takes precedence over PTL_CONFIG_FILE.
	File string
	// NoConfig set from a flag takes precedence over PTL_NO_CONFIG_FILE.
	NoConfig *bool
	// WorkDir defaults to the process working directory.
	WorkDir string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv LookupFunc
	// Loader reads the configuration file. Without one no file is read.
	Loader Loader
}

// ToolChoice is a configured tool: either a registered provider selected by
// its `:name:` alias, or a custom command line.
type ToolChoice struct {
	Provider    string
	CommandLine string
}

// ParseToolChoice interprets a tool setting.
func ParseToolChoice(value string) *ToolChoice {
	if m := aliasRegex.FindStringSubmatch(strings.TrimSpace(value)); m != nil {
		return &ToolChoice{Provider: m[1]}
	}
	return &ToolChoice{CommandLine: value}
}

// ToolConfig is the effective configuration of one tool.
type ToolConfig struct {
	// Choice is nil when the tool should be autodetected.
	Choice *ToolChoice
	// Options is nil when unset.
	Options []string
}

// Config holds the effective settings.
type Config struct {
	// Path is the configuration file in use, empty if none.
	Path string
	// Directory is the absolute input directory, empty for autodiscovery.
	Directory string
	Verbosity int

	tools map[providers.Tool]ToolConfig
}

// Tool returns the configuration of tool.
func (c *Config) Tool(tool providers.Tool) ToolConfig {
	return c.tools[tool]
}

// New resolves the effective configuration. Precedence, highest first: the
// process environment, the dotenv file, the configuration file, defaults.
// Command-specific file settings outrank the global PTL_TOOL variable.
func New(ctx context.Context, opts Options) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		workDir = wd
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := environ{lookups: []LookupFunc{lookup}}
	dotenv, err := readDotenv(filepath.Join(workDir, DotenvFile))
	if err != nil {
		return nil, err
	}
	if dotenv != nil {
		logger.Debug("Dotenv file loaded.", "path", DotenvFile, "count", len(dotenv))
		env.lookups = append(env.lookups, func(key string) (string, bool) {
			value, ok := dotenv[key]
			return value, ok
		})
	}

	path, err := configPath(workDir, opts, env)
	if err != nil {
		return nil, err
	}
	file := &File{}
	if path != "" && opts.Loader != nil {
		logger.Debug("Loading configuration file.", "path", path)
		if file, err = opts.Loader.Load(ctx, path); err != nil {
			return nil, err
		}
	} else {
		path = ""
	}

	cfg := &Config{Path: path, tools: make(map[providers.Tool]ToolConfig, len(providers.Tools))}

	directory := env.getString("DIRECTORY")
	if directory == nil {
		directory = file.Directory
	}
	if directory != nil && *directory != "" {
		cfg.Directory = *directory
		if !filepath.IsAbs(cfg.Directory) {
			cfg.Directory = filepath.Join(workDir, cfg.Directory)
		}
	}

	verbosity, err := env.getInt("VERBOSITY")
	if err != nil {
		return nil, err
	}
	if verbosity == nil {
		verbosity = file.Verbosity
	}
	if verbosity != nil {
		cfg.Verbosity = *verbosity
	}

	for _, tool := range providers.Tools {
		tc, err := resolveTool(tool, env, file)
		if err != nil {
			return nil, err
		}
		cfg.tools[tool] = tc
	}
	return cfg, nil
}

func resolveTool(tool providers.Tool, env environ, file *File) (ToolConfig, error) {
	name := strings.ToUpper(string(tool))
	section := file.Compile
	if tool == providers.Sync {
		section = file.Sync
	}

	var tc ToolConfig
	for _, value := range []*string{env.getString(name + "_TOOL"), section.Tool, env.getString("TOOL"), file.Tool} {
		if value != nil {
			tc.Choice = ParseToolChoice(*value)
			break
		}
	}

	options, err := env.getCommandLine(name + "_TOOL_OPTIONS")
	if err != nil {
		return ToolConfig{}, err
	}
	if options == nil {
		options = section.ToolOptions
	}
	tc.Options = options
	return tc, nil
}

// configPath returns the configuration file to load, or "" for none.
func configPath(workDir string, opts Options, env environ) (string, error) {
	noConfig := opts.NoConfig
	if noConfig == nil {
		var err error
		if noConfig, err = env.getBool("NO_CONFIG_FILE"); err != nil {
			return "", err
		}
	}
	if noConfig != nil && *noConfig {
		return "", nil
	}

	explicit := opts.File
	if explicit == "" {
		if value := env.getString("CONFIG_FILE"); value != nil {
			explicit = *value
		}
	}
	if explicit == "" {
		return FindConfig(workDir), nil
	}

	path := explicit
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	state, err := fsutil.StatFile(path)
	switch {
	case err != nil:
		return "", Errorf("%s: %v", path, err)
	case state == fsutil.Missing:
		return "", Errorf("%s does not exist", path)
	case state == fsutil.NotRegularFile:
		return "", Errorf("%s is not a file", path)
	}
	return path, nil
}

// FindConfig returns the first regular file among FileNames inside dir, or
// "" when there is none. Directories with those names are skipped.
func FindConfig(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if state, _ := fsutil.StatFile(path); state == fsutil.RegularFile {
			return path
		}
	}
	return ""
}

func readDotenv(path string) (map[string]string, error) {
	if state, _ := fsutil.StatFile(path); state != fsutil.RegularFile {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, Errorf("%s: %v", path, err)
	}
	return values, nil
}
