package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/un-def/ptl/internal/config"
	"github.com/un-def/ptl/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// fileSchema lists every attribute and block a configuration file may hold.
// Attributes are kept as expressions so that their types can be checked
// with precise messages.
type fileSchema struct {
	Directory hcl.Expression `hcl:"directory,optional"`
	Verbosity hcl.Expression `hcl:"verbosity,optional"`
	Tool      hcl.Expression `hcl:"tool,optional"`
	Compile   *toolSchema    `hcl:"compile,block"`
	Sync      *toolSchema    `hcl:"sync,block"`
}

type toolSchema struct {
	Tool        hcl.Expression `hcl:"tool,optional"`
	ToolOptions hcl.Expression `hcl:"tool_options,optional"`
}

// Load parses and decodes the configuration file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, config.Errorf("%s: %s", path, diags.Error())
	}

	var root fileSchema
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, config.Errorf("%s: %s", path, diags.Error())
	}

	file := &config.File{}
	var err error
	if file.Directory, err = decodeString(root.Directory, "directory"); err != nil {
		return nil, err
	}
	if file.Verbosity, err = decodeInt(root.Verbosity, "verbosity"); err != nil {
		return nil, err
	}
	if file.Tool, err = decodeString(root.Tool, "tool"); err != nil {
		return nil, err
	}
	if file.Compile, err = decodeToolSection(root.Compile, "compile"); err != nil {
		return nil, err
	}
	if file.Sync, err = decodeToolSection(root.Sync, "sync"); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.", "path", path)
	return file, nil
}

func decodeToolSection(s *toolSchema, name string) (config.ToolSection, error) {
	var section config.ToolSection
	if s == nil {
		return section, nil
	}
	var err error
	if section.Tool, err = decodeString(s.Tool, name+".tool"); err != nil {
		return section, err
	}
	if section.ToolOptions, err = decodeCommandLine(s.ToolOptions, name+".tool_options"); err != nil {
		return section, err
	}
	return section, nil
}
