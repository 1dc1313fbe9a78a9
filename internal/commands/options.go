package commands

import (
	"context"
	"os"

	"github.com/un-def/ptl/internal/ctxlog"
	"github.com/un-def/ptl/internal/infile"
	"github.com/un-def/ptl/internal/layer"
)

// Options select the input directory and the layers a command works on.
type Options struct {
	// InputDir is the explicit input directory; empty means autodiscovery.
	InputDir string
	// Layers are layer arguments as given by the user. Nil selects every layer.
	Layers []string
	// Only drops the parents of the selected layers.
	Only bool
}

func (o Options) parents() infile.ParentPolicy {
	if o.Only {
		return infile.NoParents
	}
	return infile.AllParents
}

// selection is the resolved working set of a command.
type selection struct {
	inputDir string
	cwd      string
	infiles  []*infile.InFile
	selected map[string]struct{}
}

func (s *selection) isSelected(f *infile.InFile) bool {
	if s.selected == nil {
		return true
	}
	_, ok := s.selected[f.Stem()]
	return ok
}

func selectInFiles(ctx context.Context, opts Options, validate layer.ValidateOptions) (*selection, error) {
	logger := ctxlog.FromContext(ctx)

	inputDir, err := infile.ResolveInputDir(opts.InputDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Input directory resolved.", "dir", inputDir)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	sel := &selection{inputDir: inputDir, cwd: cwd}
	getOpts := infile.GetOptions{Parents: opts.parents()}
	if opts.Layers != nil {
		validate.InputDir = inputDir
		layers, err := layer.Validate(opts.Layers, validate)
		if err != nil {
			return nil, err
		}
		getOpts.Layers = layer.Stems(layers)
		sel.selected = make(map[string]struct{}, len(layers))
		for _, stem := range getOpts.Layers {
			sel.selected[stem] = struct{}{}
		}
	}

	sel.infiles, err = infile.GetInFiles(ctx, inputDir, getOpts)
	if err != nil {
		return nil, err
	}
	return sel, nil
}
