package infile

import (
	"context"

	"github.com/un-def/ptl/internal/ctxlog"
)

// GetOptions narrows the set of layers returned by GetInFiles.
type GetOptions struct {
	// Layers lists the stems of selected layers. Nil selects every layer.
	Layers []string
	// Parents decides which referenced layers are kept with the selected ones.
	Parents ParentPolicy
}

// GetInFiles parses dir, applies the layer selection and returns the layers
// in compilation order. Every selected stem must name a parsed layer.
func GetInFiles(ctx context.Context, dir string, opts GetOptions) ([]*InFile, error) {
	logger := ctxlog.FromContext(ctx)

	infiles, err := ReadInFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(infiles) == 0 {
		return nil, &InputDirectoryError{Message: "no *.in files"}
	}
	logger.Debug("Input files parsed.", "dir", dir, "count", len(infiles))

	if opts.Layers != nil {
		known := make(map[string]struct{}, len(infiles))
		for _, f := range infiles {
			known[f.stem] = struct{}{}
		}
		for _, stem := range opts.Layers {
			if _, ok := known[stem]; !ok {
				return nil, &UnknownLayerError{Stem: stem}
			}
		}
		infiles = FilterInFiles(infiles, opts.Layers, opts.Parents)
		logger.Debug("Input files filtered.", "layers", opts.Layers, "parents", opts.Parents.String(), "count", len(infiles))
	} else if opts.Parents == NoParents {
		logger.Warn("include parent layers = false ignored when no layers passed")
	}

	return SortInFiles(infiles)
}
