package commands

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/un-def/ptl/internal/ctxlog"
	"github.com/un-def/ptl/internal/executor"
	"github.com/un-def/ptl/internal/fsutil"
	"github.com/un-def/ptl/internal/infile"
	"github.com/un-def/ptl/internal/layer"
)

// Compile compiles every selected layer, parents first. For each layer the
// generated input file, with all references forced to constraints, exists
// only while the tool runs.
//
// With opts.Only set, every parent outside the selection must already have
// its lock file.
func Compile(ctx context.Context, exe executor.Executor, commandLine []string, opts Options) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compiling.", "command_line", commandLine)

	sel, err := selectInFiles(ctx, opts, layer.ValidateOptions{
		Options:   layer.Options{Type: layer.InFile, CheckExists: true},
		CheckType: true,
	})
	if err != nil {
		return err
	}

	if opts.Only && opts.Layers != nil {
		if missing := missingParentLocks(sel); len(missing) > 0 {
			return &CompileError{Missing: missing}
		}
	}

	for _, f := range sel.infiles {
		logger.Info("compiling " + f.OriginalName())
		layerCtx, _ := ctxlog.With(ctx, "layer", f.Stem())
		output := fsutil.TryRelativeTo(filepath.Join(sel.inputDir, f.OutputName()), sel.cwd)
		err := f.WithTemporaryFile(sel.inputDir, infile.Constraints, func(path string) error {
			argv := slices.Concat(commandLine, []string{fsutil.TryRelativeTo(path, sel.cwd), "-o", output})
			return exe.Run(layerCtx, argv)
		})
		if err != nil {
			return &CompileError{Err: err}
		}
	}
	return nil
}

// missingParentLocks lists, in traversal order and without duplicates, the
// lock files of unselected parents that are not on disk.
func missingParentLocks(sel *selection) []string {
	var missing []string
	seen := make(map[string]struct{})
	for _, f := range sel.infiles {
		for ref := range f.References(true, "") {
			parent := ref.InFile
			if sel.isSelected(parent) {
				continue
			}
			name := parent.OutputName()
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			if state, _ := fsutil.StatFile(filepath.Join(sel.inputDir, name)); state != fsutil.RegularFile {
				missing = append(missing, name)
			}
		}
	}
	return missing
}
