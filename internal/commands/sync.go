package commands

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/un-def/ptl/internal/ctxlog"
	"github.com/un-def/ptl/internal/executor"
	"github.com/un-def/ptl/internal/fsutil"
	"github.com/un-def/ptl/internal/layer"
)

// Sync hands the lock files of the selected layers, in compilation order, to
// the sync tool in a single call. Every lock file must exist.
func Sync(ctx context.Context, exe executor.Executor, commandLine []string, opts Options) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Syncing.", "command_line", commandLine)

	sel, err := selectInFiles(ctx, opts, layer.ValidateOptions{
		Options: layer.Options{Type: layer.Lock},
	})
	if err != nil {
		return err
	}

	var locks, missing []string
	for _, f := range sel.infiles {
		path := filepath.Join(sel.inputDir, f.OutputName())
		if state, _ := fsutil.StatFile(path); state != fsutil.Missing {
			locks = append(locks, fsutil.TryRelativeTo(path, sel.cwd))
		} else {
			missing = append(missing, f.OutputName())
		}
	}
	if len(missing) > 0 {
		return &SyncError{Missing: missing}
	}

	logger.Debug("Syncing lock files.", "files", locks)
	if err := exe.Run(ctx, slices.Concat(commandLine, locks)); err != nil {
		return &SyncError{Err: err}
	}
	return nil
}
