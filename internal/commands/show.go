package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/un-def/ptl/internal/layer"
)

// Show writes every selected layer, in compilation order, as a `# <name>`
// header followed by its rendered body and a blank line. The header is bold
// when colorize is set.
func Show(ctx context.Context, w io.Writer, colorize bool, opts Options) error {
	sel, err := selectInFiles(ctx, opts, layer.ValidateOptions{
		Options: layer.Options{Type: layer.InFile},
	})
	if err != nil {
		return err
	}

	header := color.New(color.Bold)
	if colorize {
		header.EnableColor()
	} else {
		header.DisableColor()
	}
	for _, f := range sel.infiles {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", header.Sprint("# "+f.OriginalName()), f.Render("")); err != nil {
			return err
		}
	}
	return nil
}
