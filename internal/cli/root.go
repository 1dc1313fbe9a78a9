package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the `ptl` command tree on top of runner.
func NewRootCommand(runner Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ptl",
		Short:         "Layered requirements compiler on top of pip-tools and uv",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
			}
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().BoolP("version", "V", false, "show version and exit")
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(
		newToolCommand(runner, "compile", "compile requirements"),
		newToolCommand(runner, "sync", "sync requirements"),
		newShowCommand(runner),
	)
	return cmd
}
