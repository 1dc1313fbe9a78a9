package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const passthroughAnnotation = "ptl/passthrough"

// splitArgs makes tool arguments explicit for commands that accept them:
// the first flag the command does not know and everything after it are
// moved behind a `--` separator, so cobra hands them over as positional
// arguments after ArgsLenAtDash.
func splitArgs(root *cobra.Command, args []string) []string {
	if len(args) == 0 {
		return []string{}
	}
	var sub *cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Name() == args[0] || slices.Contains(cmd.Aliases, args[0]) {
			sub = cmd
			break
		}
	}
	if sub == nil || sub.Annotations[passthroughAnnotation] == "" {
		return args
	}
	sub.InitDefaultHelpFlag()

	rest := args[1:]
	i := firstForeignArg(sub.Flags(), rest)
	if i == len(rest) || rest[i] == "--" {
		return args
	}
	return slices.Concat(args[:1], rest[:i], []string{"--"}, rest[i:])
}

// firstForeignArg returns the index of the first `--` or unknown flag in
// args, or len(args).
func firstForeignArg(flags *pflag.FlagSet, args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return i
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			continue
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			flag := flags.Lookup(name)
			if flag == nil {
				return i
			}
			if !hasValue && takesValue(flag) {
				i++
			}
		default:
			shorthands := arg[1:]
			for j, c := range shorthands {
				flag := flags.ShorthandLookup(string(c))
				if flag == nil {
					return i
				}
				if takesValue(flag) {
					if j == len(shorthands)-1 {
						i++
					}
					break
				}
			}
		}
	}
	return len(args)
}

func takesValue(flag *pflag.Flag) bool {
	return flag.NoOptDefVal == ""
}
