// Package flagx contains small helpers for mixing flag parsing with
// positional arguments and for letting several parsers share os.Args.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns a slice of command-line arguments that only contains
// the allowed flags (and their values) specified in allowedFlags.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      --config=conf.json
//
// Every allowed flag is assumed to take a value; use SplitArgs when boolean
// flags are involved.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}
	filtered, _ := split(args, allowed, true)
	return filtered
}

// SplitArgs separates known flags (and their values) from positional
// arguments, keeping the relative order inside each group.
//
// known maps a flag as written on the command line (e.g. "-a") to whether it
// consumes a value. A boolean flag never swallows the next argument, so
// `-r Any nsfw cats` yields flags [-r] and positionals [Any nsfw cats].
// Unknown dash-prefixed arguments are returned with the flags so that the
// caller's FlagSet can reject them. Everything after "--" is positional.
func SplitArgs(args []string, known map[string]bool) (flags []string, positional []string) {
	return split(args, known, false)
}

func split(args []string, known map[string]bool, dropUnknown bool) ([]string, []string) {
	flags := make([]string, 0, len(args))
	positional := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			if !dropUnknown {
				positional = append(positional, args[i+1:]...)
			}
			break
		}

		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}

		name := arg
		if eq := strings.Index(arg, "="); eq >= 0 {
			name = arg[:eq]
		}
		takesValue, ok := lookup(known, name)
		if !ok {
			if !dropUnknown {
				flags = append(flags, arg)
			}
			continue
		}

		flags = append(flags, arg)
		if name != arg || !takesValue {
			continue
		}
		// value as a separate argument, unless it looks like another flag
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			flags = append(flags, args[i+1])
			i++
		}
	}

	return flags, positional
}

// lookup accepts both -name and --name spellings, like the flag package.
func lookup(known map[string]bool, name string) (bool, bool) {
	if v, ok := known[name]; ok {
		return v, true
	}
	if strings.HasPrefix(name, "--") {
		v, ok := known[name[1:]]
		return v, ok
	}
	return false, false
}

// ConfigFileFlags inspects command-line arguments and extracts the config
// file path provided via the -c or -config flags.
//
// If neither flag is present, an empty string is returned.
func ConfigFileFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file (JSON or YAML)")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
