// Package flagargs prepares command line arguments for pflag.
package flagargs

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Normalize makes negative numbers among the positional arguments reach
// the program as positional arguments instead of being taken for
// shorthand flags (pflag rejects "-1" as "unknown shorthand flag").
//
// If there are such numbers, the result is the flags (with their values)
// followed by "--" and then all positional arguments in their original
// order. Otherwise args is returned as is.
func Normalize(flags *pflag.FlagSet, args []string) []string {
	var (
		flagArgs    []string
		positional  []string
		hasNegative bool
	)
	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]
		switch {
		case arg == "--":
			positional = append(positional, args[idx+1:]...)
			idx = len(args)
		case IsNegativeNumber(flags, arg):
			positional = append(positional, arg)
			hasNegative = true
		case strings.HasPrefix(arg, "--"):
			flagArgs = append(flagArgs, arg)
			if strings.Contains(arg, "=") {
				continue
			}
			f := flags.Lookup(arg[2:])
			if f != nil && f.NoOptDefVal == "" && idx+1 < len(args) {
				idx++
				flagArgs = append(flagArgs, args[idx])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagArgs = append(flagArgs, arg)
			if shorthandNeedsNextArg(flags, arg) && idx+1 < len(args) {
				idx++
				flagArgs = append(flagArgs, args[idx])
			}
		default:
			positional = append(positional, arg)
		}
	}
	if !hasNegative {
		return args
	}

	result := make([]string, 0, len(flagArgs)+1+len(positional))
	result = append(result, flagArgs...)
	result = append(result, "--")
	result = append(result, positional...)
	return result
}

// IsNegativeNumber returns true if arg is a negative number rather than a
// group of shorthand flags known to the flag set.
func IsNegativeNumber(flags *pflag.FlagSet, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	if flags.ShorthandLookup(arg[1:2]) != nil {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// shorthandNeedsNextArg reports whether the last shorthand flag of the
// group "-abc" takes its value from the next argument.
func shorthandNeedsNextArg(flags *pflag.FlagSet, arg string) bool {
	for idx := 1; idx < len(arg); idx++ {
		f := flags.ShorthandLookup(arg[idx : idx+1])
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			// the rest of the group, if any, is the value
			return idx == len(arg)-1
		}
	}
	return false
}
