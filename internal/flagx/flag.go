// Package flagx holds small helpers on top of the standard flag package:
// picking out the flags one loader understands from a shared argument list,
// resolving the JSON config path, and a repeatable string flag.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args made of the flags in allowedFlags
// together with their values.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -r 00:ff
//  2. Flag and value combined with '=':      -r=00:ff
//
// Either form may also be written with a double dash (--r 00:ff); it
// matches the single-dash name. A separate value is only taken when it does
// not itself start with '-'; values that do (a candidate password like
// "-secret") must use the '=' form. Positional arguments such as the
// subcommand name are dropped.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[flagName(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[flagName(name)]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[flagName(arg)]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// flagName folds "--x" into "-x". Anything else is returned unchanged.
func flagName(arg string) string {
	if strings.HasPrefix(arg, "--") && len(arg) > 2 {
		return arg[1:]
	}
	return arg
}

// JsonConfigFlags extracts the config file path given via -c or -config
// from args (without the program name). Other arguments are ignored. An
// empty string means no JSON config was requested.
func JsonConfigFlags(args []string) string {
	var config string

	filtered := FilterArgs(args, []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(filtered)

	return config
}

// StringList is a flag.Value collecting every occurrence of a repeated
// flag. The first Set replaces whatever the target held before, so
// defaults are dropped once the flag is given at all.
type StringList struct {
	target  *[]string
	touched bool
}

func NewStringList(target *[]string) *StringList {
	return &StringList{target: target}
}

func (s *StringList) String() string {
	if s == nil || s.target == nil {
		return ""
	}
	return strings.Join(*s.target, ",")
}

func (s *StringList) Set(v string) error {
	if !s.touched {
		*s.target = nil
		s.touched = true
	}
	*s.target = append(*s.target, v)
	return nil
}
