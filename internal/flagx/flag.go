// Package flagx lets several config stages share os.Args: each stage keeps
// only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps the flags named in allowed (with their values) and drops
// everything else. Both "-f value" and "-f=value" forms are recognised; a
// following argument that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowed []string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		keep[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := keep[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := keep[arg]; !ok {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// lookupString parses a single string flag with a short and a long name.
func lookupString(short, long, usage string) string {
	var v string
	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&v, long, "", usage)
	fs.StringVar(&v, short, "", usage+" (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-" + short, "-" + long}))
	return v
}

// ConfigFileFlag returns the JSON config path given via -c or -config, or "".
func ConfigFileFlag() string {
	return lookupString("c", "config", "path to JSON config file")
}

// EnvFileFlag returns the dotenv path given via -e or -env-file, or "".
func EnvFileFlag() string {
	return lookupString("e", "env-file", "path to .env file")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
