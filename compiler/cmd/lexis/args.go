package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lexiscope/lexiscope/compiler/internal/lang"
)

/* ---------- flags anywhere ---------- */

// cmdArgs is the parsed command line of one subcommand.
type cmdArgs struct {
	values map[string]string
	bools  map[string]bool
	files  []string
}

// parseArgs accepts "--k=v", "--k v" for names in valued and "--k" for names
// in switches. Everything not starting with "-" is a positional; "--" ends
// flag parsing. Unknown flags and a bare "-" (no command reads stdin) yield
// flag.ErrHelp.
func parseArgs(argv []string, valued, switches []string) (cmdArgs, error) {
	a := cmdArgs{values: map[string]string{}, bools: map[string]bool{}}
	isValued := func(n string) bool { return contains(valued, n) }
	i := 0
	for i < len(argv) {
		s := argv[i]
		if s == "--" {
			a.files = append(a.files, argv[i+1:]...)
			break
		}
		if s == "-" {
			return a, flag.ErrHelp
		}
		if !strings.HasPrefix(s, "-") {
			a.files = append(a.files, s)
			i++
			continue
		}
		name := strings.TrimLeft(s, "-")
		if k, v, ok := strings.Cut(name, "="); ok {
			if !isValued(k) {
				return a, flag.ErrHelp
			}
			a.values[k] = v
			i++
			continue
		}
		switch {
		case isValued(name):
			if i+1 >= len(argv) {
				return a, flag.ErrHelp
			}
			a.values[name] = argv[i+1]
			i += 2
		case contains(switches, name):
			a.bools[name] = true
			i++
		default:
			return a, flag.ErrHelp
		}
	}
	return a, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// intValue returns the named flag as a non-negative int, def when absent.
func (a cmdArgs) intValue(name string, def int) (int, error) {
	s, ok := a.values[name]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("--%s: want a non-negative integer, got %q", name, s)
	}
	return n, nil
}

// loadConfig returns the language tables from path, or the defaults when
// path is empty.
func loadConfig(path string) (*lang.Config, error) {
	if path == "" {
		return lang.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := lang.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
