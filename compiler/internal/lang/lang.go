// Package lang holds the word and punctuation tables that drive every stage
// of the analyzer. Tables are built once and never mutated afterwards, so a
// *Config can be shared by any number of concurrent analyses.
package lang

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

//go:embed lang.json
var langJSON []byte

// Set is a read-only set of strings. The zero Set is empty.
type Set struct {
	m map[string]struct{}
}

// NewSet builds a Set from words. Later changes to words do not affect it.
func NewSet(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return Set{m: m}
}

func (s Set) Has(w string) bool {
	_, ok := s.m[w]
	return ok
}

func (s Set) Len() int { return len(s.m) }

// Sorted returns the members in lexical order as a fresh slice.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for w := range s.m {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Config enumerates the reserved words, operators, symbols and built-in
// names recognised by the analyzer. A Config has no mutators; Default and
// Load are the only ways to build one.
type Config struct {
	Keywords   Set
	TwoCharOps Set
	OneCharOps Set
	Symbols    Set
	Exempt     Set // names treated as always declared
}

// file is the on-disk JSON shape of a Config.
type file struct {
	Keywords   []string `json:"keywords"`
	TwoCharOps []string `json:"two_char_ops"`
	OneCharOps []string `json:"one_char_ops"`
	Symbols    []string `json:"symbols"`
	Exempt     []string `json:"exempt"`
}

var (
	defOnce sync.Once
	def     *Config
	defErr  error
)

// Default returns the built-in configuration. It panics only if the embedded
// table is corrupt, which is a build defect.
func Default() *Config {
	defOnce.Do(func() {
		var f file
		if defErr = json.Unmarshal(langJSON, &f); defErr != nil {
			return
		}
		def = f.config(nil)
	})
	if defErr != nil {
		panic(fmt.Sprintf("lang: embedded lang.json: %v", defErr))
	}
	return def
}

// Load reads a JSON configuration from r. Sections absent from the input
// keep their default contents.
func Load(r io.Reader) (*Config, error) {
	var f file
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode language config: %w", err)
	}
	for _, op := range f.TwoCharOps {
		if len([]rune(op)) != 2 {
			return nil, fmt.Errorf("two_char_ops: %q is not two characters", op)
		}
	}
	for _, op := range append(append([]string{}, f.OneCharOps...), f.Symbols...) {
		if len([]rune(op)) != 1 {
			return nil, fmt.Errorf("one_char_ops/symbols: %q is not one character", op)
		}
	}
	return f.config(Default()), nil
}

func (f file) config(base *Config) *Config {
	pick := func(words []string, fallback func(*Config) Set) Set {
		if words == nil && base != nil {
			return fallback(base)
		}
		return NewSet(words...)
	}
	return &Config{
		Keywords:   pick(f.Keywords, func(c *Config) Set { return c.Keywords }),
		TwoCharOps: pick(f.TwoCharOps, func(c *Config) Set { return c.TwoCharOps }),
		OneCharOps: pick(f.OneCharOps, func(c *Config) Set { return c.OneCharOps }),
		Symbols:    pick(f.Symbols, func(c *Config) Set { return c.Symbols }),
		Exempt:     pick(f.Exempt, func(c *Config) Set { return c.Exempt }),
	}
}
