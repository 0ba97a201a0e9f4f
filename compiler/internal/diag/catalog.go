package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "C0005"
	Title string `json:"title"` // short human title e.g., "used without declaration"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format, one section per analysis stage.
type Registry struct {
	Lexer     map[string]CodeEntry `json:"lexer"`
	Structure map[string]CodeEntry `json:"structure"`
	Scope     map[string]CodeEntry `json:"scope"`
}

// Domains of the catalog.
const (
	DomainLexer     = "lexer"
	DomainStructure = "structure"
	DomainScope     = "scope"
)

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var section map[string]CodeEntry
	switch domain {
	case DomainLexer:
		section = reg.Lexer
	case DomainStructure:
		section = reg.Structure
	case DomainScope:
		section = reg.Scope
	}
	ce, ok := section[key]
	return ce, ok
}

// MustLookup returns an entry if found; otherwise a placeholder with the
// provided defaultID and title, so codes stay stable even if the JSON lacks
// the key.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}
