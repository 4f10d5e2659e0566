package precedence

import (
	"fmt"
	"sync"

	"github.com/cnf/structhash"
	"github.com/npillmayer/weakprec/grammar"
)

// fingerprint is the hashed form of a grammar configuration.
type fingerprint struct {
	Start        string
	End          string
	Terminals    []string
	NonTerminals []string
	Productions  []rule
}

type rule struct {
	Head string
	Body []string
}

// Fingerprint returns a hash string identifying a (grammar, start, end)
// configuration. Grammars with equal productions in equal order have equal
// fingerprints.
func Fingerprint(g Grammar, start, end grammar.Symbol) (string, error) {
	if g == nil {
		return "", configError("no grammar given")
	}
	f := fingerprint{
		Start:        string(start),
		End:          string(end),
		Terminals:    symbolStrings(g.Terminals()),
		NonTerminals: symbolStrings(g.NonTerminals()),
	}
	for _, p := range g.Productions() {
		f.Productions = append(f.Productions, rule{Head: string(p.Head), Body: symbolStrings(p.Body)})
	}
	h, err := structhash.Hash(f, 1)
	if err != nil {
		return "", fmt.Errorf("cannot fingerprint grammar configuration: %w", err)
	}
	return h, nil
}

// grammarFingerprint identifies a grammar and end marker, independent of the
// start symbol. Tables carry it to be matched against parser configurations.
func grammarFingerprint(g Grammar, end grammar.Symbol) (string, error) {
	return Fingerprint(g, "", end)
}

func symbolStrings(syms []grammar.Symbol) []string {
	s := make([]string, len(syms))
	for i, sym := range syms {
		s[i] = string(sym)
	}
	return s
}

// TableCache holds shift/reduce tables, built once per grammar configuration.
// It is safe for concurrent use.
type TableCache struct {
	sync.Mutex
	tables map[string]*Table
}

// NewTableCache creates an empty table cache.
func NewTableCache() *TableCache {
	return &TableCache{tables: make(map[string]*Table)}
}

// Get returns the table for a configuration, building it if necessary.
func (c *TableCache) Get(g Grammar, start, end grammar.Symbol) (*Table, error) {
	if err := checkConfig(g, start, end); err != nil {
		return nil, err
	}
	key, err := Fingerprint(g, start, end)
	if err != nil {
		return nil, err
	}
	c.Lock()
	defer c.Unlock()
	if t, ok := c.tables[key]; ok {
		tracer().Debugf("table cache hit for %s", key)
		return t, nil
	}
	t := BuildTable(g, DeriveRelations(g, start, end), end)
	c.tables[key] = t
	return t, nil
}

// Parser creates a parser for a configuration, using a cached table if
// possible.
func (c *TableCache) Parser(g Grammar, start, end grammar.Symbol, opts ...Option) (*Parser, error) {
	t, err := c.Get(g, start, end)
	if err != nil {
		return nil, err
	}
	return NewParserFromTable(g, start, t, opts...)
}

// Size returns the number of cached tables.
func (c *TableCache) Size() int {
	c.Lock()
	defer c.Unlock()
	return len(c.tables)
}
