package internal

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

type MatchKind string

const (
	MatchNone     MatchKind = "none"
	MatchDirect   MatchKind = "direct"
	MatchAlias    MatchKind = "alias"
	MatchSuperset MatchKind = "superset"
)

type CountEntry struct {
	Key   string
	Count int
}

// CountTable keeps canonical keys in the order they were added. That order is
// the enumeration order used when scanning aliases.
type CountTable struct {
	entries []CountEntry
	index   map[string]int
}

func NewCountTable(entries ...CountEntry) (*CountTable, error) {
	t := &CountTable{
		entries: make([]CountEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("count table: empty key")
		}

		if e.Count < 0 {
			return nil, fmt.Errorf("count table: %q has negative count %d", e.Key, e.Count)
		}

		if _, ok := t.index[e.Key]; ok {
			return nil, fmt.Errorf("count table: duplicate key %q", e.Key)
		}

		t.index[e.Key] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	return t, nil
}

func (t *CountTable) Get(key string) (int, bool) {
	i, ok := t.index[key]

	if !ok {
		return 0, false
	}

	return t.entries[i].Count, true
}

func (t *CountTable) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Entries returns a copy of the table in enumeration order.
func (t *CountTable) Entries() []CountEntry {
	out := make([]CountEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *CountTable) Len() int {
	return len(t.entries)
}

func (t *CountTable) Max() int {
	max := 0
	for _, e := range t.entries {
		if e.Count > max {
			max = e.Count
		}
	}
	return max
}

// Alias is an alternative spelling for a canonical key. Superset aliases name a
// parent territory (e.g. "China" for "Hong Kong") and only apply when the
// resolver is built with AllowSuperset.
type Alias struct {
	Name     string
	Superset bool
}

type AliasTable map[string][]Alias

type ResolverOptions struct {
	Counts        *CountTable
	Aliases       AliasTable
	AllowSuperset bool
}

type foldedAlias struct {
	key      string
	name     string
	superset bool
}

type Resolver struct {
	counts  *CountTable
	aliases []foldedAlias
}

type Match struct {
	Key  string
	Kind MatchKind
}

func (m Match) Found() bool {
	return m.Kind != MatchNone
}

func fold(s string) string {
	// a Caser keeps state, so every call gets its own
	return cases.Fold().String(s)
}

func NewResolver(options *ResolverOptions) *Resolver {
	r := &Resolver{counts: options.Counts}

	if r.counts == nil {
		r.counts, _ = NewCountTable()
	}

	for _, e := range r.counts.entries {
		for _, a := range options.Aliases[e.Key] {
			if a.Superset && !options.AllowSuperset {
				continue
			}

			r.aliases = append(r.aliases, foldedAlias{
				key:      e.Key,
				name:     fold(strings.TrimSpace(a.Name)),
				superset: a.Superset,
			})
		}
	}

	return r
}

func (r *Resolver) Lookup(raw string) Match {
	name := strings.TrimSpace(raw)

	if name == "" {
		return Match{Kind: MatchNone}
	}

	if r.counts.Has(name) {
		return Match{Key: name, Kind: MatchDirect}
	}

	folded := fold(name)

	for _, a := range r.aliases {
		if a.name != folded {
			continue
		}

		if a.superset {
			return Match{Key: a.key, Kind: MatchSuperset}
		}

		return Match{Key: a.key, Kind: MatchAlias}
	}

	return Match{Kind: MatchNone}
}

// Resolve maps a raw place name to its canonical key. The empty string and
// whitespace-only names never match.
func (r *Resolver) Resolve(raw string) (string, bool) {
	m := r.Lookup(raw)
	return m.Key, m.Found()
}

// ResolveValue resolves a property value decoded from boundary data, which may
// be nil or not a string at all.
func (r *Resolver) ResolveValue(v interface{}) Match {
	s, ok := v.(string)

	if !ok {
		return Match{Kind: MatchNone}
	}

	return r.Lookup(s)
}

func (r *Resolver) Count(key string) (int, bool) {
	return r.counts.Get(key)
}

func (r *Resolver) Counts() *CountTable {
	return r.counts
}
