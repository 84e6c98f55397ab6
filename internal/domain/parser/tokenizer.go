// Package parser turns command lines into typed commands.
package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of an argument segment, e.g. "n/" in "n/John Doe".
type Prefix string

const (
	PrefixName     Prefix = "n/"
	PrefixPhone    Prefix = "p/"
	PrefixEmail    Prefix = "e/"
	PrefixMatric   Prefix = "m/"
	PrefixGroup    Prefix = "g/"
	PrefixTag      Prefix = "t/"
	PrefixUsername Prefix = "u/"
	PrefixPassword Prefix = "pw/"
	PrefixQuestion Prefix = "q/"
	PrefixAnswer   Prefix = "ans/"
	PrefixDesc     Prefix = "d/"
	PrefixDate     Prefix = "dt/"
	PrefixTime     Prefix = "ti/"
	PrefixSubject  Prefix = "s/"
	PrefixBody     Prefix = "b/"
	PrefixPic      Prefix = "pic/"
)

// ArgumentMultimap is the result of tokenizing an arguments string: the
// preamble before the first prefix, and the values of each prefix in order
// of appearance.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the text before the first recognised prefix.
func (m *ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for prefix.
func (m *ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	vals := m.values[prefix]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value given for prefix, in input order.
func (m *ArgumentMultimap) AllValues(prefix Prefix) []string {
	return m.values[prefix]
}

// HasAll reports whether every prefix appears at least once.
func (m *ArgumentMultimap) HasAll(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(m.values[p]) == 0 {
			return false
		}
	}
	return true
}

// Tokenize segments args by the given prefixes. A prefix is only recognised
// when preceded by whitespace. Anything that is not a recognised prefix —
// including unknown prefixes — stays part of the preceding value; legacy
// saved command histories depend on that, so do not "fix" it.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	padded := " " + args

	type hit struct {
		pos    int
		prefix Prefix
	}
	var hits []hit
	for _, p := range prefixes {
		marker := " " + string(p)
		for from := 0; ; {
			i := strings.Index(padded[from:], marker)
			if i < 0 {
				break
			}
			hits = append(hits, hit{pos: from + i + 1, prefix: p})
			from += i + len(marker)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	mm := &ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(hits) == 0 {
		mm.preamble = strings.TrimSpace(padded)
		return mm
	}
	mm.preamble = strings.TrimSpace(padded[:hits[0].pos])
	for i, h := range hits {
		end := len(padded)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		value := padded[h.pos+len(h.prefix) : end]
		mm.values[h.prefix] = append(mm.values[h.prefix], strings.TrimSpace(value))
	}
	return mm
}
