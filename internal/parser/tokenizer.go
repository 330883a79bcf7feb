package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix introduces an argument, e.g. "n/" in "n/John Doe".
type Prefix string

// Argument prefixes.
const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixEmail      Prefix = "e/"
	PrefixModule     Prefix = "m/"
	PrefixYear       Prefix = "y/"
	PrefixStudentID  Prefix = "s/"
	PrefixNomination Prefix = "tn/"
	PrefixTag        Prefix = "t/"
	PrefixComment    Prefix = "c/"
)

// ArgumentMultimap holds the values found for each prefix, in the order
// they appeared. The text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first prefix.
func (a ArgumentMultimap) Preamble() string {
	return a.preamble
}

// Value returns the last value given for p.
func (a ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p.
func (a ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

// Has reports whether p appeared at all.
func (a ArgumentMultimap) Has(p Prefix) bool {
	return len(a.values[p]) > 0
}

type position struct {
	offset int
	prefix Prefix
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts args or follows whitespace, so "e/a@b.com" inside a name is
// safe and "tn/" is never mistaken for "n/".
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var found []position
	for _, p := range prefixes {
		for from := 0; from <= len(args)-len(p); {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if before, _ := utf8.DecodeLastRuneInString(args[:at]); at == 0 || unicode.IsSpace(before) {
				found = append(found, position{offset: at, prefix: p})
			}
			from = at + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	result := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(found) > 0 {
		end = found[0].offset
	}
	result.preamble = strings.TrimSpace(args[:end])

	for i, pos := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].offset
		}
		value := strings.TrimSpace(args[pos.offset+len(pos.prefix) : end])
		result.values[pos.prefix] = append(result.values[pos.prefix], value)
	}
	return result
}
