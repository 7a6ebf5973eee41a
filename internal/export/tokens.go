package export

import "strings"

// EntrySet is the grouped form of a raw export token stream: a mapping from
// flag to its accumulated argument list, plus the order in which each flag
// was first seen. Once returned by ParseTokens it is treated as a value and
// never mutated; validation and descriptor building read it as-is.
type EntrySet struct {
	args  map[string][]string
	order []string
}

// ParseTokens groups a raw argument list into flag entries with a single
// left-to-right scan. A token starting with '-' opens a new entry, discarding
// any arguments a repeated flag collected earlier while keeping its original
// position. Tokens before the first flag are dropped without error, matching
// permissive CLI scanning.
func ParseTokens(tokens []string) EntrySet {
	set := EntrySet{args: make(map[string][]string)}

	current := ""
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "-") {
			current = tok
			if _, seen := set.args[current]; !seen {
				set.order = append(set.order, current)
			}
			set.args[current] = nil
			continue
		}
		if current == "" {
			continue
		}
		set.args[current] = append(set.args[current], tok)
	}

	return set
}

// Len reports the number of grouped entries.
func (s EntrySet) Len() int {
	return len(s.order)
}

// Flags returns the grouped flags in first-seen order.
func (s EntrySet) Flags() []string {
	flags := make([]string, len(s.order))
	copy(flags, s.order)
	return flags
}

// Args returns the argument list collected for flag, or nil if the flag was
// never seen. Callers must not modify the returned slice.
func (s EntrySet) Args(flag string) []string {
	return s.args[flag]
}
