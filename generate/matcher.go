package generate

import "strings"

// UnitMatcher selects function units by name.
type UnitMatcher interface {
	MatchUnit(name string) bool
}

// NameMatcher matches units by exact name.
type NameMatcher struct {
	names map[string]bool
}

// NewNameMatcher creates a matcher from a list of unit names.
func NewNameMatcher(names []string) *NameMatcher {
	m := &NameMatcher{names: make(map[string]bool)}
	for _, n := range names {
		m.names[n] = true
	}
	return m
}

// MatchUnit returns true if the unit name matches exactly.
func (m *NameMatcher) MatchUnit(name string) bool {
	return m.names[name]
}

// PrefixMatcher matches units by name prefix.
type PrefixMatcher struct {
	prefixes []string
}

// NewPrefixMatcher creates a matcher that matches units starting with any prefix.
func NewPrefixMatcher(prefixes []string) *PrefixMatcher {
	return &PrefixMatcher{prefixes: prefixes}
}

// MatchUnit returns true if the unit name starts with any prefix.
func (m *PrefixMatcher) MatchUnit(name string) bool {
	for _, p := range m.prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// WildcardMatcher matches unit name patterns with wildcard support.
//
// Supports patterns like:
//   - "name" - exact match
//   - "prefix_*" - matches names starting with prefix_
//   - "*" - matches everything
type WildcardMatcher struct {
	exact    map[string]bool
	prefixes []string
	matchAll bool
}

// NewWildcardMatcher creates a matcher with wildcard support.
func NewWildcardMatcher(patterns []string) *WildcardMatcher {
	m := &WildcardMatcher{exact: make(map[string]bool)}
	for _, p := range patterns {
		if p == "*" {
			m.matchAll = true
		} else if strings.HasSuffix(p, "*") {
			m.prefixes = append(m.prefixes, strings.TrimSuffix(p, "*"))
		} else {
			m.exact[p] = true
		}
	}
	return m
}

// MatchUnit returns true if the unit name matches any pattern.
func (m *WildcardMatcher) MatchUnit(name string) bool {
	if m.matchAll {
		return true
	}
	if m.exact[name] {
		return true
	}
	for _, p := range m.prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// CompositeMatcher combines multiple matchers.
type CompositeMatcher struct {
	matchers []UnitMatcher
}

// NewCompositeMatcher creates a matcher that matches if any sub-matcher matches.
func NewCompositeMatcher(matchers ...UnitMatcher) *CompositeMatcher {
	return &CompositeMatcher{matchers: matchers}
}

// MatchUnit returns true if any sub-matcher matches.
func (m *CompositeMatcher) MatchUnit(name string) bool {
	for _, matcher := range m.matchers {
		if matcher.MatchUnit(name) {
			return true
		}
	}
	return false
}
