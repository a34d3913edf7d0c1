package generate

import "testing"

func TestNameMatcher(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		patterns []string
		want     bool
	}{
		{
			name:     "match by exact name",
			patterns: []string{"fetch"},
			unit:     "fetch",
			want:     true,
		},
		{
			name:     "no match different name",
			patterns: []string{"fetch"},
			unit:     "fetch_all",
			want:     false,
		},
		{
			name:     "multiple patterns",
			patterns: []string{"fetch", "store", "print_status"},
			unit:     "store",
			want:     true,
		},
		{
			name:     "empty pattern list",
			patterns: nil,
			unit:     "fetch",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewNameMatcher(tt.patterns)
			got := m.MatchUnit(tt.unit)
			if got != tt.want {
				t.Errorf("MatchUnit(%q) = %v, want %v", tt.unit, got, tt.want)
			}
		})
	}
}

func TestPrefixMatcher(t *testing.T) {
	m := NewPrefixMatcher([]string{"fetch_", "load_"})
	if !m.MatchUnit("fetch_status") {
		t.Error("fetch_status should match fetch_ prefix")
	}
	if !m.MatchUnit("load_config") {
		t.Error("load_config should match load_ prefix")
	}
	if m.MatchUnit("refetch_status") {
		t.Error("refetch_status should not match")
	}
}

func TestWildcardMatcher(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		patterns []string
		want     bool
	}{
		{
			name:     "exact name",
			patterns: []string{"fetch"},
			unit:     "fetch",
			want:     true,
		},
		{
			name:     "prefix wildcard",
			patterns: []string{"fetch_*"},
			unit:     "fetch_status",
			want:     true,
		},
		{
			name:     "prefix wildcard no match",
			patterns: []string{"fetch_*"},
			unit:     "prefetch_status",
			want:     false,
		},
		{
			name:     "star matches everything",
			patterns: []string{"*"},
			unit:     "anything",
			want:     true,
		},
		{
			name:     "mixed patterns",
			patterns: []string{"main", "print_*"},
			unit:     "print_status",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewWildcardMatcher(tt.patterns)
			got := m.MatchUnit(tt.unit)
			if got != tt.want {
				t.Errorf("MatchUnit(%q) = %v, want %v", tt.unit, got, tt.want)
			}
		})
	}
}

func TestCompositeMatcher(t *testing.T) {
	m := NewCompositeMatcher(
		NewNameMatcher([]string{"main"}),
		NewPrefixMatcher([]string{"print_"}),
	)
	if !m.MatchUnit("main") {
		t.Error("main should match via name matcher")
	}
	if !m.MatchUnit("print_status") {
		t.Error("print_status should match via prefix matcher")
	}
	if m.MatchUnit("fetch") {
		t.Error("fetch should not match any sub-matcher")
	}
}
