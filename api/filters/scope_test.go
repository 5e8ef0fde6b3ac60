package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeNormalization(t *testing.T) {
	tests := []struct {
		name     string
		params   ScopeQueryParams
		expected Scope
	}{
		{
			name:     "defaults",
			params:   ScopeQueryParams{},
			expected: Scope{Mod: "ra", Period: "all"},
		},
		{
			name:     "explicit period",
			params:   ScopeQueryParams{Mod: "td", Period: "2m"},
			expected: Scope{Mod: "td", Period: "2m"},
		},
		{
			name:     "unknown values fall back",
			params:   ScopeQueryParams{Mod: "dune2000", Period: "weekly"},
			expected: Scope{Mod: "ra", Period: "all"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.Scope())
		})
	}
}

func TestScopeKey(t *testing.T) {
	s := Scope{Mod: "ra", Period: "2m"}
	assert.Equal(t, "mod_ra:period_2m", s.Key())
}
