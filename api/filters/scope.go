package filters

import (
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/mods"
)

// ScopeQueryParams binds the reporting-scope selectors every analytics
// endpoint accepts. Unrecognized values fall back to the defaults
// rather than failing the request.
type ScopeQueryParams struct {
	Mod    string `form:"mod"`
	Period string `form:"period"`
}

// Scope is a normalized (game variant, reporting window) pair.
type Scope struct {
	Mod    string
	Period string
}

// Scope normalizes the raw query parameters.
func (q *ScopeQueryParams) Scope() Scope {
	mod := q.Mod
	if !mods.Known(mod) {
		mod = mods.DefaultID
	}

	return Scope{
		Mod:    mod,
		Period: database.NormalizeScope(q.Period),
	}
}

// Key renders the scope as a cache key fragment.
func (s Scope) Key() string {
	return "mod_" + s.Mod + ":period_" + s.Period
}
