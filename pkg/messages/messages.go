package messages

import (
	"errors"
)

const (
	FiltersNotNil       = "filters can't be nil"
	LedgerQueryFailed   = "couldn't read from the ladder database"
	UnknownReplayHash   = "no replay recorded under this hash"
	PlayerNotFoundMsg   = "no such player"
	StoreUnavailableMsg = "ladder database unavailable for scope %s"
)

// Sentinel errors shared across the repository and service layers so
// handlers can tell a missing record apart from a failing store.
var (
	ErrPlayerNotFound   = errors.New(PlayerNotFoundMsg)
	ErrReplayNotFound   = errors.New(UnknownReplayHash)
	ErrStoreUnavailable = errors.New("ladder database unavailable")
)
