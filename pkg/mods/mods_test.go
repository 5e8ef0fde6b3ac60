package mods

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	ra := Get("ra")
	assert.Equal(t, "ra", ra.ID)
	assert.Equal(t, "Red Alert", ra.Label)
	assert.True(t, ra.SupportsAnalysis)

	td := Get("td")
	assert.Equal(t, "td", td.ID)
	assert.False(t, td.SupportsAnalysis)
}

// Unknown selectors fall back to the default variant instead of
// failing the request.
func TestGetUnknownFallsBack(t *testing.T) {
	assert.Equal(t, Get(DefaultID), Get("dune2000"))
	assert.Equal(t, Get(DefaultID), Get(""))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("ra"))
	assert.True(t, Known("td"))
	assert.False(t, Known("ra2"))
}

func TestAllIsSorted(t *testing.T) {
	all := All()
	assert.Len(t, all, 2)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}
