package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/darkademic/oraladder/api/filters"
	"github.com/darkademic/oraladder/api/repositories/testutil"
	"github.com/darkademic/oraladder/pkg/database/models"
	"github.com/darkademic/oraladder/pkg/messages"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayerRepository(t *testing.T) {
	db, cleanup := testutil.NewTestDB(t)
	defer cleanup()

	registry := testutil.NewTestRegistry(t, db, "ra", "all")
	repository := NewPlayerRepository(registry)
	assert.NotNil(t, repository)
}

func TestRankablePlayers(t *testing.T) {
	db, cleanup := testutil.NewTestDB(t)
	defer cleanup()

	registry := testutil.NewTestRegistry(t, db, "ra", "all")
	repository := NewPlayerRepository(registry)

	seedLadderTestData(t, db)

	tests := []struct {
		name          string
		scope         *filters.Scope
		returnData    []*models.Player
		expectedError error
	}{
		{
			name:          "nilscope",
			scope:         nil,
			expectedError: fmt.Errorf(messages.FiltersNotNil),
		},
		{
			name:       "rankedorder",
			scope:      &filters.Scope{Mod: "ra", Period: "all"},
			returnData: getRankablePlayersExpectedResult(t, "rankedorder"),
		},
		{
			name:          "missingsnapshot",
			scope:         &filters.Scope{Mod: "td", Period: "all"},
			expectedError: messages.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repository.RankablePlayers(context.Background(), tt.scope, 100)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.returnData, result)
		})
	}
}

func TestRankablePlayersLimit(t *testing.T) {
	db, cleanup := testutil.NewTestDB(t)
	defer cleanup()

	registry := testutil.NewTestRegistry(t, db, "ra", "all")
	repository := NewPlayerRepository(registry)

	seedLadderTestData(t, db)

	result, err := repository.RankablePlayers(context.Background(), &filters.Scope{Mod: "ra", Period: "all"}, 2)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ProfileID)
	assert.Equal(t, int64(2), result[1].ProfileID)
}

func TestGetPlayerInfo(t *testing.T) {
	db, cleanup := testutil.NewTestDB(t)
	defer cleanup()

	registry := testutil.NewTestRegistry(t, db, "ra", "all")
	repository := NewPlayerRepository(registry)

	seedLadderTestData(t, db)

	tests := []struct {
		name          string
		profileID     int64
		returnData    *RawPlayerInfo
		expectedError error
	}{
		{
			name:       "topplayer",
			profileID:  1,
			returnData: getPlayerInfoExpectedResult(t, "topplayer"),
		},
		{
			name:       "secondplayer",
			profileID:  2,
			returnData: getPlayerInfoExpectedResult(t, "secondplayer"),
		},
		{
			name:          "nonexistentplayer",
			profileID:     999,
			expectedError: messages.ErrPlayerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repository.GetPlayerInfo(context.Background(), &filters.Scope{Mod: "ra", Period: "all"}, tt.profileID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.returnData, result)
		})
	}
}

func TestCountPlayers(t *testing.T) {
	db, cleanup := testutil.NewTestDB(t)
	defer cleanup()

	registry := testutil.NewTestRegistry(t, db, "ra", "all")
	repository := NewPlayerRepository(registry)

	seedLadderTestData(t, db)

	count, err := repository.CountPlayers(context.Background(), &filters.Scope{Mod: "ra", Period: "all"})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
