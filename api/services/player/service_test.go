package playerservice

import (
	"context"
	"testing"

	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	playerrepo "github.com/darkademic/oraladder/api/repositories/player"
	servicetestutil "github.com/darkademic/oraladder/api/services/testutil"
	"github.com/darkademic/oraladder/pkg/messages"

	"github.com/stretchr/testify/assert"
)

// Simple test for asserting that everything is fine with the player service creation.
func TestNewPlayerService(t *testing.T) {
	_, _, _, mockMemCache, mockRedisClient := setupTestService()
	deps := &PlayerServiceDeps{
		MemCache:      mockMemCache,
		Redis:         mockRedisClient,
		MinDatapoints: 10,
		CurveWidth:    50,
		GamesLimit:    15,
	}

	service := NewPlayerService(deps)
	assert.NotNil(t, service)
	assert.NotNil(t, service.PlayerRepository)
	assert.NotNil(t, service.OutcomeRepository)
}

// Run tests on the possible outcomes of the GetPlayerProfile.
func TestGetPlayerProfile(t *testing.T) {
	tests := []struct {
		name          string
		returnData    *dto.PlayerProfile
		testStrategy  string
		scope         *filters.Scope
		info          *playerrepo.RawPlayerInfo
		infoErr       error
		expectedError error
	}{
		{
			name:         "fromMemCache",
			returnData:   createExpectedProfile(),
			testStrategy: "memcache",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:         "fromRedis",
			returnData:   createExpectedProfile(),
			testStrategy: "redis",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:         "fromRepo",
			returnData:   createExpectedProfile(),
			testStrategy: "nocache",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
			info:         createRepoPlayerInfo(),
		},
		{
			name:          "unknownPlayer",
			returnData:    nil,
			testStrategy:  "nocache",
			scope:         &filters.Scope{Mod: "ra", Period: "all"},
			infoErr:       messages.ErrPlayerNotFound,
			expectedError: messages.ErrPlayerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockPlayerRepository, mockOutcomeRepository, mockMemCache, mockRedis := setupTestService()

			key := service.getPlayerKey(tt.scope, testProfileID)

			setupMocks(mockSetup{
				err:            tt.expectedError,
				scope:          tt.scope,
				key:            key,
				memCache:       mockMemCache,
				redis:          mockRedis,
				playerRepo:     mockPlayerRepository,
				outcomeRepo:    mockOutcomeRepository,
				info:           tt.info,
				infoErr:        tt.infoErr,
				expectedResult: tt.returnData,
				strategy:       tt.testStrategy,
			})

			result, err := service.GetPlayerProfile(context.Background(), tt.scope, testProfileID)

			assertProfileResult(t, result, err, tt.returnData, tt.expectedError)

			servicetestutil.VerifyAllMocks(t, mockMemCache, mockRedis, mockPlayerRepository, mockOutcomeRepository)
		})
	}
}

// The match log keeps results against banned opponents but drops their
// identity and the replay link.
func TestBuildGameLogRedaction(t *testing.T) {
	scope := &filters.Scope{Mod: "ra", Period: "all"}

	games := buildGameLog(scope, testProfileID, createRepoMatchRows())

	assert.Len(t, games, 2)

	assert.Equal(t, "r1", games[0].Hash)
	assert.Equal(t, "Wellington", games[0].Opponent)

	assert.Empty(t, games[1].Hash)
	assert.Empty(t, games[1].Opponent)
	assert.Zero(t, games[1].OpponentID)
	assert.True(t, games[1].OpponentBanned)
	assert.Equal(t, "Lost", games[1].Outcome)
}

// Variants without replay analysis never expose replay hashes.
func TestBuildGameLogNoAnalysis(t *testing.T) {
	scope := &filters.Scope{Mod: "td", Period: "all"}

	games := buildGameLog(scope, testProfileID, createRepoMatchRows())

	assert.Len(t, games, 2)
	for _, game := range games {
		assert.Empty(t, game.Hash)
	}
}

// Histories at or below the placement cutoff produce an empty curve.
func TestBuildRatingCurveShortHistory(t *testing.T) {
	service, _, _, _, _ := setupTestService()

	curve := service.buildRatingCurve([]float64{1500, 1510})

	assert.Empty(t, curve.Points)
	assert.Empty(t, curve.Labels)
}

// Verify the cache key composition.
func TestGetPlayerKey(t *testing.T) {
	service, _, _, _, _ := setupTestService()

	key := service.getPlayerKey(&filters.Scope{Mod: "ra", Period: "2m"}, 42)
	assert.Equal(t, "player:42:mod_ra:period_2m", key)
}
