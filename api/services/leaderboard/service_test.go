package leaderboardservice

import (
	"context"
	"errors"
	"testing"

	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	servicetestutil "github.com/darkademic/oraladder/api/services/testutil"
	"github.com/darkademic/oraladder/internal/testutil"
	"github.com/darkademic/oraladder/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Simple test for asserting that everything is fine with the leaderboard service creation.
func TestNewLeaderboardService(t *testing.T) {
	_, _, mockMemCache, mockRedisClient := setupTestService()
	deps := &LeaderboardServiceDeps{
		MemCache: mockMemCache,
		Redis:    mockRedisClient,
		Limit:    100,
	}

	service := NewLeaderboardService(deps)
	assert.NotNil(t, service)
	assert.NotNil(t, service.PlayerRepository)
}

// Run tests on the possible outcomes of the GetLeaderboard.
func TestGetLeaderboard(t *testing.T) {
	tests := []struct {
		name                 string
		returnData           *dto.Leaderboard
		testStrategy         string
		scope                *filters.Scope
		repositoryReturnData *testutil.OperationResult[[]*models.Player]
		expectedError        error
	}{
		{
			name:         "fromMemCache",
			returnData:   createExpectedLeaderboard(),
			testStrategy: "memcache",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:         "fromRedis",
			returnData:   createExpectedLeaderboard(),
			testStrategy: "redis",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:                 "fromRepo",
			returnData:           createExpectedLeaderboard(),
			testStrategy:         "nocache",
			scope:                &filters.Scope{Mod: "ra", Period: "all"},
			repositoryReturnData: testutil.NewSuccessResult(createRepoPlayers()),
		},
		{
			name:                 "fromRepoWithWindow",
			returnData:           createExpectedPeriodLeaderboard(),
			testStrategy:         "nocache",
			scope:                &filters.Scope{Mod: "ra", Period: "2m"},
			repositoryReturnData: testutil.NewSuccessResult(createRepoPlayers()),
		},
		{
			name:         "fromRepoEmpty",
			returnData:   &dto.Leaderboard{Rows: []*dto.LeaderboardRow{}},
			testStrategy: "nocache",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
			repositoryReturnData: testutil.NewSuccessResult(
				[]*models.Player{},
			),
		},
		{
			name:                 "fromRepoErr",
			returnData:           nil,
			testStrategy:         "nocache",
			scope:                &filters.Scope{Mod: "ra", Period: "all"},
			repositoryReturnData: testutil.GetMockRepoError[[]*models.Player](),
			expectedError:        errors.New(testutil.DatabaseError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockPlayerRepository, mockMemCache, mockRedis := setupTestService()

			key := service.getLeaderboardKey(tt.scope)

			setupMocks(mockSetup{
				err:            tt.expectedError,
				scope:          tt.scope,
				key:            key,
				memCache:       mockMemCache,
				redis:          mockRedis,
				repo:           mockPlayerRepository,
				repoData:       tt.repositoryReturnData,
				expectedResult: tt.returnData,
				strategy:       tt.testStrategy,
			})

			result, err := service.GetLeaderboard(context.Background(), tt.scope)

			assertLeaderboardResult(t, result, err, tt.returnData, tt.expectedError)

			servicetestutil.VerifyAllMocks(t, mockMemCache, mockRedis, mockPlayerRepository)
		})
	}
}

// Simple test to verify behavior when invalid json is returned from redis.
func TestLeaderboardInvalidRedisKey(t *testing.T) {
	key := "testKey"
	service, _, _, mockRedis := setupTestService()

	mockRedis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), key).Return("invalid json", nil)

	result := service.getFromRedis(key)
	assert.Nil(t, result)

	mockRedis.AssertExpectations(t)
}

// Verify the cache key composition across scopes.
func TestGetLeaderboardKey(t *testing.T) {
	service, _, _, _ := setupTestService()

	tests := []struct {
		name     string
		scope    *filters.Scope
		expected string
	}{
		{
			name:     "All time",
			scope:    &filters.Scope{Mod: "ra", Period: "all"},
			expected: "leaderboard:mod_ra:period_all",
		},
		{
			name:     "Bimonthly",
			scope:    &filters.Scope{Mod: "td", Period: "2m"},
			expected: "leaderboard:mod_td:period_2m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := service.getLeaderboardKey(tt.scope)
			assert.Equal(t, tt.expected, key)
		})
	}
}
