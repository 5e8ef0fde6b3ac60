package matchesservice

import (
	"context"
	"errors"
	"testing"

	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	servicetestutil "github.com/darkademic/oraladder/api/services/testutil"
	"github.com/darkademic/oraladder/internal/testutil"
	"github.com/darkademic/oraladder/pkg/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Simple test for asserting that everything is fine with the matches service creation.
func TestNewMatchesService(t *testing.T) {
	_, _, mockMemCache, mockRedisClient := setupTestService()
	deps := &MatchesServiceDeps{
		MemCache: mockMemCache,
		Redis:    mockRedisClient,
		Limit:    15,
	}

	service := NewMatchesService(deps)
	assert.NotNil(t, service)
	assert.NotNil(t, service.OutcomeRepository)
}

// Run tests on the possible outcomes of the GetLatestGames.
func TestGetLatestGames(t *testing.T) {
	tests := []struct {
		name                 string
		returnData           []*dto.LatestGame
		testStrategy         string
		scope                *filters.Scope
		repositoryReturnData *testutil.OperationResult[[]outcomerepo.RawMatchRow]
		expectedError        error
	}{
		{
			name:         "fromMemCache",
			returnData:   createExpectedLatestGames(),
			testStrategy: "memcache",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:         "fromRedis",
			returnData:   createExpectedLatestGames(),
			testStrategy: "redis",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:                 "fromRepo",
			returnData:           createExpectedLatestGames(),
			testStrategy:         "nocache",
			scope:                &filters.Scope{Mod: "ra", Period: "all"},
			repositoryReturnData: testutil.NewSuccessResult(createRepoMatchRows()),
		},
		{
			name:                 "fromRepoEmpty",
			returnData:           []*dto.LatestGame{},
			testStrategy:         "nocache",
			scope:                &filters.Scope{Mod: "ra", Period: "all"},
			repositoryReturnData: testutil.NewSuccessResult([]outcomerepo.RawMatchRow{}),
		},
		{
			name:                 "fromRepoErr",
			returnData:           nil,
			testStrategy:         "nocache",
			scope:                &filters.Scope{Mod: "ra", Period: "all"},
			repositoryReturnData: testutil.GetMockRepoError[[]outcomerepo.RawMatchRow](),
			expectedError:        errors.New(testutil.DatabaseError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockOutcomeRepository, mockMemCache, mockRedis := setupTestService()

			key := service.getLatestKey(tt.scope)

			setupMocks(mockSetup{
				err:            tt.expectedError,
				scope:          tt.scope,
				key:            key,
				memCache:       mockMemCache,
				redis:          mockRedis,
				outcomeRepo:    mockOutcomeRepository,
				repoData:       tt.repositoryReturnData,
				expectedResult: tt.returnData,
				strategy:       tt.testStrategy,
			})

			result, err := service.GetLatestGames(context.Background(), tt.scope)

			assertLatestGamesResult(t, result, err, tt.returnData, tt.expectedError)

			servicetestutil.VerifyAllMocks(t, mockMemCache, mockRedis, mockOutcomeRepository)
		})
	}
}

// Run tests on the possible outcomes of the GetReplayFile.
func TestGetReplayFile(t *testing.T) {
	tests := []struct {
		name          string
		scope         *filters.Scope
		hash          string
		returnData    string
		repoCalled    bool
		repoErr       error
		expectedError error
	}{
		{
			name:       "knownhash",
			scope:      &filters.Scope{Mod: "ra", Period: "all"},
			hash:       "g1",
			returnData: "g1.orarep",
			repoCalled: true,
		},
		{
			name:          "unknownhash",
			scope:         &filters.Scope{Mod: "ra", Period: "all"},
			hash:          "zzzz",
			repoCalled:    true,
			repoErr:       messages.ErrReplayNotFound,
			expectedError: messages.ErrReplayNotFound,
		},
		{
			name:          "variantwithoutanalysis",
			scope:         &filters.Scope{Mod: "td", Period: "all"},
			hash:          "g1",
			repoCalled:    false,
			expectedError: messages.ErrReplayNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockOutcomeRepository, _, _ := setupTestService()

			if tt.repoCalled {
				mockOutcomeRepository.On("ReplayFile", mock.Anything, tt.scope, tt.hash).Return(tt.returnData, tt.repoErr)
			}

			result, err := service.GetReplayFile(context.Background(), tt.scope, tt.hash)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.returnData, result)
			}

			servicetestutil.VerifyAllMocks(t, mockOutcomeRepository)
		})
	}
}
