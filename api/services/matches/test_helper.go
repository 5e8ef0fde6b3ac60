package matchesservice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	servicetestutil "github.com/darkademic/oraladder/api/services/testutil"
	"github.com/darkademic/oraladder/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock setup struct
type mockSetup struct {
	scope    *filters.Scope
	key      string
	strategy string

	memCache    *servicetestutil.MockMemCache
	redis       *servicetestutil.MockLadderRedisClient
	outcomeRepo *servicetestutil.MockOutcomeRepository

	repoData *testutil.OperationResult[[]outcomerepo.RawMatchRow]

	expectedResult []*dto.LatestGame
	err            error
}

// Helper to initialize the mocks.
func setupTestService() (*MatchesService, *servicetestutil.MockOutcomeRepository, *servicetestutil.MockMemCache, *servicetestutil.MockLadderRedisClient) {
	mockOutcomeRepository := new(servicetestutil.MockOutcomeRepository)
	mockMemCache := new(servicetestutil.MockMemCache)
	mockRedisClient := new(servicetestutil.MockLadderRedisClient)

	service := &MatchesService{
		memCache:          mockMemCache,
		redis:             mockRedisClient,
		limit:             15,
		OutcomeRepository: mockOutcomeRepository,
	}

	return service, mockOutcomeRepository, mockMemCache, mockRedisClient
}

// Create the repository rows backing the feed, newest first.
func createRepoMatchRows() []outcomerepo.RawMatchRow {
	return []outcomerepo.RawMatchRow{
		{
			Hash:      "g1",
			StartTime: time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 2, 1, 18, 9, 30, 0, time.UTC),
			Profile0:  1,
			Profile1:  2,
			Diff0:     12,
			Diff1:     -9,
			P0Name:    "Napoleon",
			P1Name:    "Wellington",
			MapTitle:  "Ruins [1v1]",
			Filename:  "g1.orarep",
		},
		{
			Hash:      "g2",
			StartTime: time.Date(2024, 1, 28, 17, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 28, 17, 5, 0, 0, time.UTC),
			Profile0:  3,
			Profile1:  1,
			Diff0:     10,
			Diff1:     -8,
			P0Name:    "Blucher",
			P1Name:    "Napoleon",
			MapTitle:  "Open Field",
			Filename:  "",
		},
		{
			Hash:      "g3",
			StartTime: time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 25, 12, 6, 0, 0, time.UTC),
			Profile0:  4,
			Profile1:  1,
			Diff0:     15,
			Diff1:     -11,
			P0Name:    "Quickmatch",
			P1Name:    "Napoleon",
			P0Banned:  true,
			MapTitle:  "Open Field",
			Filename:  "g3.orarep",
		},
	}
}

// Create the expected feed for the repository fixtures above.
func createExpectedLatestGames() []*dto.LatestGame {
	return []*dto.LatestGame{
		{
			Hash:     "g1",
			Date:     "2024-02-01 18:00:00",
			Duration: "09:30",
			Map:      "Ruins",
			P0:       "Napoleon",
			P1:       "Wellington",
			P0ID:     1,
			P1ID:     2,
			Diff0:    12,
			Diff1:    -9,
		},
		{
			Date:     "2024-01-28 17:00:00",
			Duration: "05:00",
			Map:      "Open Field",
			P0:       "Blucher",
			P1:       "Napoleon",
			P0ID:     3,
			P1ID:     1,
			Diff0:    10,
			Diff1:    -8,
		},
		{
			Date:     "2024-01-25 12:00:00",
			Duration: "06:00",
			Map:      "Open Field",
			P1:       "Napoleon",
			P1ID:     1,
			P0Banned: true,
			Diff0:    15,
			Diff1:    -11,
		},
	}
}

// Setup the mocks for the feed test based on cache strategy.
func setupMocks(setup mockSetup) {
	switch setup.strategy {
	case "memcache":
		setupMemCacheHit(setup)
	case "redis":
		setupRedisCacheHit(setup)
	case "nocache":
		setupNoCacheHit(setup)
	}
}

// Data already available on memory.
func setupMemCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(setup.expectedResult)
}

// Not available on memory, but available on Redis.
func setupRedisCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(nil)

	data, _ := json.Marshal(setup.expectedResult)
	setup.redis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), setup.key).Return(string(data), nil)
	setup.memCache.On("Set", setup.key, setup.expectedResult, MatchesMemoryCacheDuration).Return(nil)
}

// Data available only on the ladder snapshot.
func setupNoCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(nil)
	setup.redis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), setup.key).Return("", nil)

	setup.outcomeRepo.On("AllMatches", mock.Anything, setup.scope, 15).Return(setup.repoData.Data, setup.repoData.Err)

	if setup.err != nil {
		return
	}

	setup.memCache.On("Set", setup.key, setup.expectedResult, MatchesMemoryCacheDuration).Return(nil)

	data, _ := json.Marshal(setup.expectedResult)
	setup.redis.On("Set", mock.Anything, setup.key, string(data), MatchesRedisCacheDuration).Return(nil)
}

// Assert the expected returned results.
func assertLatestGamesResult(
	t *testing.T,
	result []*dto.LatestGame,
	err error,
	expectedData []*dto.LatestGame,
	expectedError error,
) {
	t.Helper()

	if expectedError != nil {
		assert.Error(t, err)
		assert.Contains(t, err.Error(), expectedError.Error())
		assert.Nil(t, result)
		return
	}

	assert.NoError(t, err)
	assert.Equal(t, expectedData, result)
}
