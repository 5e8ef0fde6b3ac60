package statsservice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	servicetestutil "github.com/darkademic/oraladder/api/services/testutil"
	"github.com/darkademic/oraladder/pkg/charts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC)

// Mock setup struct
type mockSetup struct {
	scope    *filters.Scope
	key      string
	strategy string

	memCache    *servicetestutil.MockMemCache
	redis       *servicetestutil.MockLadderRedisClient
	playerRepo  *servicetestutil.MockPlayerRepository
	outcomeRepo *servicetestutil.MockOutcomeRepository

	expectedResult *dto.GlobalStats
	err            error
}

// Helper to initialize the mocks.
func setupTestService() (*StatsService, *servicetestutil.MockPlayerRepository, *servicetestutil.MockOutcomeRepository, *servicetestutil.MockMemCache, *servicetestutil.MockLadderRedisClient) {
	mockPlayerRepository := new(servicetestutil.MockPlayerRepository)
	mockOutcomeRepository := new(servicetestutil.MockOutcomeRepository)
	mockMemCache := new(servicetestutil.MockMemCache)
	mockRedisClient := new(servicetestutil.MockLadderRedisClient)

	service := &StatsService{
		memCache:          mockMemCache,
		redis:             mockRedisClient,
		now:               func() time.Time { return fixedNow },
		PlayerRepository:  mockPlayerRepository,
		OutcomeRepository: mockOutcomeRepository,
	}

	return service, mockPlayerRepository, mockOutcomeRepository, mockMemCache, mockRedisClient
}

func createRepoFactionRows() []outcomerepo.HistogramRow {
	return []outcomerepo.HistogramRow{
		{Name: "Soviet", Count: 4},
		{Name: "Allies", Count: 2},
		{Name: "England", Count: 2},
	}
}

func createRepoMapRows() []outcomerepo.HistogramRow {
	return []outcomerepo.HistogramRow{
		{Name: "Open Field", Count: 2},
		{Name: "Ruins [1v1]", Count: 1},
		{Name: "Ruins [2v2]", Count: 1},
	}
}

func createRepoActivityRows() []outcomerepo.ActivityRow {
	return []outcomerepo.ActivityRow{
		{Day: "2024-01-01", Count: 1},
		{Day: "2024-01-04", Count: 1},
	}
}

// Create the expected stats payload for the repository fixtures above.
func createExpectedStats() *dto.GlobalStats {
	return &dto.GlobalStats{
		NbGames:         2,
		NbPlayers:       4,
		AvgGameDuration: "07:15",

		Factions: dto.Histogram{
			Names:  []string{"Soviet", "Allies", "England"},
			Counts: []int{4, 2, 2},
			Colors: charts.Palette(3),
			Total:  8,
		},
		Maps: dto.Histogram{
			Names:  []string{"Open Field", "Ruins"},
			Counts: []int{2, 2},
			Colors: charts.Palette(2),
			Total:  4,
		},
		Activity: dto.ActivityTimeline{
			Dates:      []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
			Counts:     []int{1, 0, 0, 1},
			MeanPerDay: 0.5,
		},
	}
}

// Setup the mocks for the stats test based on cache strategy.
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
	setup.memCache.On("Set", setup.key, setup.expectedResult, StatsMemoryCacheDuration).Return(nil)
}

// Data available only on the ladder snapshot.
func setupNoCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(nil)
	setup.redis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), setup.key).Return("", nil)

	if setup.err != nil {
		setup.outcomeRepo.On("CountOutcomes", mock.Anything, setup.scope).Return(int64(0), setup.err)
		return
	}

	setup.outcomeRepo.On("CountOutcomes", mock.Anything, setup.scope).Return(int64(2), nil)
	setup.playerRepo.On("CountPlayers", mock.Anything, setup.scope).Return(int64(4), nil)
	setup.outcomeRepo.On("AvgDurationSeconds", mock.Anything, setup.scope).Return(float64(435), nil)
	setup.outcomeRepo.On("GlobalFactionHistogram", mock.Anything, setup.scope).Return(createRepoFactionRows(), nil)
	setup.outcomeRepo.On("GlobalMapHistogram", mock.Anything, setup.scope).Return(createRepoMapRows(), nil)
	setup.outcomeRepo.On("DailyActivity", mock.Anything, setup.scope).Return(createRepoActivityRows(), nil)

	setup.memCache.On("Set", setup.key, setup.expectedResult, StatsMemoryCacheDuration).Return(nil)

	data, _ := json.Marshal(setup.expectedResult)
	setup.redis.On("Set", mock.Anything, setup.key, string(data), StatsRedisCacheDuration).Return(nil)
}

// Assert the expected returned results.
func assertStatsResult(
	t *testing.T,
	result *dto.GlobalStats,
	err error,
	expectedData *dto.GlobalStats,
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
