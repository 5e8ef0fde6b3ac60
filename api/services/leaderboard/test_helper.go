package leaderboardservice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	servicetestutil "github.com/darkademic/oraladder/api/services/testutil"
	"github.com/darkademic/oraladder/internal/testutil"
	"github.com/darkademic/oraladder/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// Mock setup struct
type mockSetup struct {
	scope    *filters.Scope
	key      string
	strategy string

	memCache *servicetestutil.MockMemCache
	redis    *servicetestutil.MockLadderRedisClient
	repo     *servicetestutil.MockPlayerRepository

	repoData *testutil.OperationResult[[]*models.Player]

	expectedResult *dto.Leaderboard
	err            error
}

// Helper to initialize the mocks.
func setupTestService() (*LeaderboardService, *servicetestutil.MockPlayerRepository, *servicetestutil.MockMemCache, *servicetestutil.MockLadderRedisClient) {
	mockPlayerRepository := new(servicetestutil.MockPlayerRepository)
	mockMemCache := new(servicetestutil.MockMemCache)
	mockRedisClient := new(servicetestutil.MockLadderRedisClient)

	service := &LeaderboardService{
		memCache:         mockMemCache,
		redis:            mockRedisClient,
		limit:            100,
		now:              func() time.Time { return fixedNow },
		PlayerRepository: mockPlayerRepository,
	}

	return service, mockPlayerRepository, mockMemCache, mockRedisClient
}

// Create the repository rows backing a small ladder.
func createRepoPlayers() []*models.Player {
	return []*models.Player{
		{ProfileID: 10, ProfileName: "Napoleon", AvatarURL: "https://forum.example.org/avatars/10.png", Wins: 30, Losses: 10, Rating: 1850, PrvRating: 1820},
		{ProfileID: 20, ProfileName: "Wellington", AvatarURL: "", Wins: 25, Losses: 25, Rating: 1720, PrvRating: 1750},
	}
}

// Create the expected leaderboard for the all-time scope.
func createExpectedLeaderboard() *dto.Leaderboard {
	return &dto.Leaderboard{
		Rows: []*dto.LeaderboardRow{
			{Position: 1, ProfileID: 10, Name: "Napoleon", AvatarURL: "https://forum.example.org/avatars/10.png", Rating: 1850, Diff: 30, Played: 40, Wins: 30, Losses: 10, WinRate: 75},
			{Position: 2, ProfileID: 20, Name: "Wellington", AvatarURL: "", Rating: 1720, Diff: -30, Played: 50, Wins: 25, Losses: 25, WinRate: 50},
		},
	}
}

// Create the expected leaderboard for the bimonthly scope, including
// the reporting window around the fixed test clock.
func createExpectedPeriodLeaderboard() *dto.Leaderboard {
	board := createExpectedLeaderboard()
	board.Period = &dto.PeriodWindow{
		Start: "2024-03-01",
		End:   "2024-04-30",
		Label: "2 months",
	}
	return board
}

// Setup the mocks for the leaderboard test based on cache strategy.
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
	setup.memCache.On("Set", setup.key, setup.expectedResult, LeaderboardMemoryCacheDuration).Return(nil)
}

// Data available only on the ladder snapshot.
func setupNoCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(nil)
	setup.redis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), setup.key).Return("", nil)

	setup.repo.On("RankablePlayers", mock.Anything, setup.scope, 100).Return(setup.repoData.Data, setup.repoData.Err)

	if setup.err != nil {
		return
	}

	setup.memCache.On("Set", setup.key, setup.expectedResult, LeaderboardMemoryCacheDuration).Return(nil)

	data, _ := json.Marshal(setup.expectedResult)
	setup.redis.On("Set", mock.Anything, setup.key, string(data), LeaderboardRedisCacheDuration).Return(nil)
}

// Assert the expected returned results.
func assertLeaderboardResult(
	t *testing.T,
	result *dto.Leaderboard,
	err error,
	expectedData *dto.Leaderboard,
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
