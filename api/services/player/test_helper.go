package playerservice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	playerrepo "github.com/darkademic/oraladder/api/repositories/player"
	servicetestutil "github.com/darkademic/oraladder/api/services/testutil"
	"github.com/darkademic/oraladder/pkg/charts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testProfileID int64 = 7

// Mock setup struct
type mockSetup struct {
	scope    *filters.Scope
	key      string
	strategy string

	memCache    *servicetestutil.MockMemCache
	redis       *servicetestutil.MockLadderRedisClient
	playerRepo  *servicetestutil.MockPlayerRepository
	outcomeRepo *servicetestutil.MockOutcomeRepository

	info    *playerrepo.RawPlayerInfo
	infoErr error

	expectedResult *dto.PlayerProfile
	err            error
}

// Helper to initialize the mocks.
func setupTestService() (*PlayerService, *servicetestutil.MockPlayerRepository, *servicetestutil.MockOutcomeRepository, *servicetestutil.MockMemCache, *servicetestutil.MockLadderRedisClient) {
	mockPlayerRepository := new(servicetestutil.MockPlayerRepository)
	mockOutcomeRepository := new(servicetestutil.MockOutcomeRepository)
	mockMemCache := new(servicetestutil.MockMemCache)
	mockRedisClient := new(servicetestutil.MockLadderRedisClient)

	service := &PlayerService{
		memCache:          mockMemCache,
		redis:             mockRedisClient,
		minDatapoints:     2,
		curveWidth:        4,
		gamesLimit:        15,
		PlayerRepository:  mockPlayerRepository,
		OutcomeRepository: mockOutcomeRepository,
	}

	return service, mockPlayerRepository, mockOutcomeRepository, mockMemCache, mockRedisClient
}

// Create the raw player row backing the profile.
func createRepoPlayerInfo() *playerrepo.RawPlayerInfo {
	return &playerrepo.RawPlayerInfo{
		ProfileID:          testProfileID,
		ProfileName:        "Napoleon",
		AvatarURL:          "https://forum.example.org/avatars/7.png",
		Wins:               12,
		Losses:             4,
		Rating:             1600,
		PrvRating:          1580,
		LadderRank:         3,
		AvgDurationSeconds: 450,
	}
}

func createRepoRatings() []float64 {
	return []float64{1500, 1510, 1520, 1530, 1540, 1550}
}

func createRepoFactionRows() []outcomerepo.HistogramRow {
	return []outcomerepo.HistogramRow{
		{Name: "Soviet", Count: 3},
		{Name: "Allies", Count: 1},
	}
}

func createRepoMapWinRows() []outcomerepo.HistogramRow {
	return []outcomerepo.HistogramRow{
		{Name: "Ruins [1v1]", Count: 2},
		{Name: "Open Field", Count: 1},
		{Name: "Ruins [2v2]", Count: 1},
	}
}

func createRepoMapLossRows() []outcomerepo.HistogramRow {
	return []outcomerepo.HistogramRow{
		{Name: "Ruins [3v3]", Count: 1},
	}
}

// Create the recent match rows, newest first. The third row carries
// the viewed player's own ban and truncates the log.
func createRepoMatchRows() []outcomerepo.RawMatchRow {
	return []outcomerepo.RawMatchRow{
		{
			Hash:      "r1",
			StartTime: time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 2, 1, 18, 9, 30, 0, time.UTC),
			Profile0:  testProfileID,
			Profile1:  2,
			Diff0:     12,
			Diff1:     -9,
			P0Name:    "Napoleon",
			P1Name:    "Wellington",
			MapTitle:  "Ruins [1v1]",
			Filename:  "r1.orarep",
		},
		{
			Hash:      "r2",
			StartTime: time.Date(2024, 1, 28, 17, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 28, 17, 5, 0, 0, time.UTC),
			Profile0:  9,
			Profile1:  testProfileID,
			Diff0:     10,
			Diff1:     -8,
			P0Name:    "Quickmatch",
			P1Name:    "Napoleon",
			P0Banned:  true,
			MapTitle:  "Open Field",
			Filename:  "r2.orarep",
		},
		{
			Hash:      "r3",
			StartTime: time.Date(2024, 1, 20, 16, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 20, 16, 4, 0, 0, time.UTC),
			Profile0:  testProfileID,
			Profile1:  3,
			Diff0:     5,
			Diff1:     -5,
			P0Name:    "Napoleon",
			P1Name:    "Blucher",
			P0Banned:  true,
			MapTitle:  "Open Field",
			Filename:  "r3.orarep",
		},
		{
			Hash:      "r4",
			StartTime: time.Date(2024, 1, 18, 15, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2024, 1, 18, 15, 3, 0, 0, time.UTC),
			Profile0:  testProfileID,
			Profile1:  3,
			Diff0:     5,
			Diff1:     -5,
			P0Name:    "Napoleon",
			P1Name:    "Blucher",
			MapTitle:  "Open Field",
			Filename:  "r4.orarep",
		},
	}
}

// Create the expected full profile for the repository fixtures above.
func createExpectedProfile() *dto.PlayerProfile {
	return &dto.PlayerProfile{
		ProfileID: testProfileID,
		Name:      "Napoleon",
		AvatarURL: "https://forum.example.org/avatars/7.png",

		Rating:  1600,
		Diff:    20,
		Rank:    3,
		Wins:    12,
		Losses:  4,
		Played:  16,
		WinRate: 75,

		AvgGameDuration: "07:30",

		RatingCurve: dto.RatingCurve{
			Labels: []string{"", "", "", ""},
			Points: []int{1520, 1530, 1540, 1550},
		},
		Factions: dto.Histogram{
			Names:  []string{"Soviet", "Allies"},
			Counts: []int{3, 1},
			Colors: charts.Palette(2),
			Total:  4,
		},
		Maps: dto.MapWinLoss{
			Names:  []string{"Ruins", "Open Field"},
			Wins:   []int{3, 1},
			Losses: []int{-1, 0},
		},
		Games: []*dto.PlayerGame{
			{
				Hash:       "r1",
				Date:       "2024-02-01 18:00:00",
				Duration:   "09:30",
				Map:        "Ruins",
				Opponent:   "Wellington",
				OpponentID: 2,
				Outcome:    "Won",
				Diff:       12,
			},
			{
				Date:           "2024-01-28 17:00:00",
				Duration:       "05:00",
				Map:            "Open Field",
				OpponentBanned: true,
				Outcome:        "Lost",
				Diff:           -8,
			},
		},
	}
}

// Setup the mocks for the profile test based on cache strategy.
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
	setup.memCache.On("Set", setup.key, setup.expectedResult, PlayerMemoryCacheDuration).Return(nil)
}

// Data available only on the ladder snapshot.
func setupNoCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(nil)
	setup.redis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), setup.key).Return("", nil)

	setup.playerRepo.On("GetPlayerInfo", mock.Anything, setup.scope, testProfileID).Return(setup.info, setup.infoErr)

	if setup.infoErr != nil {
		return
	}

	setup.outcomeRepo.On("RatingsFor", mock.Anything, setup.scope, testProfileID).Return(createRepoRatings(), nil)
	setup.outcomeRepo.On("FactionHistogramFor", mock.Anything, setup.scope, testProfileID).Return(createRepoFactionRows(), nil)
	setup.outcomeRepo.On("MapHistogramFor", mock.Anything, setup.scope, testProfileID).Return(createRepoMapWinRows(), createRepoMapLossRows(), nil)
	setup.outcomeRepo.On("MatchesInvolving", mock.Anything, setup.scope, testProfileID, 15).Return(createRepoMatchRows(), nil)

	setup.memCache.On("Set", setup.key, setup.expectedResult, PlayerMemoryCacheDuration).Return(nil)

	data, _ := json.Marshal(setup.expectedResult)
	setup.redis.On("Set", mock.Anything, setup.key, string(data), PlayerRedisCacheDuration).Return(nil)
}

// Assert the expected returned results.
func assertProfileResult(
	t *testing.T,
	result *dto.PlayerProfile,
	err error,
	expectedData *dto.PlayerProfile,
	expectedError error,
) {
	t.Helper()

	if expectedError != nil {
		assert.Error(t, err)
		assert.ErrorIs(t, err, expectedError)
		assert.Nil(t, result)
		return
	}

	assert.NoError(t, err)
	assert.Equal(t, expectedData, result)
}
