package matchesservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/darkademic/oraladder/api/cache"
	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/display"
	"github.com/darkademic/oraladder/pkg/messages"
	"github.com/darkademic/oraladder/pkg/mods"
)

const (
	MatchesMemoryCacheDuration = 30 * time.Second
	MatchesRedisCacheDuration  = 2 * time.Minute

	dateTimeLayout = "2006-01-02 15:04:05"
)

type MatchesRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Matches service backing the recent-activity feed and the replay
// downloads.
type MatchesService struct {
	memCache cache.MemCache
	redis    MatchesRedisClient
	limit    int

	OutcomeRepository outcomerepo.OutcomeRepository
}

// MatchesServiceDeps is the dependency list for the matches service.
type MatchesServiceDeps struct {
	Registry *database.Registry
	MemCache cache.MemCache
	Redis    MatchesRedisClient
	Limit    int
}

// NewMatchesService creates a matches service.
func NewMatchesService(deps *MatchesServiceDeps) *MatchesService {
	return &MatchesService{
		memCache:          deps.MemCache,
		redis:             deps.Redis,
		limit:             deps.Limit,
		OutcomeRepository: outcomerepo.NewOutcomeRepository(deps.Registry),
	}
}

// GetLatestGames returns the most recent matches across the whole
// ladder, newest first.
func (ms *MatchesService) GetLatestGames(ctx context.Context, scope *filters.Scope) ([]*dto.LatestGame, error) {
	key := ms.getLatestKey(scope)

	if mem := ms.getFromMemCache(key); mem != nil {
		return mem, nil
	}

	if redisData := ms.getFromRedis(key); redisData != nil {
		ms.memCache.Set(key, redisData, MatchesMemoryCacheDuration)
		return redisData, nil
	}

	rows, err := ms.OutcomeRepository.AllMatches(ctx, scope, ms.limit)
	if err != nil {
		return nil, err
	}

	mod := mods.Get(scope.Mod)

	games := make([]*dto.LatestGame, 0, len(rows))
	for _, row := range rows {
		game := &dto.LatestGame{
			Date:     row.StartTime.Format(dateTimeLayout),
			Duration: display.FormatDuration(row.StartTime, row.EndTime),
			Map:      display.CleanMapTitle(row.MapTitle),

			P0:   row.P0Name,
			P1:   row.P1Name,
			P0ID: row.Profile0,
			P1ID: row.Profile1,

			Diff0: row.Diff0,
			Diff1: row.Diff1,
		}

		// Banned participants are hidden from the feed and their
		// replays are not offered.
		if row.P0Banned {
			game.P0 = ""
			game.P0ID = 0
			game.P0Banned = true
		}
		if row.P1Banned {
			game.P1 = ""
			game.P1ID = 0
			game.P1Banned = true
		}

		if mod.SupportsAnalysis && row.Filename != "" && !row.P0Banned && !row.P1Banned {
			game.Hash = row.Hash
		}

		games = append(games, game)
	}

	ms.populateCaches(key, games)

	return games, nil
}

// GetReplayFile resolves a replay hash to its stored file reference.
// Variants without replay analysis never serve replays.
func (ms *MatchesService) GetReplayFile(ctx context.Context, scope *filters.Scope, hash string) (string, error) {
	if !mods.Get(scope.Mod).SupportsAnalysis {
		return "", messages.ErrReplayNotFound
	}

	return ms.OutcomeRepository.ReplayFile(ctx, scope, hash)
}

// getFromMemCache retrieves the data from the memory and returns it.
func (ms *MatchesService) getFromMemCache(key string) []*dto.LatestGame {
	if memCachedData := ms.memCache.Get(key); memCachedData != nil {
		return memCachedData.([]*dto.LatestGame)
	}
	return nil
}

// getFromRedis retrieves the data from the redis.
func (ms *MatchesService) getFromRedis(key string) []*dto.LatestGame {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*200)
	defer cancel()

	redisCached, err := ms.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var games []*dto.LatestGame
	if err := json.Unmarshal([]byte(redisCached), &games); err != nil {
		return nil
	}

	return games
}

// getLatestKey generates the cache key.
func (ms *MatchesService) getLatestKey(scope *filters.Scope) string {
	return "latest:" + scope.Key()
}

// populateCaches will set the mem cache and redis cache.
func (ms *MatchesService) populateCaches(key string, data []*dto.LatestGame) {
	ms.memCache.Set(key, data, MatchesMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		ms.redis.Set(context.Background(), key, string(j), MatchesRedisCacheDuration)
	}
}
