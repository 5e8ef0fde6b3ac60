package leaderboardservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/darkademic/oraladder/api/cache"
	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	playerrepo "github.com/darkademic/oraladder/api/repositories/player"
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/period"
)

const (
	LeaderboardMemoryCacheDuration = time.Minute
	LeaderboardRedisCacheDuration  = 5 * time.Minute

	dateLayout = "2006-01-02"
)

type LeaderboardRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Leaderboard service over the per-scope ladder snapshots.
type LeaderboardService struct {
	registry *database.Registry
	memCache cache.MemCache
	redis    LeaderboardRedisClient
	limit    int
	now      func() time.Time

	PlayerRepository playerrepo.PlayerRepository
}

// LeaderboardServiceDeps is the dependency list for the leaderboard service.
type LeaderboardServiceDeps struct {
	Registry *database.Registry
	MemCache cache.MemCache
	Redis    LeaderboardRedisClient
	Limit    int
}

// NewLeaderboardService creates a leaderboard service.
func NewLeaderboardService(deps *LeaderboardServiceDeps) *LeaderboardService {
	return &LeaderboardService{
		registry:         deps.Registry,
		memCache:         deps.MemCache,
		redis:            deps.Redis,
		limit:            deps.Limit,
		now:              time.Now,
		PlayerRepository: playerrepo.NewPlayerRepository(deps.Registry),
	}
}

// GetLeaderboard returns the ranked listing for the given scope.
func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, scope *filters.Scope) (*dto.Leaderboard, error) {
	key := ls.getLeaderboardKey(scope)

	if mem := ls.getFromMemCache(key); mem != nil {
		return mem, nil
	}

	if redisData := ls.getFromRedis(key); redisData != nil {
		ls.memCache.Set(key, redisData, LeaderboardMemoryCacheDuration)
		return redisData, nil
	}

	players, err := ls.PlayerRepository.RankablePlayers(ctx, scope, ls.limit)
	if err != nil {
		return nil, err
	}

	board := &dto.Leaderboard{
		Rows: make([]*dto.LeaderboardRow, 0, len(players)),
	}

	for i, p := range players {
		played := p.Wins + p.Losses

		var winRate float64
		if played > 0 {
			winRate = float64(p.Wins) / float64(played) * 100
		}

		board.Rows = append(board.Rows, &dto.LeaderboardRow{
			Position:  i + 1,
			ProfileID: p.ProfileID,
			Name:      p.ProfileName,
			AvatarURL: p.AvatarURL,
			Rating:    p.Rating,
			Diff:      p.Rating - p.PrvRating,
			Played:    played,
			Wins:      p.Wins,
			Losses:    p.Losses,
			WinRate:   winRate,
		})
	}

	if scope.Period == database.ScopePeriod {
		window := period.Current(ls.now())
		board.Period = &dto.PeriodWindow{
			Start: window.Start.Format(dateLayout),
			End:   window.End.Format(dateLayout),
			Label: window.Label,
		}
	}

	ls.populateCaches(key, board)

	return board, nil
}

// getFromMemCache retrieves the data from the memory and returns it.
func (ls *LeaderboardService) getFromMemCache(key string) *dto.Leaderboard {
	if memCachedData := ls.memCache.Get(key); memCachedData != nil {
		return memCachedData.(*dto.Leaderboard)
	}
	return nil
}

// getFromRedis retrieves the data from the redis.
func (ls *LeaderboardService) getFromRedis(key string) *dto.Leaderboard {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*200)
	defer cancel()

	redisCached, err := ls.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var board dto.Leaderboard
	if err := json.Unmarshal([]byte(redisCached), &board); err != nil {
		return nil
	}

	return &board
}

// getLeaderboardKey generates the cache key.
func (ls *LeaderboardService) getLeaderboardKey(scope *filters.Scope) string {
	return "leaderboard:" + scope.Key()
}

// populateCaches will set the mem cache and redis cache.
func (ls *LeaderboardService) populateCaches(key string, data *dto.Leaderboard) {
	ls.memCache.Set(key, data, LeaderboardMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		ls.redis.Set(context.Background(), key, string(j), LeaderboardRedisCacheDuration)
	}
}
