package playerservice

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/darkademic/oraladder/api/cache"
	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	playerrepo "github.com/darkademic/oraladder/api/repositories/player"
	"github.com/darkademic/oraladder/pkg/charts"
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/display"
	"github.com/darkademic/oraladder/pkg/mods"
)

const (
	PlayerMemoryCacheDuration = time.Minute
	PlayerRedisCacheDuration  = 5 * time.Minute

	dateTimeLayout = "2006-01-02 15:04:05"
)

type PlayerRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Player service assembling the full profile page payload.
type PlayerService struct {
	memCache cache.MemCache
	redis    PlayerRedisClient

	minDatapoints int
	curveWidth    int
	gamesLimit    int

	PlayerRepository  playerrepo.PlayerRepository
	OutcomeRepository outcomerepo.OutcomeRepository
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	Registry *database.Registry
	MemCache cache.MemCache
	Redis    PlayerRedisClient

	MinDatapoints int
	CurveWidth    int
	GamesLimit    int
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		memCache:          deps.MemCache,
		redis:             deps.Redis,
		minDatapoints:     deps.MinDatapoints,
		curveWidth:        deps.CurveWidth,
		gamesLimit:        deps.GamesLimit,
		PlayerRepository:  playerrepo.NewPlayerRepository(deps.Registry),
		OutcomeRepository: outcomerepo.NewOutcomeRepository(deps.Registry),
	}
}

// GetPlayerProfile returns the full profile for one player: identity,
// standing, rating curve, faction and map breakdowns, and the recent
// match log.
func (ps *PlayerService) GetPlayerProfile(ctx context.Context, scope *filters.Scope, profileID int64) (*dto.PlayerProfile, error) {
	key := ps.getPlayerKey(scope, profileID)

	if mem := ps.getFromMemCache(key); mem != nil {
		return mem, nil
	}

	if redisData := ps.getFromRedis(key); redisData != nil {
		ps.memCache.Set(key, redisData, PlayerMemoryCacheDuration)
		return redisData, nil
	}

	info, err := ps.PlayerRepository.GetPlayerInfo(ctx, scope, profileID)
	if err != nil {
		return nil, err
	}

	ratings, err := ps.OutcomeRepository.RatingsFor(ctx, scope, profileID)
	if err != nil {
		return nil, err
	}

	factionRows, err := ps.OutcomeRepository.FactionHistogramFor(ctx, scope, profileID)
	if err != nil {
		return nil, err
	}

	winRows, lossRows, err := ps.OutcomeRepository.MapHistogramFor(ctx, scope, profileID)
	if err != nil {
		return nil, err
	}

	matchRows, err := ps.OutcomeRepository.MatchesInvolving(ctx, scope, profileID, ps.gamesLimit)
	if err != nil {
		return nil, err
	}

	played := info.Wins + info.Losses

	var winRate float64
	if played > 0 {
		winRate = float64(info.Wins) / float64(played) * 100
	}

	profile := &dto.PlayerProfile{
		ProfileID: info.ProfileID,
		Name:      info.ProfileName,
		AvatarURL: info.AvatarURL,

		Rating:  info.Rating,
		Diff:    info.Rating - info.PrvRating,
		Rank:    info.LadderRank,
		Wins:    info.Wins,
		Losses:  info.Losses,
		Played:  played,
		WinRate: winRate,

		AvgGameDuration: display.FormatSeconds(info.AvgDurationSeconds),

		RatingCurve: ps.buildRatingCurve(ratings),
		Factions:    buildFactionHistogram(factionRows),
		Maps:        buildMapWinLoss(winRows, lossRows),
		Games:       buildGameLog(scope, profileID, matchRows),
	}

	ps.populateCaches(key, profile)

	return profile, nil
}

// buildRatingCurve resamples the rating history to the fixed chart
// width. The first datapoints cover the placement phase and are
// dropped before resampling.
func (ps *PlayerService) buildRatingCurve(ratings []float64) dto.RatingCurve {
	var tail []float64
	if len(ratings) > ps.minDatapoints {
		tail = ratings[ps.minDatapoints:]
	}

	points := charts.Resample(tail, ps.curveWidth)

	return dto.RatingCurve{
		Labels: make([]string, len(points)),
		Points: points,
	}
}

// buildFactionHistogram shapes the grouped faction counts for the pie
// chart.
func buildFactionHistogram(rows []outcomerepo.HistogramRow) dto.Histogram {
	histogram := dto.Histogram{
		Names:  make([]string, 0, len(rows)),
		Counts: make([]int, 0, len(rows)),
		Colors: charts.Palette(len(rows)),
	}

	for _, row := range rows {
		histogram.Names = append(histogram.Names, row.Name)
		histogram.Counts = append(histogram.Counts, row.Count)
		histogram.Total += row.Count
	}

	return histogram
}

// buildMapWinLoss merges the win and loss counts into one diverging
// series. Map variants that only differ by their bracketed tag merge
// into a single bucket, and losses come out negative.
func buildMapWinLoss(wins, losses []outcomerepo.HistogramRow) dto.MapWinLoss {
	var order []string
	seen := make(map[string]bool)
	winCounts := make(map[string]int)
	lossCounts := make(map[string]int)

	for _, row := range wins {
		name := display.CleanMapTitle(row.Name)
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
		winCounts[name] += row.Count
	}

	for _, row := range losses {
		name := display.CleanMapTitle(row.Name)
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
		lossCounts[name] += row.Count
	}

	result := dto.MapWinLoss{
		Names:  make([]string, 0, len(order)),
		Wins:   make([]int, 0, len(order)),
		Losses: make([]int, 0, len(order)),
	}

	for _, name := range order {
		result.Names = append(result.Names, name)
		result.Wins = append(result.Wins, winCounts[name])
		result.Losses = append(result.Losses, -lossCounts[name])
	}

	return result
}

// buildGameLog shapes the recent match rows into the profile match
// log. The walk stops at the first row where the viewed player is
// banned, and rows against banned opponents keep the result but lose
// the opponent identity and the replay link.
func buildGameLog(scope *filters.Scope, profileID int64, rows []outcomerepo.RawMatchRow) []*dto.PlayerGame {
	mod := mods.Get(scope.Mod)

	games := make([]*dto.PlayerGame, 0, len(rows))
	for _, row := range rows {
		wonSlot := row.Profile0 == profileID

		selfBanned := row.P1Banned
		opponentBanned := row.P0Banned
		if wonSlot {
			selfBanned = row.P0Banned
			opponentBanned = row.P1Banned
		}

		if selfBanned {
			break
		}

		game := &dto.PlayerGame{
			Date:     row.StartTime.Format(dateTimeLayout),
			Duration: display.FormatDuration(row.StartTime, row.EndTime),
			Map:      display.CleanMapTitle(row.MapTitle),
		}

		if wonSlot {
			game.Outcome = "Won"
			game.Diff = row.Diff0
			game.Opponent = row.P1Name
			game.OpponentID = row.Profile1
		} else {
			game.Outcome = "Lost"
			game.Diff = row.Diff1
			game.Opponent = row.P0Name
			game.OpponentID = row.Profile0
		}

		if opponentBanned {
			game.Opponent = ""
			game.OpponentID = 0
			game.OpponentBanned = true
		} else if mod.SupportsAnalysis && row.Filename != "" {
			game.Hash = row.Hash
		}

		games = append(games, game)
	}

	return games
}

// getFromMemCache retrieves the data from the memory and returns it.
func (ps *PlayerService) getFromMemCache(key string) *dto.PlayerProfile {
	if memCachedData := ps.memCache.Get(key); memCachedData != nil {
		return memCachedData.(*dto.PlayerProfile)
	}
	return nil
}

// getFromRedis retrieves the data from the redis.
func (ps *PlayerService) getFromRedis(key string) *dto.PlayerProfile {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*200)
	defer cancel()

	redisCached, err := ps.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var profile dto.PlayerProfile
	if err := json.Unmarshal([]byte(redisCached), &profile); err != nil {
		return nil
	}

	return &profile
}

// getPlayerKey generates the cache key.
func (ps *PlayerService) getPlayerKey(scope *filters.Scope, profileID int64) string {
	return "player:" + strconv.FormatInt(profileID, 10) + ":" + scope.Key()
}

// populateCaches will set the mem cache and redis cache.
func (ps *PlayerService) populateCaches(key string, data *dto.PlayerProfile) {
	ps.memCache.Set(key, data, PlayerMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		ps.redis.Set(context.Background(), key, string(j), PlayerRedisCacheDuration)
	}
}
