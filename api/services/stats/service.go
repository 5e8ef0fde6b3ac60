package statsservice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/darkademic/oraladder/api/cache"
	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	playerrepo "github.com/darkademic/oraladder/api/repositories/player"
	"github.com/darkademic/oraladder/pkg/charts"
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/display"
)

const (
	StatsMemoryCacheDuration = time.Minute
	StatsRedisCacheDuration  = 5 * time.Minute

	dateLayout = "2006-01-02"
)

type StatsRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Stats service aggregating the server-wide statistics page.
type StatsService struct {
	memCache cache.MemCache
	redis    StatsRedisClient
	now      func() time.Time

	PlayerRepository  playerrepo.PlayerRepository
	OutcomeRepository outcomerepo.OutcomeRepository
}

// StatsServiceDeps is the dependency list for the stats service.
type StatsServiceDeps struct {
	Registry *database.Registry
	MemCache cache.MemCache
	Redis    StatsRedisClient
}

// NewStatsService creates a stats service.
func NewStatsService(deps *StatsServiceDeps) *StatsService {
	return &StatsService{
		memCache:          deps.MemCache,
		redis:             deps.Redis,
		now:               time.Now,
		PlayerRepository:  playerrepo.NewPlayerRepository(deps.Registry),
		OutcomeRepository: outcomerepo.NewOutcomeRepository(deps.Registry),
	}
}

// GetGlobalStats returns the server-wide statistics for the given
// scope.
func (ss *StatsService) GetGlobalStats(ctx context.Context, scope *filters.Scope) (*dto.GlobalStats, error) {
	key := ss.getStatsKey(scope)

	if mem := ss.getFromMemCache(key); mem != nil {
		return mem, nil
	}

	if redisData := ss.getFromRedis(key); redisData != nil {
		ss.memCache.Set(key, redisData, StatsMemoryCacheDuration)
		return redisData, nil
	}

	nbGames, err := ss.OutcomeRepository.CountOutcomes(ctx, scope)
	if err != nil {
		return nil, err
	}

	nbPlayers, err := ss.PlayerRepository.CountPlayers(ctx, scope)
	if err != nil {
		return nil, err
	}

	avgDuration, err := ss.OutcomeRepository.AvgDurationSeconds(ctx, scope)
	if err != nil {
		return nil, err
	}

	factionRows, err := ss.OutcomeRepository.GlobalFactionHistogram(ctx, scope)
	if err != nil {
		return nil, err
	}

	mapRows, err := ss.OutcomeRepository.GlobalMapHistogram(ctx, scope)
	if err != nil {
		return nil, err
	}

	activityRows, err := ss.OutcomeRepository.DailyActivity(ctx, scope)
	if err != nil {
		return nil, err
	}

	stats := &dto.GlobalStats{
		NbGames:         int(nbGames),
		NbPlayers:       int(nbPlayers),
		AvgGameDuration: display.FormatSeconds(avgDuration),

		Factions: buildHistogram(factionRows),
		Maps:     buildMapHistogram(mapRows),
		Activity: ss.buildActivityTimeline(activityRows),
	}

	ss.populateCaches(key, stats)

	return stats, nil
}

// buildHistogram shapes grouped counts for the pie charts.
func buildHistogram(rows []outcomerepo.HistogramRow) dto.Histogram {
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

// buildMapHistogram merges map buckets that only differ by their
// bracketed tag before shaping the histogram.
func buildMapHistogram(rows []outcomerepo.HistogramRow) dto.Histogram {
	var order []string
	counts := make(map[string]int)

	for _, row := range rows {
		name := display.CleanMapTitle(row.Name)
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name] += row.Count
	}

	histogram := dto.Histogram{
		Names:  make([]string, 0, len(order)),
		Counts: make([]int, 0, len(order)),
		Colors: charts.Palette(len(order)),
	}

	for _, name := range order {
		histogram.Names = append(histogram.Names, name)
		histogram.Counts = append(histogram.Counts, counts[name])
		histogram.Total += counts[name]
	}

	return histogram
}

// buildActivityTimeline fills the per-day counts from the first
// recorded day through today. Quiet days count as zero and weigh into
// the mean.
func (ss *StatsService) buildActivityTimeline(rows []outcomerepo.ActivityRow) dto.ActivityTimeline {
	timeline := dto.ActivityTimeline{
		Dates:  []string{},
		Counts: []int{},
	}

	if len(rows) == 0 {
		return timeline
	}

	counts := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		counts[row.Day] = row.Count
		total += row.Count
	}

	start, err := time.Parse(dateLayout, rows[0].Day)
	if err != nil {
		return timeline
	}

	year, month, day := ss.now().UTC().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		timeline.Dates = append(timeline.Dates, date)
		timeline.Counts = append(timeline.Counts, counts[date])
	}

	timeline.MeanPerDay = float64(total) / float64(len(timeline.Dates))

	return timeline
}

// getFromMemCache retrieves the data from the memory and returns it.
func (ss *StatsService) getFromMemCache(key string) *dto.GlobalStats {
	if memCachedData := ss.memCache.Get(key); memCachedData != nil {
		return memCachedData.(*dto.GlobalStats)
	}
	return nil
}

// getFromRedis retrieves the data from the redis.
func (ss *StatsService) getFromRedis(key string) *dto.GlobalStats {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*200)
	defer cancel()

	redisCached, err := ss.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var stats dto.GlobalStats
	if err := json.Unmarshal([]byte(redisCached), &stats); err != nil {
		return nil
	}

	return &stats
}

// getStatsKey generates the cache key.
func (ss *StatsService) getStatsKey(scope *filters.Scope) string {
	return "stats:" + scope.Key()
}

// populateCaches will set the mem cache and redis cache.
func (ss *StatsService) populateCaches(key string, data *dto.GlobalStats) {
	ss.memCache.Set(key, data, StatsMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		ss.redis.Set(context.Background(), key, string(j), StatsRedisCacheDuration)
	}
}
