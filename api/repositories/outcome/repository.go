package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/darkademic/oraladder/api/filters"
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/database/models"
	"github.com/darkademic/oraladder/pkg/messages"

	"gorm.io/gorm"
)

// OutcomeRepository is the public interface for accessing the match outcome repository.
type OutcomeRepository interface {
	RatingsFor(ctx context.Context, scope *filters.Scope, profileID int64) ([]float64, error)
	MatchesInvolving(ctx context.Context, scope *filters.Scope, profileID int64, limit int) ([]RawMatchRow, error)
	AllMatches(ctx context.Context, scope *filters.Scope, limit int) ([]RawMatchRow, error)
	FactionHistogramFor(ctx context.Context, scope *filters.Scope, profileID int64) ([]HistogramRow, error)
	GlobalFactionHistogram(ctx context.Context, scope *filters.Scope) ([]HistogramRow, error)
	MapHistogramFor(ctx context.Context, scope *filters.Scope, profileID int64) (wins []HistogramRow, losses []HistogramRow, err error)
	GlobalMapHistogram(ctx context.Context, scope *filters.Scope) ([]HistogramRow, error)
	DailyActivity(ctx context.Context, scope *filters.Scope) ([]ActivityRow, error)
	CountOutcomes(ctx context.Context, scope *filters.Scope) (int64, error)
	AvgDurationSeconds(ctx context.Context, scope *filters.Scope) (float64, error)
	ReplayFile(ctx context.Context, scope *filters.Scope, hash string) (string, error)
}

// outcomeRepository repository structure.
type outcomeRepository struct {
	registry *database.Registry
}

// NewOutcomeRepository creates an outcome repository.
func NewOutcomeRepository(registry *database.Registry) OutcomeRepository {
	return &outcomeRepository{registry: registry}
}

// RawMatchRow is one outcome joined with both participants, plus the
// rating movement each slot took from the match.
type RawMatchRow struct {
	Hash      string    `gorm:"column:hash"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`

	Profile0 int64 `gorm:"column:profile_id0"`
	Profile1 int64 `gorm:"column:profile_id1"`

	Diff0 float64 `gorm:"column:diff0"`
	Diff1 float64 `gorm:"column:diff1"`

	P0Name   string `gorm:"column:p0_name"`
	P1Name   string `gorm:"column:p1_name"`
	P0Banned bool   `gorm:"column:p0_banned"`
	P1Banned bool   `gorm:"column:p1_banned"`

	MapTitle string `gorm:"column:map_title"`
	Filename string `gorm:"column:filename"`
}

// HistogramRow is one bucket of a grouped count.
type HistogramRow struct {
	Name  string `gorm:"column:name"`
	Count int    `gorm:"column:count"`
}

// ActivityRow is the match count of a single calendar day.
type ActivityRow struct {
	Day   string `gorm:"column:day"`
	Count int    `gorm:"column:count"`
}

const matchRowSelect = `
	SELECT
		o.hash,
		o.start_time,
		o.end_time,
		o.profile_id0,
		o.profile_id1,
		o.rating_0 - o.rating_0_prv AS diff0,
		o.rating_1 - o.rating_1_prv AS diff1,
		p0.profile_name AS p0_name,
		p1.profile_name AS p1_name,
		p0.banned AS p0_banned,
		p1.banned AS p1_banned,
		o.map_title,
		o.filename
	FROM outcomes o
	JOIN players p0 ON p0.profile_id = o.profile_id0
	JOIN players p1 ON p1.profile_id = o.profile_id1
`

// RatingsFor returns the player's post-match rating across every
// outcome they took part in, oldest first.
func (or *outcomeRepository) RatingsFor(ctx context.Context, scope *filters.Scope, profileID int64) ([]float64, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	var ratings []float64
	query := `
		SELECT CASE WHEN profile_id0 = ? THEN rating_0 ELSE rating_1 END AS rating
		FROM outcomes
		WHERE profile_id0 = ? OR profile_id1 = ?
		ORDER BY end_time ASC
	`

	if err := db.WithContext(ctx).Raw(query, profileID, profileID, profileID).Scan(&ratings).Error; err != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return ratings, nil
}

// MatchesInvolving returns the player's most recent matches, newest
// first.
func (or *outcomeRepository) MatchesInvolving(ctx context.Context, scope *filters.Scope, profileID int64, limit int) ([]RawMatchRow, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	var rows []RawMatchRow
	query := matchRowSelect + `
		WHERE o.profile_id0 = ? OR o.profile_id1 = ?
		ORDER BY o.end_time DESC
		LIMIT ?
	`

	if err := db.WithContext(ctx).Raw(query, profileID, profileID, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return rows, nil
}

// AllMatches returns the most recent matches across the whole ladder,
// newest first.
func (or *outcomeRepository) AllMatches(ctx context.Context, scope *filters.Scope, limit int) ([]RawMatchRow, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	var rows []RawMatchRow
	query := matchRowSelect + `
		ORDER BY o.end_time DESC
		LIMIT ?
	`

	if err := db.WithContext(ctx).Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return rows, nil
}

// FactionHistogramFor counts the factions the player picked across
// their matches, whichever slot they sat in.
func (or *outcomeRepository) FactionHistogramFor(ctx context.Context, scope *filters.Scope, profileID int64) ([]HistogramRow, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	var rows []HistogramRow
	query := `
		SELECT
			CASE WHEN profile_id0 = ? THEN selected_faction_0 ELSE selected_faction_1 END AS name,
			COUNT(*) AS count
		FROM outcomes
		WHERE profile_id0 = ? OR profile_id1 = ?
		GROUP BY name
		ORDER BY COUNT(*) DESC, name ASC
	`

	if err := db.WithContext(ctx).Raw(query, profileID, profileID, profileID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return rows, nil
}

// GlobalFactionHistogram counts faction picks across every match and
// both slots.
func (or *outcomeRepository) GlobalFactionHistogram(ctx context.Context, scope *filters.Scope) ([]HistogramRow, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	var rows []HistogramRow
	query := `
		SELECT name, SUM(cnt) AS count
		FROM (
			SELECT selected_faction_0 AS name, COUNT(*) AS cnt FROM outcomes GROUP BY selected_faction_0
			UNION ALL
			SELECT selected_faction_1 AS name, COUNT(*) AS cnt FROM outcomes GROUP BY selected_faction_1
		)
		GROUP BY name
		ORDER BY SUM(cnt) DESC, name ASC
	`

	if err := db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return rows, nil
}

// MapHistogramFor counts the player's wins and losses per map. The
// winner always occupies slot 0 of an outcome.
func (or *outcomeRepository) MapHistogramFor(ctx context.Context, scope *filters.Scope, profileID int64) ([]HistogramRow, []HistogramRow, error) {
	if scope == nil {
		return nil, nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, nil, err
	}

	query := `
		SELECT map_title AS name, COUNT(*) AS count
		FROM outcomes
		WHERE %s = ?
		GROUP BY map_title
		ORDER BY COUNT(*) DESC, name ASC
	`

	var wins []HistogramRow
	if err := db.WithContext(ctx).Raw(fmt.Sprintf(query, "profile_id0"), profileID).Scan(&wins).Error; err != nil {
		return nil, nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	var losses []HistogramRow
	if err := db.WithContext(ctx).Raw(fmt.Sprintf(query, "profile_id1"), profileID).Scan(&losses).Error; err != nil {
		return nil, nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return wins, losses, nil
}

// GlobalMapHistogram counts matches per map across the whole ladder.
func (or *outcomeRepository) GlobalMapHistogram(ctx context.Context, scope *filters.Scope) ([]HistogramRow, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	var rows []HistogramRow
	query := `
		SELECT map_title AS name, COUNT(*) AS count
		FROM outcomes
		GROUP BY map_title
		ORDER BY COUNT(*) DESC, name ASC
	`

	if err := db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return rows, nil
}

// DailyActivity counts matches per calendar day, oldest day first.
// Days without matches produce no row.
func (or *outcomeRepository) DailyActivity(ctx context.Context, scope *filters.Scope) ([]ActivityRow, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	var rows []ActivityRow
	query := `
		SELECT date(end_time) AS day, COUNT(*) AS count
		FROM outcomes
		GROUP BY day
		ORDER BY day ASC
	`

	if err := db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return rows, nil
}

// CountOutcomes returns how many matches the ledger holds.
func (or *outcomeRepository) CountOutcomes(ctx context.Context, scope *filters.Scope) (int64, error) {
	if scope == nil {
		return 0, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Outcome{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return count, nil
}

// AvgDurationSeconds returns the mean match length across the whole
// ledger, zero when the ledger is empty.
func (or *outcomeRepository) AvgDurationSeconds(ctx context.Context, scope *filters.Scope) (float64, error) {
	if scope == nil {
		return 0, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return 0, err
	}

	var avg float64
	query := `
		SELECT COALESCE(AVG(strftime('%s', end_time) - strftime('%s', start_time)), 0)
		FROM outcomes
	`

	if err := db.WithContext(ctx).Raw(query).Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return avg, nil
}

// ReplayFile resolves a replay hash to the stored file reference.
func (or *outcomeRepository) ReplayFile(ctx context.Context, scope *filters.Scope, hash string) (string, error) {
	if scope == nil {
		return "", fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := or.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return "", err
	}

	var filename string
	result := db.WithContext(ctx).
		Model(&models.Outcome{}).
		Select("filename").
		Where("hash = ?", hash).
		First(&filename)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", messages.ErrReplayNotFound
		}
		return "", fmt.Errorf(messages.LedgerQueryFailed+": %v", result.Error)
	}

	if filename == "" {
		return "", messages.ErrReplayNotFound
	}

	return filename, nil
}
