package repositories

import (
	"context"
	"fmt"

	"github.com/darkademic/oraladder/api/filters"
	"github.com/darkademic/oraladder/pkg/database"
	"github.com/darkademic/oraladder/pkg/database/models"
	"github.com/darkademic/oraladder/pkg/messages"
)

// PlayerRepository is the public interface for accessing the player repository.
type PlayerRepository interface {
	RankablePlayers(ctx context.Context, scope *filters.Scope, limit int) ([]*models.Player, error)
	GetPlayerInfo(ctx context.Context, scope *filters.Scope, profileID int64) (*RawPlayerInfo, error)
	CountPlayers(ctx context.Context, scope *filters.Scope) (int64, error)
}

// playerRepository repository structure.
type playerRepository struct {
	registry *database.Registry
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(registry *database.Registry) PlayerRepository {
	return &playerRepository{registry: registry}
}

// RawPlayerInfo is one player row joined with its computed ladder
// position and average game length.
type RawPlayerInfo struct {
	ProfileID   int64   `gorm:"column:profile_id"`
	ProfileName string  `gorm:"column:profile_name"`
	AvatarURL   string  `gorm:"column:avatar_url"`
	Wins        int     `gorm:"column:wins"`
	Losses      int     `gorm:"column:losses"`
	Rating      float64 `gorm:"column:rating"`
	PrvRating   float64 `gorm:"column:prv_rating"`
	Banned      bool    `gorm:"column:banned"`

	LadderRank         int     `gorm:"column:ladder_rank"`
	AvgDurationSeconds float64 `gorm:"column:avg_duration_seconds"`
}

// RankablePlayers returns the rank-eligible players, best rating first.
func (pr *playerRepository) RankablePlayers(ctx context.Context, scope *filters.Scope, limit int) ([]*models.Player, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := pr.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	var players []*models.Player
	query := db.WithContext(ctx).
		Where("rating > 0 AND NOT banned").
		Order("rating desc").
		Limit(limit)

	if err := query.Find(&players).Error; err != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return players, nil
}

// GetPlayerInfo returns one player row together with its ladder rank
// and average game duration.
func (pr *playerRepository) GetPlayerInfo(ctx context.Context, scope *filters.Scope, profileID int64) (*RawPlayerInfo, error) {
	if scope == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := pr.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			p.profile_id,
			p.profile_name,
			p.avatar_url,
			p.wins,
			p.losses,
			p.rating,
			p.prv_rating,
			p.banned,
			(SELECT COUNT(*) + 1
			   FROM players r
			  WHERE r.rating > p.rating AND r.rating > 0 AND NOT r.banned) AS ladder_rank,
			(SELECT COALESCE(AVG(strftime('%s', o.end_time) - strftime('%s', o.start_time)), 0)
			   FROM outcomes o
			  WHERE o.profile_id0 = p.profile_id OR o.profile_id1 = p.profile_id) AS avg_duration_seconds
		FROM players p
		WHERE p.profile_id = ?
	`

	var info RawPlayerInfo
	result := db.WithContext(ctx).Raw(query, profileID).Scan(&info)
	if result.Error != nil {
		return nil, fmt.Errorf(messages.LedgerQueryFailed+": %v", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, messages.ErrPlayerNotFound
	}

	return &info, nil
}

// CountPlayers returns how many players the ledger knows about.
func (pr *playerRepository) CountPlayers(ctx context.Context, scope *filters.Scope) (int64, error) {
	if scope == nil {
		return 0, fmt.Errorf(messages.FiltersNotNil)
	}

	db, err := pr.registry.Resolve(scope.Mod, scope.Period)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Player{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf(messages.LedgerQueryFailed+": %v", err)
	}

	return count, nil
}
