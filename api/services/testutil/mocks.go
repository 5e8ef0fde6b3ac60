package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	playerrepo "github.com/darkademic/oraladder/api/repositories/player"
	"github.com/darkademic/oraladder/pkg/database/models"

	"github.com/stretchr/testify/mock"
)

// Matcher name for the context produced by context.WithTimeout.
const DefaultTimerCtx = "*context.timerCtx"

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mock implementations.
// ============================================================================

// Player repository mock implementation.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) RankablePlayers(ctx context.Context, scope *filters.Scope, limit int) ([]*models.Player, error) {
	args := m.Called(ctx, scope, limit)
	return args.Get(0).([]*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerInfo(ctx context.Context, scope *filters.Scope, profileID int64) (*playerrepo.RawPlayerInfo, error) {
	args := m.Called(ctx, scope, profileID)
	return args.Get(0).(*playerrepo.RawPlayerInfo), args.Error(1)
}

func (m *MockPlayerRepository) CountPlayers(ctx context.Context, scope *filters.Scope) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

// Outcome repository mock implementation.
type MockOutcomeRepository struct {
	mock.Mock
}

func (m *MockOutcomeRepository) RatingsFor(ctx context.Context, scope *filters.Scope, profileID int64) ([]float64, error) {
	args := m.Called(ctx, scope, profileID)
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockOutcomeRepository) MatchesInvolving(ctx context.Context, scope *filters.Scope, profileID int64, limit int) ([]outcomerepo.RawMatchRow, error) {
	args := m.Called(ctx, scope, profileID, limit)
	return args.Get(0).([]outcomerepo.RawMatchRow), args.Error(1)
}

func (m *MockOutcomeRepository) AllMatches(ctx context.Context, scope *filters.Scope, limit int) ([]outcomerepo.RawMatchRow, error) {
	args := m.Called(ctx, scope, limit)
	return args.Get(0).([]outcomerepo.RawMatchRow), args.Error(1)
}

func (m *MockOutcomeRepository) FactionHistogramFor(ctx context.Context, scope *filters.Scope, profileID int64) ([]outcomerepo.HistogramRow, error) {
	args := m.Called(ctx, scope, profileID)
	return args.Get(0).([]outcomerepo.HistogramRow), args.Error(1)
}

func (m *MockOutcomeRepository) GlobalFactionHistogram(ctx context.Context, scope *filters.Scope) ([]outcomerepo.HistogramRow, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).([]outcomerepo.HistogramRow), args.Error(1)
}

func (m *MockOutcomeRepository) MapHistogramFor(ctx context.Context, scope *filters.Scope, profileID int64) ([]outcomerepo.HistogramRow, []outcomerepo.HistogramRow, error) {
	args := m.Called(ctx, scope, profileID)
	return args.Get(0).([]outcomerepo.HistogramRow), args.Get(1).([]outcomerepo.HistogramRow), args.Error(2)
}

func (m *MockOutcomeRepository) GlobalMapHistogram(ctx context.Context, scope *filters.Scope) ([]outcomerepo.HistogramRow, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).([]outcomerepo.HistogramRow), args.Error(1)
}

func (m *MockOutcomeRepository) DailyActivity(ctx context.Context, scope *filters.Scope) ([]outcomerepo.ActivityRow, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).([]outcomerepo.ActivityRow), args.Error(1)
}

func (m *MockOutcomeRepository) CountOutcomes(ctx context.Context, scope *filters.Scope) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOutcomeRepository) AvgDurationSeconds(ctx context.Context, scope *filters.Scope) (float64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOutcomeRepository) ReplayFile(ctx context.Context, scope *filters.Scope, hash string) (string, error) {
	args := m.Called(ctx, scope, hash)
	return args.Get(0).(string), args.Error(1)
}

// ============================================================================
// Cache mock implementations.
// ============================================================================

// MemCache mock implementation.
type MockMemCache struct {
	mock.Mock
}

func (m *MockMemCache) Close() {
	m.Called()
}

func (m *MockMemCache) Set(key string, value any, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache) Get(key string) any {
	args := m.Called(key)
	return args.Get(0)
}

// Redis client mock implementation shared by the analytics services.
type MockLadderRedisClient struct {
	mock.Mock
}

func (m *MockLadderRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(string), args.Error(1)
}

func (m *MockLadderRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
