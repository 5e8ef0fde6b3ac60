package statsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/darkademic/oraladder/api/dto"
	"github.com/darkademic/oraladder/api/filters"
	outcomerepo "github.com/darkademic/oraladder/api/repositories/outcome"
	servicetestutil "github.com/darkademic/oraladder/api/services/testutil"
	"github.com/darkademic/oraladder/internal/testutil"

	"github.com/stretchr/testify/assert"
)

// Simple test for asserting that everything is fine with the stats service creation.
func TestNewStatsService(t *testing.T) {
	_, _, _, mockMemCache, mockRedisClient := setupTestService()
	deps := &StatsServiceDeps{
		MemCache: mockMemCache,
		Redis:    mockRedisClient,
	}

	service := NewStatsService(deps)
	assert.NotNil(t, service)
	assert.NotNil(t, service.PlayerRepository)
	assert.NotNil(t, service.OutcomeRepository)
}

// Run tests on the possible outcomes of the GetGlobalStats.
func TestGetGlobalStats(t *testing.T) {
	tests := []struct {
		name          string
		returnData    *dto.GlobalStats
		testStrategy  string
		scope         *filters.Scope
		expectedError error
	}{
		{
			name:         "fromMemCache",
			returnData:   createExpectedStats(),
			testStrategy: "memcache",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:         "fromRedis",
			returnData:   createExpectedStats(),
			testStrategy: "redis",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:         "fromRepo",
			returnData:   createExpectedStats(),
			testStrategy: "nocache",
			scope:        &filters.Scope{Mod: "ra", Period: "all"},
		},
		{
			name:          "fromRepoErr",
			returnData:    nil,
			testStrategy:  "nocache",
			scope:         &filters.Scope{Mod: "ra", Period: "all"},
			expectedError: errors.New(testutil.DatabaseError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockPlayerRepository, mockOutcomeRepository, mockMemCache, mockRedis := setupTestService()

			key := service.getStatsKey(tt.scope)

			setupMocks(mockSetup{
				err:            tt.expectedError,
				scope:          tt.scope,
				key:            key,
				memCache:       mockMemCache,
				redis:          mockRedis,
				playerRepo:     mockPlayerRepository,
				outcomeRepo:    mockOutcomeRepository,
				expectedResult: tt.returnData,
				strategy:       tt.testStrategy,
			})

			result, err := service.GetGlobalStats(context.Background(), tt.scope)

			assertStatsResult(t, result, err, tt.returnData, tt.expectedError)

			servicetestutil.VerifyAllMocks(t, mockMemCache, mockRedis, mockPlayerRepository, mockOutcomeRepository)
		})
	}
}

// Quiet days appear as zeros and weigh into the mean.
func TestBuildActivityTimeline(t *testing.T) {
	service, _, _, _, _ := setupTestService()

	tests := []struct {
		name     string
		rows     []outcomerepo.ActivityRow
		expected dto.ActivityTimeline
	}{
		{
			name: "gapsfilled",
			rows: createRepoActivityRows(),
			expected: dto.ActivityTimeline{
				Dates:      []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"},
				Counts:     []int{1, 0, 0, 1},
				MeanPerDay: 0.5,
			},
		},
		{
			name: "singleday",
			rows: []outcomerepo.ActivityRow{{Day: "2024-01-04", Count: 3}},
			expected: dto.ActivityTimeline{
				Dates:      []string{"2024-01-04"},
				Counts:     []int{3},
				MeanPerDay: 3,
			},
		},
		{
			name: "emptyledger",
			rows: nil,
			expected: dto.ActivityTimeline{
				Dates:  []string{},
				Counts: []int{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.buildActivityTimeline(tt.rows))
		})
	}
}

// Map buckets differing only by their bracketed tag merge into one.
func TestBuildMapHistogram(t *testing.T) {
	histogram := buildMapHistogram(createRepoMapRows())

	assert.Equal(t, []string{"Open Field", "Ruins"}, histogram.Names)
	assert.Equal(t, []int{2, 2}, histogram.Counts)
	assert.Equal(t, 4, histogram.Total)
	assert.Len(t, histogram.Colors, 2)
}

// Verify the cache key composition.
func TestGetStatsKey(t *testing.T) {
	service, _, _, _, _ := setupTestService()

	key := service.getStatsKey(&filters.Scope{Mod: "ra", Period: "all"})
	assert.Equal(t, "stats:mod_ra:period_all", key)
}
