package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voll-fit/voll-api/internal/models"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
)

type mockStudentAggregator struct {
	counts []models.StatusCount
	calls  int
}

func (m *mockStudentAggregator) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	m.calls++
	return m.counts, nil
}

type mockScheduleAggregator struct {
	counts   []models.StatusCount
	upcoming []models.DateCount
}

func (m *mockScheduleAggregator) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	return m.counts, nil
}

func (m *mockScheduleAggregator) UpcomingCounts(ctx context.Context) ([]models.DateCount, error) {
	return m.upcoming, nil
}

type mockFinancialAggregator struct {
	totals models.FinancialTotals
}

func (m *mockFinancialAggregator) Totals(ctx context.Context) (*models.FinancialTotals, error) {
	t := m.totals
	return &t, nil
}

type mockSummaryCache struct {
	stored map[string]*models.Summary
	ttls   map[string]time.Duration
}

func newMockSummaryCache() *mockSummaryCache {
	return &mockSummaryCache{
		stored: make(map[string]*models.Summary),
		ttls:   make(map[string]time.Duration),
	}
}

func (m *mockSummaryCache) Get(ctx context.Context, key string, dest interface{}) error {
	cached, ok := m.stored[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*dest.(*models.Summary) = *cached
	return nil
}

func (m *mockSummaryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.stored[key] = value.(*models.Summary)
	m.ttls[key] = ttl
	return nil
}

func newSummaryFixture(cache summaryCache) (*SummaryService, *mockStudentAggregator) {
	students := &mockStudentAggregator{counts: []models.StatusCount{
		{Status: "Ativo", Count: 8},
		{Status: "Inativo", Count: 2},
	}}
	svc := NewSummaryService(SummaryServiceParams{
		Students: students,
		Schedules: &mockScheduleAggregator{
			counts: []models.StatusCount{{Status: "Agendado", Count: 5}},
			upcoming: []models.DateCount{
				{Date: "2024-06-10", Count: 3},
				{Date: "2024-06-11", Count: 2},
			},
		},
		Financial: &mockFinancialAggregator{totals: models.FinancialTotals{
			Income:       1000,
			Expense:      250,
			Balance:      750,
			PendingCount: 4,
		}},
		Cache:    cache,
		CacheTTL: 30 * time.Second,
	})
	svc.now = func() time.Time {
		return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	}
	return svc, students
}

func TestSummaryServiceOverviewComputes(t *testing.T) {
	svc, _ := newSummaryFixture(nil)

	summary, hit, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 10, summary.Students.Total)
	assert.Equal(t, 5, summary.Schedules.Total)
	assert.Equal(t, 3, summary.Schedules.Today)
	assert.Len(t, summary.Schedules.Upcoming, 2)
	assert.Equal(t, 750.0, summary.Financial.Balance)
}

func TestSummaryServiceOverviewWritesCacheOnMiss(t *testing.T) {
	cache := newMockSummaryCache()
	svc, _ := newSummaryFixture(cache)

	_, hit, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	require.Contains(t, cache.stored, "summary:overview")
	assert.Equal(t, 30*time.Second, cache.ttls["summary:overview"])
}

func TestSummaryServiceOverviewServesFromCache(t *testing.T) {
	cache := newMockSummaryCache()
	svc, students := newSummaryFixture(cache)

	_, _, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, students.calls)

	summary, hit, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, students.calls, "cache hit must not touch the aggregators")
	assert.Equal(t, 10, summary.Students.Total)
}
