package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/voll-fit/voll-api/internal/models"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
)

const summaryCacheKey = "summary:overview"

type studentAggregator interface {
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
}

type scheduleAggregator interface {
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
	UpcomingCounts(ctx context.Context) ([]models.DateCount, error)
}

type financialAggregator interface {
	Totals(ctx context.Context) (*models.FinancialTotals, error)
}

type summaryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type cacheLookupObserver interface {
	ObserveCacheLookup(hit bool)
}

// SummaryService composes the derived dashboard aggregates. Results are
// cached for a short TTL; cache failures degrade to a recompute.
type SummaryService struct {
	students  studentAggregator
	schedules scheduleAggregator
	financial financialAggregator
	cache     summaryCache
	metrics   cacheLookupObserver
	logger    *zap.Logger
	ttl       time.Duration
	now       func() time.Time
}

// SummaryServiceParams groups constructor dependencies.
type SummaryServiceParams struct {
	Students  studentAggregator
	Schedules scheduleAggregator
	Financial financialAggregator
	Cache     summaryCache
	Metrics   cacheLookupObserver
	Logger    *zap.Logger
	CacheTTL  time.Duration
}

// NewSummaryService constructs a SummaryService with sane defaults.
func NewSummaryService(params SummaryServiceParams) *SummaryService {
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{
		students:  params.Students,
		schedules: params.Schedules,
		financial: params.Financial,
		cache:     params.Cache,
		metrics:   params.Metrics,
		logger:    logger,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Overview returns the dashboard summary and whether it came from cache.
func (s *SummaryService) Overview(ctx context.Context) (*models.Summary, bool, error) {
	if s.cache != nil {
		var cached models.Summary
		if err := s.cache.Get(ctx, summaryCacheKey, &cached); err == nil {
			s.observeCache(true)
			return &cached, true, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("summary cache read failed", zap.Error(err))
		}
	}
	s.observeCache(false)

	summary, err := s.compute(ctx)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summaryCacheKey, summary, s.ttl); err != nil {
			s.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}
	return summary, false, nil
}

func (s *SummaryService) compute(ctx context.Context) (*models.Summary, error) {
	studentCounts, err := s.students.CountByStatus(ctx)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	scheduleCounts, err := s.schedules.CountByStatus(ctx)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	upcoming, err := s.schedules.UpcomingCounts(ctx)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	totals, err := s.financial.Totals(ctx)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}

	today := s.now().Format("2006-01-02")
	todayCount := 0
	for _, bucket := range upcoming {
		if bucket.Date == today {
			todayCount = bucket.Count
			break
		}
	}

	return &models.Summary{
		Students: models.StudentSummary{
			Total:    sumCounts(studentCounts),
			ByStatus: studentCounts,
		},
		Schedules: models.ScheduleSummary{
			Total:    sumCounts(scheduleCounts),
			ByStatus: scheduleCounts,
			Today:    todayCount,
			Upcoming: upcoming,
		},
		Financial: *totals,
	}, nil
}

func (s *SummaryService) observeCache(hit bool) {
	if s.metrics != nil {
		s.metrics.ObserveCacheLookup(hit)
	}
}

func sumCounts(counts []models.StatusCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}
