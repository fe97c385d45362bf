package review

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/JiaqinWu/DCPS-Salary/internal/correction"
	reviewerrors "github.com/JiaqinWu/DCPS-Salary/internal/review/errors"
	"github.com/JiaqinWu/DCPS-Salary/internal/salaryscale"
	"github.com/JiaqinWu/DCPS-Salary/internal/shared/contextutil"
	"github.com/JiaqinWu/DCPS-Salary/internal/workbook"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=review_service.go -destination=mock/review_service_mock.go -package=mock
type Service interface {
	Load(ctx context.Context, path string) (LoadSummaryResponse, error)
	Import(ctx context.Context, name string, r io.Reader) (LoadSummaryResponse, error)
	Current(ctx context.Context) (LoadSummaryResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetReview(ctx context.Context, employeeID int) (ReviewResponse, error)
}

// snapshot pairs a computed table with how it was produced. Both are
// immutable; a reload stores a new snapshot.
type snapshot struct {
	table   *correction.Table
	summary LoadSummaryResponse
}

type service struct {
	repo    workbook.Repository
	current atomic.Pointer[snapshot]
	sf      *singleflight.Group
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(repo workbook.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("review.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
		now:    time.Now,
	}
}

func (s *service) Load(ctx context.Context, path string) (LoadSummaryResponse, error) {
	// Concurrent reloads of the same file share one read and one computation.
	// The shared load outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do("file:"+path, func() (interface{}, error) {
		data, err := s.repo.ReadFile(shared, path)
		if err != nil {
			return nil, err
		}
		return s.apply(shared, data)
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load workbook failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return LoadSummaryResponse{}, err
	}

	return v.(LoadSummaryResponse), nil
}

func (s *service) Import(ctx context.Context, name string, r io.Reader) (LoadSummaryResponse, error) {
	data, err := s.repo.Read(ctx, name, r)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("import workbook failed",
			zap.String("source", name),
			zap.Error(err),
		)
		return LoadSummaryResponse{}, err
	}
	return s.apply(ctx, data)
}

// apply runs the computation phase and publishes the result.
func (s *service) apply(ctx context.Context, data workbook.Data) (LoadSummaryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	lookup, err := salaryscale.Build(data.Scale)
	if err != nil {
		return LoadSummaryResponse{}, err
	}
	table := correction.Build(data.Staff, lookup)
	stats := table.Stats()

	summary := LoadSummaryResponse{
		Source:             data.Source,
		LoadedAt:           s.now().UTC(),
		Employees:          stats.Employees,
		ScaleEntries:       lookup.Len(),
		DuplicateIDs:       stats.DuplicateIDs,
		OriginalUnmatched:  stats.OriginalUnmatched,
		CorrectedUnmatched: stats.CorrectedUnmatched,
		Underpaid:          stats.Underpaid,
	}
	s.current.Store(&snapshot{table: table, summary: summary})

	if len(stats.OriginalUnmatched) > 0 || len(stats.CorrectedUnmatched) > 0 {
		log.Warn("salary scale has no entry for some employees",
			zap.Ints("original_unmatched", stats.OriginalUnmatched),
			zap.Ints("corrected_unmatched", stats.CorrectedUnmatched),
		)
	}
	if len(stats.DuplicateIDs) > 0 {
		log.Warn("duplicate employee ids, first row kept", zap.Ints("employee_ids", stats.DuplicateIDs))
	}
	log.Info("salary review computed",
		zap.String("source", summary.Source),
		zap.Int("employees", summary.Employees),
		zap.Int("scale_entries", summary.ScaleEntries),
		zap.Int("underpaid", summary.Underpaid),
	)

	return summary, nil
}

func (s *service) loaded() (*snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, reviewerrors.ErrWorkbookNotLoaded
	}
	return snap, nil
}

func (s *service) Current(ctx context.Context) (LoadSummaryResponse, error) {
	snap, err := s.loaded()
	if err != nil {
		return LoadSummaryResponse{}, err
	}
	return snap.summary, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	snap, err := s.loaded()
	if err != nil {
		return nil, err
	}

	ids := snap.table.EmployeeIDs()
	options := make([]EmployeeOption, len(ids))
	for i, id := range ids {
		options[i] = EmployeeOption{EmployeeID: id, Label: EmployeeLabel(id)}
	}
	return options, nil
}

func (s *service) GetReview(ctx context.Context, employeeID int) (ReviewResponse, error) {
	if employeeID < 1 {
		return ReviewResponse{}, reviewerrors.ErrInvalidEmployeeID
	}

	snap, err := s.loaded()
	if err != nil {
		return ReviewResponse{}, err
	}

	record, ok := snap.table.Get(employeeID)
	if !ok {
		contextutil.GetLogger(ctx, s.logger).Debug("review requested for unknown employee",
			zap.Int("employee_id", employeeID),
		)
		return ReviewResponse{}, reviewerrors.ErrEmployeeNotFound
	}

	return mapToReview(record), nil
}
