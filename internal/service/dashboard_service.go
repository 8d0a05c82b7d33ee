package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/classboard/classboard-api/internal/dto"
	"github.com/classboard/classboard-api/internal/models"
)

type classLister interface {
	ListWithStudents(ctx context.Context, teacherID int64) ([]models.Class, error)
}

type profileGetter interface {
	Get(ctx context.Context, teacherID int64) (*models.Teacher, error)
}

// DashboardService composes the teacher dashboard payload.
type DashboardService struct {
	classes  classLister
	profiles profileGetter
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(classes classLister, profiles profileGetter, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{classes: classes, profiles: profiles, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Overview returns the composed dashboard and whether it came from cache.
func (s *DashboardService) Overview(ctx context.Context, teacherID int64) (*dto.DashboardResponse, bool, error) {
	cacheKey := dashboardCacheKey(teacherID)
	if s.cache.Enabled() {
		cached := &dto.DashboardResponse{}
		if hit, err := s.cache.Get(ctx, cacheKey, cached); err == nil && hit {
			return cached, true, nil
		}
	}

	teacher, err := s.profiles.Get(ctx, teacherID)
	if err != nil {
		return nil, false, err
	}

	classes, err := s.classes.ListWithStudents(ctx, teacherID)
	if err != nil {
		return nil, false, err
	}

	total := 0
	for _, class := range classes {
		total += len(class.Students)
	}

	overview := &dto.DashboardResponse{
		Teacher:       *teacher,
		Classes:       classes,
		TotalStudents: total,
	}

	if err := s.cache.Set(ctx, cacheKey, overview, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache dashboard", zap.Int64("teacher_id", teacherID), zap.Error(err))
	}
	return overview, false, nil
}

// Invalidate drops the cached dashboard after a mutation.
func (s *DashboardService) Invalidate(ctx context.Context, teacherID int64) {
	if err := s.cache.Invalidate(ctx, dashboardCacheKey(teacherID)); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Int64("teacher_id", teacherID), zap.Error(err))
	}
}

func dashboardCacheKey(teacherID int64) string {
	return fmt.Sprintf("dash:teacher:%d", teacherID)
}
