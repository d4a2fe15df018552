package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/routines/model"
	helper "schoolsite_backend/internals/helpers"
	"schoolsite_backend/internals/helpers/apperror"
	"schoolsite_backend/internals/helpers/repository"
)

type Repository interface {
	Replace(ctx context.Context, routine *model.RoutineModel) error
	List(ctx context.Context) ([]model.RoutineModel, error)
	FindByClass(ctx context.Context, className string) (*model.RoutineModel, error)
	DeleteByClass(ctx context.Context, className string) (int64, error)
}

type RoutineService struct {
	repo Repository
	log  *zap.Logger
}

func NewRoutineService(repo Repository, log *zap.Logger) *RoutineService {
	return &RoutineService{repo: repo, log: log.Named("routine")}
}

// Save: replace semantics per kelas. Setelah sukses hanya ada satu routine untuk className.
func (s *RoutineService) Save(ctx context.Context, className string, rows []model.RoutineRowModel) (*model.RoutineModel, error) {
	className = strings.TrimSpace(className)
	if className == "" || len(rows) == 0 {
		return nil, apperror.Validation("Class and routine data are required")
	}
	for i := range rows {
		if strings.TrimSpace(rows[i].RoutineRowTime) == "" {
			return nil, apperror.Validation("Class and routine data are required")
		}
		rows[i].RoutineRowPosition = i
	}

	routine := &model.RoutineModel{RoutineClassName: className, Rows: rows}
	if err := s.repo.Replace(ctx, routine); err != nil {
		if apperror.IsUniqueViolation(err) {
			// save lain untuk kelas yang sama menang lebih dulu
			return nil, apperror.Duplicate("A routine for this class is being saved, please retry")
		}
		s.log.Error("routine#save failed", zap.String("reqid", helper.RequestID(ctx)), zap.String("class", className), zap.Error(err))
		return nil, apperror.Persistence("save", err)
	}
	s.log.Info("routine#save ok", zap.String("reqid", helper.RequestID(ctx)), zap.String("class", className), zap.Int("rows", len(rows)))
	return routine, nil
}

func (s *RoutineService) List(ctx context.Context) ([]model.RoutineModel, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Persistence("list", err)
	}
	return items, nil
}

func (s *RoutineService) GetByClass(ctx context.Context, className string) (*model.RoutineModel, error) {
	m, err := s.repo.FindByClass(ctx, strings.TrimSpace(className))
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, apperror.NotFound("No routine found for this class")
	}
	if err != nil {
		return nil, apperror.Persistence("load", err)
	}
	return m, nil
}

func (s *RoutineService) DeleteByClass(ctx context.Context, className string) (int64, error) {
	className = strings.TrimSpace(className)
	n, err := s.repo.DeleteByClass(ctx, className)
	if err != nil {
		s.log.Error("routine#delete failed", zap.String("reqid", helper.RequestID(ctx)), zap.String("class", className), zap.Error(err))
		return 0, apperror.Persistence("delete", err)
	}
	s.log.Info("routine#delete", zap.String("reqid", helper.RequestID(ctx)), zap.String("class", className), zap.Int64("deleted", n))
	return n, nil
}

func DeletedMessage(n int64, className string) string {
	return fmt.Sprintf("%d routine(s) deleted for class %s", n, className)
}
