package service

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
)

type CourseService interface {
	List(ctx context.Context, q CourseQuery) ([]domain.Course, error)
	// Active returns the running courses shown on the dashboard.
	Active(ctx context.Context) ([]domain.Course, error)
	Get(ctx context.Context, id int) (*domain.Course, error)
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context, q CourseQuery) ([]domain.Course, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCourses(all, q), nil
}

func (s *courseService) Active(ctx context.Context) ([]domain.Course, error) {
	return s.List(ctx, CourseQuery{Filter: CourseFilterActive})
}

func (s *courseService) Get(ctx context.Context, id int) (*domain.Course, error) {
	return s.repo.GetByID(ctx, id)
}
