package memory

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
)

type courseRepository struct {
	db *courseTable
}

func NewCourseRepository(db *DB) repository.CourseRepository {
	return &courseRepository{db: db.courses}
}

func (repo *courseRepository) List(ctx context.Context) ([]domain.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return append([]domain.Course(nil), repo.db.rows...), nil
}

func (repo *courseRepository) GetByID(ctx context.Context, id int) (*domain.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, c := range repo.db.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}
