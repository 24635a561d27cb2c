package memory

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
)

type assignmentRepository struct {
	db *assignmentTable
}

// NewAssignmentRepository creates an assignment repository backed by db.
func NewAssignmentRepository(db *DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db.assignments}
}

func (repo *assignmentRepository) List(ctx context.Context) ([]domain.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	out := make([]domain.Assignment, 0, len(repo.db.rows))
	for _, a := range repo.db.rows {
		out = append(out, cloneAssignment(*a))
	}
	return out, nil
}

func (repo *assignmentRepository) GetByID(ctx context.Context, id int) (*domain.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	a, ok := repo.db.index[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := cloneAssignment(*a)
	return &cp, nil
}

func (repo *assignmentRepository) MarkSubmitted(ctx context.Context, id int, on domain.Date) (*domain.Assignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	a, ok := repo.db.index[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	submitted := on
	a.SubmittedDate = &submitted
	a.Status = domain.StatusSubmitted

	cp := cloneAssignment(*a)
	return &cp, nil
}
