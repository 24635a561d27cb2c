package memory

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
)

type statRepository struct {
	stats []domain.Stat
}

func NewStatRepository(db *DB) repository.StatRepository {
	return &statRepository{stats: db.stats}
}

func (repo *statRepository) List(ctx context.Context) ([]domain.Stat, error) {
	return append([]domain.Stat(nil), repo.stats...), nil
}
