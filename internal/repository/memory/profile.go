package memory

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/repository"
	"context"
)

type profileRepository struct {
	db *profileTable
}

func NewProfileRepository(db *DB) repository.ProfileRepository {
	return &profileRepository{db: db.profile}
}

func (repo *profileRepository) Get(ctx context.Context) (domain.Profile, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.row, nil
}

func (repo *profileRepository) Save(ctx context.Context, profile domain.Profile) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.row = profile
	return nil
}
