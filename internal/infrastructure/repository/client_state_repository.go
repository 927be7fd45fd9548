package repository

import (
	"context"
	"errors"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	domainRepo "github.com/pospoint/terminal-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type clientStateRepository struct {
	db *gorm.DB
}

// NewClientStateRepository creates a new client state repository
func NewClientStateRepository(db *gorm.DB) domainRepo.ClientStateRepository {
	return &clientStateRepository{db: db}
}

func (r *clientStateRepository) Get(ctx context.Context, key string) (string, error) {
	var state entity.ClientState
	err := r.db.WithContext(ctx).First(&state, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return state.Value, err
}

func (r *clientStateRepository) Set(ctx context.Context, key, value string) error {
	state := entity.ClientState{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&state).Error
}
