package repository

import (
	"context"
	"errors"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	domainRepo "github.com/pospoint/terminal-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) domainRepo.OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) GetByUsername(ctx context.Context, username string) (*entity.Operator, error) {
	var operator entity.Operator
	err := r.db.WithContext(ctx).First(&operator, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &operator, err
}

func (r *operatorRepository) Upsert(ctx context.Context, operator *entity.Operator) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"display_name", "password_hash", "role", "last_login_at", "updated_at",
		}),
	}).Create(operator).Error
}
