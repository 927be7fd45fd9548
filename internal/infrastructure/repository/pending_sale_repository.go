package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pospoint/terminal-api/internal/domain/entity"
	domainRepo "github.com/pospoint/terminal-api/internal/domain/repository"
	"gorm.io/gorm"
)

type pendingSaleRepository struct {
	db *gorm.DB
}

// NewPendingSaleRepository creates a new pending sale repository
func NewPendingSaleRepository(db *gorm.DB) domainRepo.PendingSaleRepository {
	return &pendingSaleRepository{db: db}
}

func (r *pendingSaleRepository) Enqueue(ctx context.Context, sale *entity.PendingSale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *pendingSaleRepository) ListPending(ctx context.Context, limit int) ([]entity.PendingSale, error) {
	var sales []entity.PendingSale
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&sales).Error
	return sales, err
}

func (r *pendingSaleRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	return r.db.WithContext(ctx).Model(&entity.PendingSale{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		}).Error
}

func (r *pendingSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&entity.PendingSale{}, "id = ?", id).Error
}

func (r *pendingSaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PendingSale{}).Count(&count).Error
	return count, err
}
