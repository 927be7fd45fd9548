package repository

import (
	"context"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	domainRepo "github.com/pospoint/terminal-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type customerCacheRepository struct {
	db *gorm.DB
}

// NewCustomerCacheRepository creates a new customer cache repository
func NewCustomerCacheRepository(db *gorm.DB) domainRepo.CustomerCacheRepository {
	return &customerCacheRepository{db: db}
}

func (r *customerCacheRepository) Upsert(ctx context.Context, customers []entity.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	rows := make([]entity.CachedCustomer, 0, len(customers))
	for _, c := range customers {
		if c.ID == "" {
			continue
		}
		rows = append(rows, entity.CachedCustomer{
			CustomerID: c.ID.String(),
			Name:       c.Name,
			Phone:      c.Phone,
			Email:      c.Email,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "email", "updated_at"}),
	}).Create(&rows).Error
}

func (r *customerCacheRepository) Search(ctx context.Context, term string, limit int) ([]entity.CachedCustomer, error) {
	var customers []entity.CachedCustomer
	if limit <= 0 {
		limit = 20
	}

	query := r.db.WithContext(ctx).Model(&entity.CachedCustomer{})
	if term != "" {
		pattern := "%" + term + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?",
			pattern, pattern, pattern)
	}

	err := query.Order("name ASC").Limit(limit).Find(&customers).Error
	return customers, err
}
