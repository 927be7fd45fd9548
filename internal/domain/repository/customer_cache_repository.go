package repository

import (
	"context"

	"github.com/pospoint/terminal-api/internal/domain/entity"
)

// CustomerCacheRepository defines the interface for the local customer cache
type CustomerCacheRepository interface {
	Upsert(ctx context.Context, customers []entity.Customer) error
	Search(ctx context.Context, term string, limit int) ([]entity.CachedCustomer, error)
}
