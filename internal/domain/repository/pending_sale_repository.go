package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pospoint/terminal-api/internal/domain/entity"
)

// PendingSaleRepository defines the interface for the offline sale queue
type PendingSaleRepository interface {
	Enqueue(ctx context.Context, sale *entity.PendingSale) error
	ListPending(ctx context.Context, limit int) ([]entity.PendingSale, error)
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
