package repository

import (
	"context"

	"github.com/pospoint/terminal-api/internal/domain/entity"
)

// OperatorRepository defines the interface for cached operator credentials
type OperatorRepository interface {
	GetByUsername(ctx context.Context, username string) (*entity.Operator, error)
	Upsert(ctx context.Context, operator *entity.Operator) error
}
