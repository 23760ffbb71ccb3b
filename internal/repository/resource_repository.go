package repository

import (
	"context"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

type ResourceRepository interface {
	GetAll(ctx context.Context) ([]domain.Resource, error)
}
