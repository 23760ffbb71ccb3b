package repository

import (
	"context"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

type TeamRepository interface {
	GetAll(ctx context.Context) ([]domain.Team, error)
}
