package repository

import (
	"context"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

type AssignmentRepository interface {
	GetAll(ctx context.Context) ([]domain.Assignment, error)
}
