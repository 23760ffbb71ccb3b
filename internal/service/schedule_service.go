package service

import (
	"context"
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

type ScheduleService interface {
	// Initialize загружает начальные данные из внешнего источника
	// (или из встроенного набора, если источник недоступен).
	Initialize(ctx context.Context) error

	GetSchedule(ctx context.Context) (*domain.Schedule, error)
	LeaderGaps(ctx context.Context, teamID string, from, to time.Time) ([]domain.LeaderGap, error)

	CreateAssignment(ctx context.Context, resourceID, teamID string, start, end time.Time, role string, isTeamLeader bool) (*domain.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, patch domain.AssignmentUpdate) (*domain.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
	CreateTeam(ctx context.Context, name, description, color string) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	ChangeSummary(ctx context.Context) (*domain.ChangeSummary, error)
	HasUnsavedChanges(ctx context.Context) bool
	MarkSynchronized(ctx context.Context) error
	DiscardChanges(ctx context.Context) error
}
