// Package static содержит встроенный демо-набор данных. Используется,
// когда внешняя система планирования недоступна, чтобы UI оставался рабочим.
package static

import (
	"context"
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

// weekStart - понедельник текущей недели в полночь, чтобы демо-данные
// всегда попадали в видимое окно планировщика.
func weekStart() time.Time {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

type teamRepository struct{}

func NewTeamRepository() *teamRepository { return &teamRepository{} }

func (r *teamRepository) GetAll(_ context.Context) ([]domain.Team, error) {
	base := weekStart()
	return []domain.Team{
		{ID: "t1", Name: "Crew Alpha", Description: "installation crew", Color: "#1976d2", CreatedAt: base},
		{ID: "t2", Name: "Crew Bravo", Description: "maintenance crew", Color: "#388e3c", CreatedAt: base},
	}, nil
}

type resourceRepository struct{}

func NewResourceRepository() *resourceRepository { return &resourceRepository{} }

func (r *resourceRepository) GetAll(_ context.Context) ([]domain.Resource, error) {
	return []domain.Resource{
		{ID: "r1", Name: "Alice Carter", Role: "Electrician"},
		{ID: "r2", Name: "Bob Miller", Role: "Plumber"},
		{ID: "r3", Name: "Carol Diaz", Role: "HVAC Technician"},
		{ID: "r4", Name: "Dan Foster", Role: "Welder"},
	}, nil
}

type assignmentRepository struct{}

func NewAssignmentRepository() *assignmentRepository { return &assignmentRepository{} }

func (r *assignmentRepository) GetAll(_ context.Context) ([]domain.Assignment, error) {
	base := weekStart()
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	return []domain.Assignment{
		{ID: "a1", ResourceID: "r1", TeamID: "t1", Start: day(0), End: day(3), Role: "foreman", IsTeamLeader: true},
		{ID: "a2", ResourceID: "r2", TeamID: "t1", Start: day(0), End: day(5)},
		{ID: "a3", ResourceID: "r3", TeamID: "t2", Start: day(1), End: day(4), IsTeamLeader: true},
		{ID: "a4", ResourceID: "r4", TeamID: "t2", Start: day(1), End: day(6)},
	}, nil
}
