package service

import (
	"context"
	"log"
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
	"github.com/bagdasarian/crew-scheduler/internal/repository"
	"github.com/bagdasarian/crew-scheduler/internal/repository/static"
	"github.com/bagdasarian/crew-scheduler/internal/schedule"
	"github.com/bagdasarian/crew-scheduler/internal/store"
)

type scheduleService struct {
	store          *store.Store
	teamRepo       repository.TeamRepository
	resourceRepo   repository.ResourceRepository
	assignmentRepo repository.AssignmentRepository
	allowFallback  bool
}

// NewScheduleService создает новый экземпляр ScheduleService.
// allowFallback разрешает подменять недоступный внешний источник
// встроенным демо-набором.
func NewScheduleService(
	st *store.Store,
	teamRepo repository.TeamRepository,
	resourceRepo repository.ResourceRepository,
	assignmentRepo repository.AssignmentRepository,
	allowFallback bool,
) ScheduleService {
	return &scheduleService{
		store:          st,
		teamRepo:       teamRepo,
		resourceRepo:   resourceRepo,
		assignmentRepo: assignmentRepo,
		allowFallback:  allowFallback,
	}
}

func (s *scheduleService) Initialize(ctx context.Context) error {
	return s.ensureSeeded(ctx)
}

// ensureSeeded заполняет store один раз за сессию. Загрузка происходит
// вокруг критической секции store, а не внутри неё.
func (s *scheduleService) ensureSeeded(ctx context.Context) error {
	if !s.store.NeedsSeed() {
		return nil
	}

	teams, resources, assignments, err := s.load(ctx)
	if err != nil {
		if !s.allowFallback {
			return err
		}
		log.Printf("seed from external source failed, falling back to built-in dataset: %v", err)
		teams, resources, assignments, err = s.loadStatic(ctx)
		if err != nil {
			return err
		}
	}

	s.store.Seed(teams, resources, assignments)
	return nil
}

func (s *scheduleService) load(ctx context.Context) ([]domain.Team, []domain.Resource, []domain.Assignment, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	resources, err := s.resourceRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	assignments, err := s.assignmentRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return teams, resources, assignments, nil
}

func (s *scheduleService) loadStatic(ctx context.Context) ([]domain.Team, []domain.Resource, []domain.Assignment, error) {
	teams, err := static.NewTeamRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	resources, err := static.NewResourceRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	assignments, err := static.NewAssignmentRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return teams, resources, assignments, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context) (*domain.Schedule, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return &domain.Schedule{
		Teams:       s.store.Teams(),
		Resources:   s.store.Resources(),
		Assignments: s.store.Assignments(),
	}, nil
}

// LeaderGaps пересчитывается на каждый запрос: кэширование - забота вызывающего.
func (s *scheduleService) LeaderGaps(ctx context.Context, teamID string, from, to time.Time) ([]domain.LeaderGap, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	view := schedule.Interval{Start: from, End: to}
	return schedule.FindLeaderGaps(teamID, s.store.Assignments(), view), nil
}

func (s *scheduleService) CreateAssignment(ctx context.Context, resourceID, teamID string, start, end time.Time, role string, isTeamLeader bool) (*domain.Assignment, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return s.store.CreateAssignment(resourceID, teamID, start, end, role, isTeamLeader)
}

func (s *scheduleService) UpdateAssignment(ctx context.Context, id string, patch domain.AssignmentUpdate) (*domain.Assignment, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return s.store.UpdateAssignment(id, patch)
}

func (s *scheduleService) DeleteAssignment(ctx context.Context, id string) error {
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}
	s.store.DeleteAssignment(id)
	return nil
}

func (s *scheduleService) CreateTeam(ctx context.Context, name, description, color string) (*domain.Team, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return s.store.CreateTeam(name, description, color)
}

func (s *scheduleService) DeleteTeam(ctx context.Context, id string) error {
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}
	s.store.DeleteTeam(id)
	return nil
}

func (s *scheduleService) ChangeSummary(ctx context.Context) (*domain.ChangeSummary, error) {
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	return s.store.ChangeSummary(), nil
}

func (s *scheduleService) HasUnsavedChanges(_ context.Context) bool {
	return s.store.HasUnsavedChanges()
}

// MarkSynchronized вызывается после того, как внешний клиент синхронизации
// успешно переиграл дифф во внешнюю систему.
func (s *scheduleService) MarkSynchronized(_ context.Context) error {
	s.store.ClearChangeTracking()
	return nil
}

// DiscardChanges сбрасывает локальные правки и сразу загружает данные заново.
func (s *scheduleService) DiscardChanges(ctx context.Context) error {
	s.store.ResetWorkingState()
	return s.ensureSeeded(ctx)
}
