package store

import (
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
	"github.com/bagdasarian/crew-scheduler/internal/schedule"
)

// CreateAssignment создает назначение ресурса в команду на интервале [start, end).
// Порядок проверок: валидность интервала, конфликт тимлидов внутри команды,
// занятость ресурса другой командой. Любая ошибка оставляет состояние нетронутым.
func (s *Store) CreateAssignment(resourceID, teamID string, start, end time.Time, role string, isTeamLeader bool) (*domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateAssignmentLocked(resourceID, teamID, start, end, isTeamLeader, ""); err != nil {
		return nil, err
	}

	assignment := domain.Assignment{
		ID:           s.newID(),
		ResourceID:   resourceID,
		TeamID:       teamID,
		Start:        start,
		End:          end,
		Role:         role,
		IsTeamLeader: isTeamLeader,
	}
	s.workingAssignments = append(s.workingAssignments, assignment)
	s.changedAssignments[assignment.ID] = struct{}{}

	return &assignment, nil
}

// UpdateAssignment накладывает частичное обновление на существующее назначение
// и перепроверяет все инварианты на объединенном результате.
func (s *Store) UpdateAssignment(id string, patch domain.AssignmentUpdate) (*domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.assignmentIndexLocked(id)
	if idx < 0 {
		return nil, domain.NewNotFoundError("assignment with id " + id)
	}

	merged := s.workingAssignments[idx]
	if patch.Start != nil {
		merged.Start = *patch.Start
	}
	if patch.End != nil {
		merged.End = *patch.End
	}
	if patch.TeamID != nil {
		merged.TeamID = *patch.TeamID
	}
	if patch.Role != nil {
		merged.Role = *patch.Role
	}
	if patch.IsTeamLeader != nil {
		merged.IsTeamLeader = *patch.IsTeamLeader
	}

	if err := s.validateAssignmentLocked(merged.ResourceID, merged.TeamID, merged.Start, merged.End, merged.IsTeamLeader, id); err != nil {
		return nil, err
	}

	s.workingAssignments[idx] = merged
	s.changedAssignments[id] = struct{}{}
	delete(s.deletedAssignments, id)

	return &merged, nil
}

// DeleteAssignment удаляет назначение. Отсутствующий id - тихий no-op:
// синхронизации незачем знать о сущности, которой не было.
func (s *Store) DeleteAssignment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeAssignmentLocked(id)
}

func (s *Store) removeAssignmentLocked(id string) {
	idx := s.assignmentIndexLocked(id)
	if idx < 0 {
		return
	}

	s.workingAssignments = append(s.workingAssignments[:idx], s.workingAssignments[idx+1:]...)
	if _, existed := s.originalAssignments[id]; existed {
		s.deletedAssignments[id] = struct{}{}
	}
	delete(s.changedAssignments, id)
}

func (s *Store) assignmentIndexLocked(id string) int {
	for i, a := range s.workingAssignments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// validateAssignmentLocked проверяет инварианты до любой записи.
// excludeID исключает редактируемое назначение из проверок против самого себя.
func (s *Store) validateAssignmentLocked(resourceID, teamID string, start, end time.Time, isTeamLeader bool, excludeID string) error {
	if !start.Before(end) {
		return domain.ErrInvalidInterval
	}

	if isTeamLeader {
		for _, a := range s.workingAssignments {
			if a.TeamID != teamID || !a.IsTeamLeader || a.ID == excludeID {
				continue
			}
			if schedule.Overlaps(a.Start, a.End, start, end) {
				return &domain.LeaderConflictError{Conflicting: a}
			}
		}
	}

	// Ресурс не может быть занят двумя командами одновременно.
	var conflictTeams []string
	for _, a := range schedule.FindOverlapping(resourceID, start, end, s.workingAssignments, excludeID) {
		if a.TeamID == teamID {
			continue
		}
		if !containsString(conflictTeams, a.TeamID) {
			conflictTeams = append(conflictTeams, a.TeamID)
		}
	}
	if len(conflictTeams) > 0 {
		return &domain.CrossTeamConflictError{ResourceID: resourceID, TeamIDs: conflictTeams}
	}

	return nil
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
