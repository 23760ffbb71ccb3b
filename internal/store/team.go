package store

import (
	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

// CreateTeam создает команду со свежим идентификатором и временем создания.
func (s *Store) CreateTeam(name, description, color string) (*domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return nil, domain.ErrEmptyTeamName
	}

	team := domain.Team{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Color:       color,
		CreatedAt:   s.now(),
	}
	s.workingTeams = append(s.workingTeams, team)
	s.changedTeams[team.ID] = struct{}{}

	return &team, nil
}

// DeleteTeam удаляет команду и каскадно все её назначения с тем же
// учетом original/changed/deleted, что и у одиночного удаления.
// Отсутствующий id - тихий no-op, как у DeleteAssignment.
func (s *Store) DeleteTeam(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, team := range s.workingTeams {
		if team.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// каскад: сначала назначения команды
	var cascade []string
	for _, a := range s.workingAssignments {
		if a.TeamID == id {
			cascade = append(cascade, a.ID)
		}
	}
	for _, assignmentID := range cascade {
		s.removeAssignmentLocked(assignmentID)
	}

	s.workingTeams = append(s.workingTeams[:idx], s.workingTeams[idx+1:]...)
	if _, existed := s.originalTeams[id]; existed {
		s.deletedTeams[id] = struct{}{}
	}
	delete(s.changedTeams, id)
}
