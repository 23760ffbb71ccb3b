package store

import (
	"sort"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

// HasUnsavedChanges сообщает, есть ли несинхронизированные правки.
func (s *Store) HasUnsavedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.changedTeams) > 0 ||
		len(s.changedAssignments) > 0 ||
		len(s.deletedTeams) > 0 ||
		len(s.deletedAssignments) > 0
}

// ChangeSummary строит дифф для синхронизации: changed-множества делятся на
// созданные и обновленные по наличию id в original, удаленные материализуются
// из original (в рабочем состоянии их уже нет).
func (s *Store) ChangeSummary() *domain.ChangeSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := &domain.ChangeSummary{}

	for _, a := range s.workingAssignments {
		if _, tracked := s.changedAssignments[a.ID]; !tracked {
			continue
		}
		if _, existed := s.originalAssignments[a.ID]; existed {
			summary.UpdatedAssignments = append(summary.UpdatedAssignments, a)
		} else {
			summary.CreatedAssignments = append(summary.CreatedAssignments, a)
		}
	}
	for _, id := range sortedIDs(s.deletedAssignments) {
		if a, ok := s.originalAssignments[id]; ok {
			summary.DeletedAssignments = append(summary.DeletedAssignments, a)
		}
	}

	for _, team := range s.workingTeams {
		if _, tracked := s.changedTeams[team.ID]; !tracked {
			continue
		}
		if _, existed := s.originalTeams[team.ID]; existed {
			summary.UpdatedTeams = append(summary.UpdatedTeams, team)
		} else {
			summary.CreatedTeams = append(summary.CreatedTeams, team)
		}
	}
	for _, id := range sortedIDs(s.deletedTeams) {
		if team, ok := s.originalTeams[id]; ok {
			summary.DeletedTeams = append(summary.DeletedTeams, team)
		}
	}

	return summary
}

// ClearChangeTracking фиксирует успешную синхронизацию: рабочее состояние
// становится новым снимком, все множества отслеживания очищаются.
// Повторный вызов - no-op.
func (s *Store) ClearChangeTracking() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.originalTeams = make(map[string]domain.Team, len(s.workingTeams))
	for _, team := range s.workingTeams {
		s.originalTeams[team.ID] = team
	}
	s.originalAssignments = make(map[string]domain.Assignment, len(s.workingAssignments))
	for _, a := range s.workingAssignments {
		s.originalAssignments[a.ID] = a
	}

	s.changedTeams = make(map[string]struct{})
	s.changedAssignments = make(map[string]struct{})
	s.deletedTeams = make(map[string]struct{})
	s.deletedAssignments = make(map[string]struct{})
}

// sortedIDs дает детерминированный порядок для материализации удаленных сущностей.
func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
