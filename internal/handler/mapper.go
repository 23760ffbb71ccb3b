package handler

import (
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:      team.ID,
		Name:        team.Name,
		Description: team.Description,
		Color:       team.Color,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
	}
}

func domainResourceToHTTP(resource *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ResourceID: resource.ID,
		Name:       resource.Name,
		Role:       resource.Role,
	}
}

func domainAssignmentToHTTP(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.ID,
		ResourceID:   a.ResourceID,
		TeamID:       a.TeamID,
		Start:        a.Start.Format(time.RFC3339),
		End:          a.End.Format(time.RFC3339),
		Role:         a.Role,
		IsTeamLeader: a.IsTeamLeader,
	}
}

func domainScheduleToHTTP(sched *domain.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		Teams:       make([]TeamResponse, 0, len(sched.Teams)),
		Resources:   make([]ResourceResponse, 0, len(sched.Resources)),
		Assignments: make([]AssignmentResponse, 0, len(sched.Assignments)),
	}
	for i := range sched.Teams {
		resp.Teams = append(resp.Teams, domainTeamToHTTP(&sched.Teams[i]))
	}
	for i := range sched.Resources {
		resp.Resources = append(resp.Resources, domainResourceToHTTP(&sched.Resources[i]))
	}
	for i := range sched.Assignments {
		resp.Assignments = append(resp.Assignments, domainAssignmentToHTTP(&sched.Assignments[i]))
	}
	return resp
}

func domainSummaryToHTTP(summary *domain.ChangeSummary, hasUnsaved bool) ChangesResponse {
	resp := ChangesResponse{
		HasUnsavedChanges:  hasUnsaved,
		CreatedAssignments: make([]AssignmentResponse, 0, len(summary.CreatedAssignments)),
		UpdatedAssignments: make([]AssignmentResponse, 0, len(summary.UpdatedAssignments)),
		DeletedAssignments: make([]AssignmentResponse, 0, len(summary.DeletedAssignments)),
		CreatedTeams:       make([]TeamResponse, 0, len(summary.CreatedTeams)),
		UpdatedTeams:       make([]TeamResponse, 0, len(summary.UpdatedTeams)),
		DeletedTeams:       make([]TeamResponse, 0, len(summary.DeletedTeams)),
	}
	for i := range summary.CreatedAssignments {
		resp.CreatedAssignments = append(resp.CreatedAssignments, domainAssignmentToHTTP(&summary.CreatedAssignments[i]))
	}
	for i := range summary.UpdatedAssignments {
		resp.UpdatedAssignments = append(resp.UpdatedAssignments, domainAssignmentToHTTP(&summary.UpdatedAssignments[i]))
	}
	for i := range summary.DeletedAssignments {
		resp.DeletedAssignments = append(resp.DeletedAssignments, domainAssignmentToHTTP(&summary.DeletedAssignments[i]))
	}
	for i := range summary.CreatedTeams {
		resp.CreatedTeams = append(resp.CreatedTeams, domainTeamToHTTP(&summary.CreatedTeams[i]))
	}
	for i := range summary.UpdatedTeams {
		resp.UpdatedTeams = append(resp.UpdatedTeams, domainTeamToHTTP(&summary.UpdatedTeams[i]))
	}
	for i := range summary.DeletedTeams {
		resp.DeletedTeams = append(resp.DeletedTeams, domainTeamToHTTP(&summary.DeletedTeams[i]))
	}
	return resp
}

func domainGapsToHTTP(gaps []domain.LeaderGap) LeaderGapsResponse {
	resp := LeaderGapsResponse{Gaps: make([]LeaderGapResponse, 0, len(gaps))}
	for _, gap := range gaps {
		resp.Gaps = append(resp.Gaps, LeaderGapResponse{
			TeamID: gap.TeamID,
			Start:  gap.Start.Format(time.RFC3339),
			End:    gap.End.Format(time.RFC3339),
		})
	}
	return resp
}
