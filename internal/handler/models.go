package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TeamResponse struct {
	TeamID      string `json:"team_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	CreatedAt   string `json:"created_at"`
}

type ResourceResponse struct {
	ResourceID string `json:"resource_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

type AssignmentResponse struct {
	AssignmentID string `json:"assignment_id"`
	ResourceID   string `json:"resource_id"`
	TeamID       string `json:"team_id"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Role         string `json:"role,omitempty"`
	IsTeamLeader bool   `json:"is_team_leader"`
}

type ScheduleResponse struct {
	Teams       []TeamResponse       `json:"teams"`
	Resources   []ResourceResponse   `json:"resources"`
	Assignments []AssignmentResponse `json:"assignments"`
}

type CreateAssignmentRequest struct {
	ResourceID   string `json:"resource_id"`
	TeamID       string `json:"team_id"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Role         string `json:"role"`
	IsTeamLeader bool   `json:"is_team_leader"`
}

type CreateAssignmentResponse struct {
	Assignment AssignmentResponse `json:"assignment"`
}

// UpdateAssignmentRequest - частичное обновление: отсутствующие поля не трогаются
type UpdateAssignmentRequest struct {
	AssignmentID string  `json:"assignment_id"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
	TeamID       *string `json:"team_id,omitempty"`
	Role         *string `json:"role,omitempty"`
	IsTeamLeader *bool   `json:"is_team_leader,omitempty"`
}

type UpdateAssignmentResponse struct {
	Assignment AssignmentResponse `json:"assignment"`
}

type DeleteAssignmentRequest struct {
	AssignmentID string `json:"assignment_id"`
}

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type DeleteTeamRequest struct {
	TeamID string `json:"team_id"`
}

type LeaderGapResponse struct {
	TeamID string `json:"team_id"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type LeaderGapsResponse struct {
	Gaps []LeaderGapResponse `json:"gaps"`
}

type ChangesResponse struct {
	HasUnsavedChanges  bool                 `json:"has_unsaved_changes"`
	CreatedAssignments []AssignmentResponse `json:"created_assignments"`
	UpdatedAssignments []AssignmentResponse `json:"updated_assignments"`
	DeletedAssignments []AssignmentResponse `json:"deleted_assignments"`
	CreatedTeams       []TeamResponse       `json:"created_teams"`
	UpdatedTeams       []TeamResponse       `json:"updated_teams"`
	DeletedTeams       []TeamResponse       `json:"deleted_teams"`
}
