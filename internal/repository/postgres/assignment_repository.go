package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

type assignmentRepository struct {
	executor DBExecutor
}

func NewAssignmentRepository(db *sql.DB) *assignmentRepository {
	return &assignmentRepository{executor: db}
}

// GetAll загружает все назначения. Роль может быть NULL в старых данных
// внешней системы, поэтому читается через sql.NullString.
func (r *assignmentRepository) GetAll(ctx context.Context) ([]domain.Assignment, error) {
	query := `
		SELECT id, resource_id, team_id, start_at, end_at, role, is_team_leader
		FROM assignments
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var id, resourceID, teamID int
		var role sql.NullString
		var a domain.Assignment
		if err := rows.Scan(&id, &resourceID, &teamID, &a.Start, &a.End, &role, &a.IsTeamLeader); err != nil {
			return nil, err
		}
		a.ID = assignmentIntToStringID(id)
		a.ResourceID = resourceIntToStringID(resourceID)
		a.TeamID = teamIntToStringID(teamID)
		if role.Valid {
			a.Role = role.String
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
