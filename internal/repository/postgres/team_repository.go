package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

// GetAll загружает все команды из внешней системы планирования
func (r *teamRepository) GetAll(ctx context.Context) ([]domain.Team, error) {
	query := `
		SELECT id, name, description, color, created_at
		FROM teams
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var id int
		var team domain.Team
		if err := rows.Scan(&id, &team.Name, &team.Description, &team.Color, &team.CreatedAt); err != nil {
			return nil, err
		}
		team.ID = teamIntToStringID(id)
		teams = append(teams, team)
	}

	return teams, rows.Err()
}
