package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

type resourceRepository struct {
	executor DBExecutor
}

func NewResourceRepository(db *sql.DB) *resourceRepository {
	return &resourceRepository{executor: db}
}

// GetAll загружает справочник техников
func (r *resourceRepository) GetAll(ctx context.Context) ([]domain.Resource, error) {
	query := `
		SELECT id, name, role
		FROM resources
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var id int
		var resource domain.Resource
		if err := rows.Scan(&id, &resource.Name, &resource.Role); err != nil {
			return nil, err
		}
		resource.ID = resourceIntToStringID(id)
		resources = append(resources, resource)
	}

	return resources, rows.Err()
}
