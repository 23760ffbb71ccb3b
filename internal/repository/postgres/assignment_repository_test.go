package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAssignmentRepo создает мок БД и репозиторий для Assignment
func setupAssignmentRepo(t *testing.T) (*assignmentRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewAssignmentRepository(db), mock
}

func TestAssignmentRepository_GetAll(t *testing.T) {
	t.Run("успешная загрузка назначений с конвертацией идентификаторов", func(t *testing.T) {
		repo, mock := setupAssignmentRepo(t)

		start := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
		end := start.Add(9 * time.Hour)
		rows := sqlmock.NewRows([]string{"id", "resource_id", "team_id", "start_at", "end_at", "role", "is_team_leader"}).
			AddRow(1, 10, 3, start, end, "foreman", true).
			AddRow(2, 11, 3, start, end, nil, false) // role NULL в старых данных
		mock.ExpectQuery("FROM assignments").
			WillReturnRows(rows)

		assignments, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, assignments, 2)

		assert.Equal(t, "a1", assignments[0].ID)
		assert.Equal(t, "r10", assignments[0].ResourceID)
		assert.Equal(t, "t3", assignments[0].TeamID)
		assert.Equal(t, "foreman", assignments[0].Role)
		assert.True(t, assignments[0].IsTeamLeader)

		assert.Equal(t, "", assignments[1].Role, "NULL-роль читается как пустая строка")
		assert.False(t, assignments[1].IsTeamLeader)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка сканирования строки пробрасывается", func(t *testing.T) {
		repo, mock := setupAssignmentRepo(t)

		rows := sqlmock.NewRows([]string{"id", "resource_id", "team_id", "start_at", "end_at", "role", "is_team_leader"}).
			AddRow("not-an-int", 10, 3, time.Now(), time.Now(), "x", false)
		mock.ExpectQuery("FROM assignments").
			WillReturnRows(rows)

		assignments, err := repo.GetAll(context.Background())

		require.Error(t, err)
		assert.Nil(t, assignments)
	})

	t.Run("ошибка БД пробрасывается наверх", func(t *testing.T) {
		repo, mock := setupAssignmentRepo(t)

		mock.ExpectQuery("FROM assignments").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetAll(context.Background())
		require.Error(t, err)
	})
}

func TestResourceRepository_GetAll(t *testing.T) {
	t.Run("успешная загрузка справочника", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name", "role"}).
			AddRow(10, "Alice", "Electrician").
			AddRow(11, "Bob", "Plumber")
		mock.ExpectQuery("FROM resources").
			WillReturnRows(rows)

		resources, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, resources, 2)
		assert.Equal(t, "r10", resources[0].ID)
		assert.Equal(t, "Alice", resources[0].Name)
	})
}
