package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockDB создает мок базы данных для тестов
// Автоматически закрывает соединение при завершении теста
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// setupTeamRepo создает мок БД и репозиторий для Team
func setupTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTeamRepository(db), mock
}

func TestTeamRepository_GetAll(t *testing.T) {
	t.Run("успешная загрузка команд", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "description", "color", "created_at"}).
			AddRow(1, "Crew One", "day shift", "#ff0000", now).
			AddRow(2, "Crew Two", "", "#00ff00", now)
		mock.ExpectQuery("FROM teams").
			WillReturnRows(rows)

		teams, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, teams, 2)
		// числовые id внешней системы превращаются в префиксованные строковые
		assert.Equal(t, "t1", teams[0].ID)
		assert.Equal(t, "Crew One", teams[0].Name)
		assert.Equal(t, "t2", teams[1].ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустая таблица - пустой срез без ошибки", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		rows := sqlmock.NewRows([]string{"id", "name", "description", "color", "created_at"})
		mock.ExpectQuery("FROM teams").
			WillReturnRows(rows)

		teams, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, teams)
	})

	t.Run("ошибка БД пробрасывается наверх", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)

		mock.ExpectQuery("FROM teams").
			WillReturnError(errors.New("connection refused"))

		teams, err := repo.GetAll(context.Background())

		require.Error(t, err)
		assert.Nil(t, teams)
	})
}
