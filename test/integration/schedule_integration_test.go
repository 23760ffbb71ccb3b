//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
	"github.com/bagdasarian/crew-scheduler/internal/repository/postgres"
	"github.com/bagdasarian/crew-scheduler/internal/service"
	"github.com/bagdasarian/crew-scheduler/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// 1. Засеваем БД внешней системы
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	_, err := db.Exec(`INSERT INTO teams (name, description, color) VALUES ('Crew Alpha', 'installation', '#1976d2')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO resources (name, role) VALUES ('Alice', 'Electrician'), ('Bob', 'Plumber')`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO assignments (resource_id, team_id, start_at, end_at, role, is_team_leader)
		 VALUES (1, 1, $1, $2, 'foreman', TRUE)`,
		start, end,
	)
	require.NoError(t, err)

	// 2. Поднимаем сервис поверх настоящих репозиториев
	teamRepo := postgres.NewTeamRepository(db)
	resourceRepo := postgres.NewResourceRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)

	svc := service.NewScheduleService(store.New(), teamRepo, resourceRepo, assignmentRepo, false)
	require.NoError(t, svc.Initialize(ctx))

	sched, err := svc.GetSchedule(ctx)
	require.NoError(t, err)
	require.Len(t, sched.Teams, 1)
	require.Len(t, sched.Resources, 2)
	require.Len(t, sched.Assignments, 1)
	assert.Equal(t, "t1", sched.Teams[0].ID)
	assert.Equal(t, "a1", sched.Assignments[0].ID)
	assert.True(t, sched.Assignments[0].IsTeamLeader)
	assert.False(t, svc.HasUnsavedChanges(ctx))

	// 3. Локальные правки: добавляем Боба в бригаду
	created, err := svc.CreateAssignment(ctx, "r2", "t1", start, end.AddDate(0, 0, 3), "", false)
	require.NoError(t, err)

	// 4. Тимлид покрывает только часть нового периода
	gaps, err := svc.LeaderGaps(ctx, "t1", start, end.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, gaps, 1)
	assert.True(t, gaps[0].Start.Equal(end))

	// 5. Дифф содержит только локально созданное назначение
	summary, err := svc.ChangeSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.CreatedAssignments, 1)
	assert.Equal(t, created.ID, summary.CreatedAssignments[0].ID)
	assert.Empty(t, summary.UpdatedAssignments)
	assert.Empty(t, summary.DeletedAssignments)

	// 6. Синхронизация фиксирует рабочее состояние как новый снимок
	require.NoError(t, svc.MarkSynchronized(ctx))
	assert.False(t, svc.HasUnsavedChanges(ctx))

	// 7. Последующее удаление уже попадает в deleted
	require.NoError(t, svc.DeleteAssignment(ctx, created.ID))
	summary, err = svc.ChangeSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.DeletedAssignments, 1)
	assert.Equal(t, created.ID, summary.DeletedAssignments[0].ID)
}

func TestCrossTeamConflictAgainstSeededData(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)

	_, err := db.Exec(`INSERT INTO teams (name) VALUES ('Crew Alpha'), ('Crew Bravo')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO resources (name, role) VALUES ('Alice', 'Electrician')`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO assignments (resource_id, team_id, start_at, end_at, is_team_leader)
		 VALUES (1, 2, $1, $2, FALSE)`,
		start, end,
	)
	require.NoError(t, err)

	svc := service.NewScheduleService(
		store.New(),
		postgres.NewTeamRepository(db),
		postgres.NewResourceRepository(db),
		postgres.NewAssignmentRepository(db),
		false,
	)
	require.NoError(t, svc.Initialize(ctx))

	// Алиса уже занята бригадой Bravo на этом интервале
	_, err = svc.CreateAssignment(ctx, "r1", "t1", start.AddDate(0, 0, 2), start.AddDate(0, 0, 4), "", false)

	require.Error(t, err)
	var conflict *domain.CrossTeamConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"t2"}, conflict.TeamIDs)

	sched, err := svc.GetSchedule(ctx)
	require.NoError(t, err)
	assert.Len(t, sched.Assignments, 1, "отвергнутая операция не оставляет следов")
}
