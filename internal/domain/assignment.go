package domain

import "time"

// Assignment связывает ресурс с командой на полуоткрытом интервале [Start, End).
type Assignment struct {
	ID           string
	ResourceID   string
	TeamID       string
	Start        time.Time
	End          time.Time
	Role         string
	IsTeamLeader bool
}

// AssignmentUpdate - частичное обновление назначения.
// nil-поле означает "оставить как есть"; неизвестные поля сюда попасть не могут.
type AssignmentUpdate struct {
	Start        *time.Time
	End          *time.Time
	TeamID       *string
	Role         *string
	IsTeamLeader *bool
}

// LeaderGap - период внутри окна просмотра, когда у команды есть участники,
// но нет назначенного тимлида. Вычисляемое значение, нигде не хранится.
type LeaderGap struct {
	TeamID string
	Start  time.Time
	End    time.Time
}
