package domain

import (
	"fmt"
	"strings"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInvalidInterval - начало интервала должно быть строго раньше конца
	ErrInvalidInterval = &DomainError{
		Code:    "VALIDATION",
		Message: "start must be strictly before end",
	}

	// ErrEmptyTeamName - имя команды обязательно
	ErrEmptyTeamName = &DomainError{
		Code:    "VALIDATION",
		Message: "team name must not be empty",
	}

	// ErrLeaderConflict - у команды уже есть тимлид на этом интервале
	ErrLeaderConflict = &DomainError{
		Code:    "LEADER_CONFLICT",
		Message: "team already has a leader in this interval",
	}

	// ErrCrossTeamConflict - ресурс уже занят другой командой на этом интервале
	ErrCrossTeamConflict = &DomainError{
		Code:    "CROSS_TEAM_CONFLICT",
		Message: "resource is already assigned to another team in this interval",
	}

	// ErrNotFound - сущность не найдена
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// LeaderConflictError несет назначение, с которым конфликтует новый тимлид.
type LeaderConflictError struct {
	Conflicting Assignment
}

func (e *LeaderConflictError) Error() string {
	return fmt.Sprintf(
		"team %s already has leader %s from %s to %s",
		e.Conflicting.TeamID,
		e.Conflicting.ResourceID,
		e.Conflicting.Start.Format("2006-01-02 15:04"),
		e.Conflicting.End.Format("2006-01-02 15:04"),
	)
}

func (e *LeaderConflictError) Unwrap() error {
	return ErrLeaderConflict
}

// CrossTeamConflictError несет команды, которые уже заняли ресурс.
type CrossTeamConflictError struct {
	ResourceID string
	TeamIDs    []string
}

func (e *CrossTeamConflictError) Error() string {
	return fmt.Sprintf(
		"resource %s is already assigned to team(s) %s in this interval",
		e.ResourceID,
		strings.Join(e.TeamIDs, ", "),
	)
}

func (e *CrossTeamConflictError) Unwrap() error {
	return ErrCrossTeamConflict
}
