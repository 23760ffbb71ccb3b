package domain

import "time"

type Team struct {
	ID          string
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
}
