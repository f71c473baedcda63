package model

import "time"

type StudySession struct {
	ID              int64
	AccountID       int64
	DurationMinutes int
	StartedAt       time.Time
	EndedAt         *time.Time
}

type RecordSession struct {
	DurationMinutes int
}
