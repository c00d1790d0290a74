package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizProgress holds the per-(user, quiz) counters. At most one row
// exists per pair; passes never exceeds attempts.
type QuizProgress struct {
	ID          int64     `json:"-" db:"id"`
	UserID      uuid.UUID `json:"-" db:"user_id"`
	QuizName    string    `json:"quiz_name" db:"quiz_name"`
	Attempts    int       `json:"attempts" db:"attempts"`
	Passes      int       `json:"passes" db:"passes"`
	LastUpdated time.Time `json:"-" db:"last_updated"`
}

// QuizAttempt is one row of the append-only attempt log.
type QuizAttempt struct {
	ID             int64     `json:"-" db:"id"`
	UserID         uuid.UUID `json:"-" db:"user_id"`
	QuizName       string    `json:"-" db:"quiz_name"`
	Score          int       `json:"score" db:"score"`
	TotalQuestions int       `json:"total_questions" db:"total_questions"`
	Passed         bool      `json:"passed" db:"passed"`
	AttemptDate    time.Time `json:"attempt_date" db:"attempt_date"`
}

type QuizStats struct {
	TotalAttempts int `json:"total_attempts"`
	TotalPasses   int `json:"total_passes"`
	PassRate      int `json:"pass_rate"`
}
