package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/filipkase07-hue/ppl-quiz-backend/internal/models"
)

// historyLimit caps attempt-history reads; it mirrors the LIMIT baked
// into the history query.
const historyLimit = 20

type ProgressRepository interface {
	RecordAttempt(ctx context.Context, userID uuid.UUID, quizName string, passed bool, score, totalQuestions int) (*models.QuizProgress, error)
	GetProgress(ctx context.Context, userID uuid.UUID, quizName string) (*models.QuizProgress, error)
	ListProgress(ctx context.Context, userID uuid.UUID) ([]models.QuizProgress, error)
	DeleteProgress(ctx context.Context, userID uuid.UUID, quizName string) error
	ListRecentAttempts(ctx context.Context, userID uuid.UUID, quizName string) ([]models.QuizAttempt, error)
	SumCounters(ctx context.Context, userID uuid.UUID) (attempts, passes int, err error)
}

type ProgressRepositoryImpl struct {
	db *sql.DB
}

func NewProgressRepository(db *sql.DB) ProgressRepository {
	return &ProgressRepositoryImpl{db: db}
}

// RecordAttempt appends an audit row and bumps the counters in one
// transaction. The upsert increments atomically, so concurrent
// attempts on the same (user, quiz) pair cannot lose updates.
func (r *ProgressRepositoryImpl) RecordAttempt(ctx context.Context, userID uuid.UUID, quizName string, passed bool, score, totalQuestions int) (*models.QuizProgress, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insertAttempt := `
        INSERT INTO quiz_attempts (user_id, quiz_name, score, total_questions, passed)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err = tx.ExecContext(ctx, insertAttempt, userID, quizName, score, totalQuestions, passed); err != nil {
		return nil, err
	}

	passIncrement := 0
	if passed {
		passIncrement = 1
	}

	upsertProgress := `
        INSERT INTO quiz_progress (user_id, quiz_name, attempts, passes)
        VALUES ($1, $2, 1, $3)
        ON CONFLICT (user_id, quiz_name) DO UPDATE
        SET attempts = quiz_progress.attempts + 1,
            passes = quiz_progress.passes + $3,
            last_updated = NOW()
        RETURNING attempts, passes
    `
	progress := &models.QuizProgress{UserID: userID, QuizName: quizName}
	err = tx.QueryRowContext(ctx, upsertProgress, userID, quizName, passIncrement).
		Scan(&progress.Attempts, &progress.Passes)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return progress, nil
}

// GetProgress returns zero-valued counters when no row exists; absence
// is not an error.
func (r *ProgressRepositoryImpl) GetProgress(ctx context.Context, userID uuid.UUID, quizName string) (*models.QuizProgress, error) {
	query := `
        SELECT quiz_name, attempts, passes
        FROM quiz_progress
        WHERE user_id = $1 AND quiz_name = $2
    `

	progress := &models.QuizProgress{UserID: userID, QuizName: quizName}
	err := r.db.QueryRowContext(ctx, query, userID, quizName).
		Scan(&progress.QuizName, &progress.Attempts, &progress.Passes)
	if err != nil {
		if err == sql.ErrNoRows {
			return progress, nil
		}
		return nil, err
	}

	return progress, nil
}

func (r *ProgressRepositoryImpl) ListProgress(ctx context.Context, userID uuid.UUID) ([]models.QuizProgress, error) {
	query := `
        SELECT quiz_name, attempts, passes
        FROM quiz_progress
        WHERE user_id = $1
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := []models.QuizProgress{}
	for rows.Next() {
		var p models.QuizProgress
		if err := rows.Scan(&p.QuizName, &p.Attempts, &p.Passes); err != nil {
			return nil, err
		}
		p.UserID = userID
		progress = append(progress, p)
	}

	return progress, rows.Err()
}

// DeleteProgress is idempotent: deleting an absent row is not an error.
func (r *ProgressRepositoryImpl) DeleteProgress(ctx context.Context, userID uuid.UUID, quizName string) error {
	query := `DELETE FROM quiz_progress WHERE user_id = $1 AND quiz_name = $2`

	_, err := r.db.ExecContext(ctx, query, userID, quizName)
	return err
}

func (r *ProgressRepositoryImpl) ListRecentAttempts(ctx context.Context, userID uuid.UUID, quizName string) ([]models.QuizAttempt, error) {
	query := `
        SELECT score, total_questions, passed, attempt_date
        FROM quiz_attempts
        WHERE user_id = $1 AND quiz_name = $2
        ORDER BY attempt_date DESC
        LIMIT 20
    `

	rows, err := r.db.QueryContext(ctx, query, userID, quizName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]models.QuizAttempt, 0, historyLimit)
	for rows.Next() {
		var a models.QuizAttempt
		if err := rows.Scan(&a.Score, &a.TotalQuestions, &a.Passed, &a.AttemptDate); err != nil {
			return nil, err
		}
		a.UserID = userID
		a.QuizName = quizName
		history = append(history, a)
	}

	return history, rows.Err()
}

func (r *ProgressRepositoryImpl) SumCounters(ctx context.Context, userID uuid.UUID) (int, int, error) {
	query := `
        SELECT COALESCE(SUM(attempts), 0), COALESCE(SUM(passes), 0)
        FROM quiz_progress
        WHERE user_id = $1
    `

	var attempts, passes int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&attempts, &passes)
	if err != nil {
		return 0, 0, err
	}

	return attempts, passes, nil
}
