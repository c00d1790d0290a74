package service

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/filipkase07-hue/ppl-quiz-backend/internal/dto"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/models"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/repository"
)

type ProgressService interface {
	RecordAttempt(ctx context.Context, userID uuid.UUID, req dto.RecordAttemptRequest) (*models.QuizProgress, error)
	GetProgress(ctx context.Context, userID uuid.UUID, quizName string) (*models.QuizProgress, error)
	GetAllProgress(ctx context.Context, userID uuid.UUID) ([]models.QuizProgress, error)
	ResetProgress(ctx context.Context, userID uuid.UUID, quizName string) error
	GetHistory(ctx context.Context, userID uuid.UUID, quizName string) ([]models.QuizAttempt, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*models.QuizStats, error)
}

type ProgressServiceImpl struct {
	repo repository.ProgressRepository
}

func NewProgressService(repo repository.ProgressRepository) ProgressService {
	return &ProgressServiceImpl{repo: repo}
}

func (s *ProgressServiceImpl) RecordAttempt(ctx context.Context, userID uuid.UUID, req dto.RecordAttemptRequest) (*models.QuizProgress, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.RecordAttempt(ctx, userID, req.QuizName, *req.Passed, req.Score, req.TotalQuestions)
}

func (s *ProgressServiceImpl) GetProgress(ctx context.Context, userID uuid.UUID, quizName string) (*models.QuizProgress, error) {
	return s.repo.GetProgress(ctx, userID, quizName)
}

func (s *ProgressServiceImpl) GetAllProgress(ctx context.Context, userID uuid.UUID) ([]models.QuizProgress, error) {
	return s.repo.ListProgress(ctx, userID)
}

func (s *ProgressServiceImpl) ResetProgress(ctx context.Context, userID uuid.UUID, quizName string) error {
	return s.repo.DeleteProgress(ctx, userID, quizName)
}

func (s *ProgressServiceImpl) GetHistory(ctx context.Context, userID uuid.UUID, quizName string) ([]models.QuizAttempt, error) {
	return s.repo.ListRecentAttempts(ctx, userID, quizName)
}

// GetStats sums the per-quiz counters and derives the pass rate as a
// whole percentage. A user with no attempts has a rate of 0.
func (s *ProgressServiceImpl) GetStats(ctx context.Context, userID uuid.UUID) (*models.QuizStats, error) {
	attempts, passes, err := s.repo.SumCounters(ctx, userID)
	if err != nil {
		return nil, err
	}

	rate := 0
	if attempts > 0 {
		rate = int(math.Round(float64(passes) / float64(attempts) * 100))
	}

	return &models.QuizStats{
		TotalAttempts: attempts,
		TotalPasses:   passes,
		PassRate:      rate,
	}, nil
}
