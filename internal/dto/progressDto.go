package dto

import (
	"github.com/go-playground/validator/v10"

	customerrors "github.com/filipkase07-hue/ppl-quiz-backend/internal/customErrors"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/models"
)

// RecordAttemptRequest is the body of POST /api/progress. Passed is a
// pointer so that an explicit false is distinguishable from a missing
// field.
type RecordAttemptRequest struct {
	QuizName       string `json:"quiz_name" validate:"required"`
	Passed         *bool  `json:"passed" validate:"required"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}

func (r *RecordAttemptRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return customerrors.ErrMissingQuizFields
	}
	return nil
}

type ProgressResponse struct {
	Message  string               `json:"message,omitempty"`
	Progress *models.QuizProgress `json:"progress"`
}

type ProgressListResponse struct {
	Progress []models.QuizProgress `json:"progress"`
}

type HistoryResponse struct {
	History []models.QuizAttempt `json:"history"`
}

type StatsResponse struct {
	Stats models.QuizStats `json:"stats"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
