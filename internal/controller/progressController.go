package controller

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	customerrors "github.com/filipkase07-hue/ppl-quiz-backend/internal/customErrors"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/dto"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/middleware"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/service"
)

type ProgressController struct {
	progressService service.ProgressService
}

func NewProgressController(progressService service.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

func (c *ProgressController) GetAll(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	progress, err := c.progressService.GetAllProgress(r.Context(), userID)
	if err != nil {
		return err
	}

	return respond(w, http.StatusOK, &dto.ProgressListResponse{Progress: progress})
}

func (c *ProgressController) Get(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	progress, err := c.progressService.GetProgress(r.Context(), userID, r.PathValue("quizName"))
	if err != nil {
		return err
	}

	return respond(w, http.StatusOK, &dto.ProgressResponse{Progress: progress})
}

func (c *ProgressController) Record(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	var req dto.RecordAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return customerrors.ErrBadRequest
	}

	progress, err := c.progressService.RecordAttempt(r.Context(), userID, req)
	if err != nil {
		return err
	}

	return respond(w, http.StatusOK, &dto.ProgressResponse{
		Message:  "Progress updated",
		Progress: progress,
	})
}

func (c *ProgressController) Reset(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	if err := c.progressService.ResetProgress(r.Context(), userID, r.PathValue("quizName")); err != nil {
		return err
	}

	return respond(w, http.StatusOK, &dto.MessageResponse{Message: "Progress reset successfully"})
}

func (c *ProgressController) History(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	history, err := c.progressService.GetHistory(r.Context(), userID, r.PathValue("quizName"))
	if err != nil {
		return err
	}

	return respond(w, http.StatusOK, &dto.HistoryResponse{History: history})
}

func (c *ProgressController) Stats(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	stats, err := c.progressService.GetStats(r.Context(), userID)
	if err != nil {
		return err
	}

	return respond(w, http.StatusOK, &dto.StatsResponse{Stats: *stats})
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return uuid.Nil, customerrors.ErrMissingToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, customerrors.ErrInvalidToken
	}

	return userID, nil
}
