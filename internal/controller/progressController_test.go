package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filipkase07-hue/ppl-quiz-backend/internal/config"
	customerrors "github.com/filipkase07-hue/ppl-quiz-backend/internal/customErrors"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/controller"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/dto"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/middleware"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/models"
)

var testUserID = uuid.MustParse("8a9b4c9e-1d2f-4a3b-8c5d-6e7f80912345")

// stubToken accepts "valid-token" for testUserID and rejects anything else.
type stubToken struct{}

func (stubToken) GenerateJWT(username string, id uuid.UUID) (string, error) {
	return "valid-token", nil
}

func (stubToken) ValidateJWT(tokenString string) (*config.Claims, error) {
	if tokenString != "valid-token" {
		return nil, jwt.ErrSignatureInvalid
	}
	return &config.Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: testUserID.String(),
		},
	}, nil
}

type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) RecordAttempt(ctx context.Context, userID uuid.UUID, req dto.RecordAttemptRequest) (*models.QuizProgress, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizProgress), args.Error(1)
}

func (m *MockProgressService) GetProgress(ctx context.Context, userID uuid.UUID, quizName string) (*models.QuizProgress, error) {
	args := m.Called(userID, quizName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizProgress), args.Error(1)
}

func (m *MockProgressService) GetAllProgress(ctx context.Context, userID uuid.UUID) ([]models.QuizProgress, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizProgress), args.Error(1)
}

func (m *MockProgressService) ResetProgress(ctx context.Context, userID uuid.UUID, quizName string) error {
	args := m.Called(userID, quizName)
	return args.Error(0)
}

func (m *MockProgressService) GetHistory(ctx context.Context, userID uuid.UUID, quizName string) ([]models.QuizAttempt, error) {
	args := m.Called(userID, quizName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizAttempt), args.Error(1)
}

func (m *MockProgressService) GetStats(ctx context.Context, userID uuid.UUID) (*models.QuizStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizStats), args.Error(1)
}

func setupProgressController() (*MockProgressService, *controller.ProgressController) {
	mockService := new(MockProgressService)
	return mockService, controller.NewProgressController(mockService)
}

// protect wires the handler the way the router does for protected routes.
func protect(h middleware.HandlerFunc) http.HandlerFunc {
	return middleware.ErrorHandler(middleware.AuthMiddleware(stubToken{})(h))
}

func authorizedRequest(method, endpoint string, payload any, quizName string) *http.Request {
	r := createRequest(method, endpoint, payload)
	r.Header.Set("Authorization", "Bearer valid-token")
	if quizName != "" {
		r.SetPathValue("quizName", quizName)
	}
	return r
}

func TestProgressControllerGetAll(t *testing.T) {
	mockService, progressController := setupProgressController()
	mockService.On("GetAllProgress", testUserID).
		Return([]models.QuizProgress{
			{QuizName: "ch1", Attempts: 3, Passes: 2},
			{QuizName: "ch2", Attempts: 1, Passes: 0},
		}, nil)

	w := httptest.NewRecorder()
	r := authorizedRequest(http.MethodGet, "/api/progress", nil, "")

	protect(progressController.GetAll).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"progress":[{"quiz_name":"ch1","attempts":3,"passes":2},{"quiz_name":"ch2","attempts":1,"passes":0}]}`,
		w.Body.String())
	mockService.AssertExpectations(t)
}

func TestProgressControllerGet(t *testing.T) {
	t.Run("ZeroedWhenAbsent", func(t *testing.T) {
		mockService, progressController := setupProgressController()
		mockService.On("GetProgress", testUserID, "ch1").
			Return(&models.QuizProgress{QuizName: "ch1"}, nil)

		w := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/progress/ch1", nil, "ch1")

		protect(progressController.Get).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"progress":{"quiz_name":"ch1","attempts":0,"passes":0}}`, w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("StorageError", func(t *testing.T) {
		mockService, progressController := setupProgressController()
		mockService.On("GetProgress", testUserID, "ch1").
			Return(nil, customerrors.ErrStorage)

		w := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/progress/ch1", nil, "ch1")

		protect(progressController.Get).ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"code":500,"message":"storage error"}`, w.Body.String())
	})
}

func TestProgressControllerRecord(t *testing.T) {
	passed := true
	validRequest := dto.RecordAttemptRequest{
		QuizName:       "ch1",
		Passed:         &passed,
		Score:          8,
		TotalQuestions: 10,
	}

	t.Run("AttemptRecorded", func(t *testing.T) {
		mockService, progressController := setupProgressController()
		mockService.On("RecordAttempt", testUserID, mock.MatchedBy(func(req dto.RecordAttemptRequest) bool {
			return req.QuizName == "ch1" && req.Passed != nil && *req.Passed && req.Score == 8
		})).Return(&models.QuizProgress{QuizName: "ch1", Attempts: 1, Passes: 1}, nil)

		w := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/progress", validRequest, "")

		protect(progressController.Record).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"message":"Progress updated","progress":{"quiz_name":"ch1","attempts":1,"passes":1}}`,
			w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockService, progressController := setupProgressController()
		mockService.On("RecordAttempt", testUserID, mock.Anything).
			Return(nil, customerrors.ErrMissingQuizFields)

		w := httptest.NewRecorder()
		r := authorizedRequest(http.MethodPost, "/api/progress", dto.RecordAttemptRequest{Score: 8}, "")

		protect(progressController.Record).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"code":400,"message":"quiz_name and passed are required"}`, w.Body.String())
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, progressController := setupProgressController()

		w := httptest.NewRecorder()
		r := createInvalidJSONRequest(http.MethodPost, "/api/progress")
		r.Header.Set("Authorization", "Bearer valid-token")

		protect(progressController.Record).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"code":400,"message":"bad request"}`, w.Body.String())
	})
}

func TestProgressControllerReset(t *testing.T) {
	mockService, progressController := setupProgressController()
	mockService.On("ResetProgress", testUserID, "ch1").Return(nil)

	w := httptest.NewRecorder()
	r := authorizedRequest(http.MethodDelete, "/api/progress/ch1", nil, "ch1")

	protect(progressController.Reset).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Progress reset successfully"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestProgressControllerHistory(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	mockService, progressController := setupProgressController()
	mockService.On("GetHistory", testUserID, "ch1").
		Return([]models.QuizAttempt{
			{Score: 9, TotalQuestions: 10, Passed: true, AttemptDate: now},
			{Score: 4, TotalQuestions: 10, Passed: false, AttemptDate: now.Add(-time.Hour)},
		}, nil)

	w := httptest.NewRecorder()
	r := authorizedRequest(http.MethodGet, "/api/history/ch1", nil, "ch1")

	protect(progressController.History).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var res dto.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.History, 2)
	assert.Equal(t, 9, res.History[0].Score)
	assert.True(t, res.History[0].Passed)
	assert.True(t, res.History[0].AttemptDate.After(res.History[1].AttemptDate))
	mockService.AssertExpectations(t)
}

func TestProgressControllerStats(t *testing.T) {
	mockService, progressController := setupProgressController()
	mockService.On("GetStats", testUserID).
		Return(&models.QuizStats{TotalAttempts: 2, TotalPasses: 1, PassRate: 50}, nil)

	w := httptest.NewRecorder()
	r := authorizedRequest(http.MethodGet, "/api/stats", nil, "")

	protect(progressController.Stats).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stats":{"total_attempts":2,"total_passes":1,"pass_rate":50}}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	testCases := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "MissingToken",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"code":401,"message":"access token required"}`,
		},
		{
			name:           "NotBearer",
			authHeader:     "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"code":401,"message":"access token required"}`,
		},
		{
			name:           "InvalidToken",
			authHeader:     "Bearer tampered-token",
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"code":403,"message":"invalid or expired token"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, progressController := setupProgressController()

			w := httptest.NewRecorder()
			r := createRequest(http.MethodGet, "/api/stats", nil)
			if tc.authHeader != "" {
				r.Header.Set("Authorization", tc.authHeader)
			}

			protect(progressController.Stats).ServeHTTP(w, r)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
			// No side effects: the service must never be reached.
			mockService.AssertNotCalled(t, "GetStats", mock.Anything)
		})
	}
}
