package service

import (
	"context"

	"github.com/filipkase07-hue/ppl-quiz-backend/internal/config"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/dto"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	HealthCheck(ctx context.Context) (*dto.HealthResponse, error)
}

type AuthServiceImpl struct {
	repo repository.UserRepository
	jwt  config.Token
}

func NewAuthService(repo repository.UserRepository, jwt config.Token) AuthService {
	return &AuthServiceImpl{repo: repo, jwt: jwt}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CheckUserExists(ctx, req.Username); err != nil {
		return nil, err
	}

	user, err := s.repo.SaveUser(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateJWT(user.Username, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "User created successfully",
		Token:   token,
		User:    dto.UserView{ID: user.ID, Username: user.Username},
	}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateJWT(user.Username, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.UserView{ID: user.ID, Username: user.Username},
	}, nil
}

func (s *AuthServiceImpl) HealthCheck(ctx context.Context) (*dto.HealthResponse, error) {
	if err := s.repo.Ping(ctx); err != nil {
		return nil, err
	}

	return &dto.HealthResponse{
		Status:  "OK",
		Message: "Quiz progress backend is running",
	}, nil
}
