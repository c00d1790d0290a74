package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	customerrors "github.com/filipkase07-hue/ppl-quiz-backend/internal/customErrors"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/models"
)

const uniqueViolation = "23505"

type UserRepository interface {
	CheckUserExists(ctx context.Context, username string) error
	SaveUser(ctx context.Context, username, password, email string) (*models.User, error)
	GetUserByCredentials(ctx context.Context, username, password string) (*models.User, error)
	Ping(ctx context.Context) error
}

type UserRepositoryImpl struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) CheckUserExists(ctx context.Context, username string) error {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return customerrors.ErrUsernameAlreadyExists
	}
	return nil
}

func (r *UserRepositoryImpl) SaveUser(ctx context.Context, username, password, email string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	query := `
        INSERT INTO users (username, password_hash, email)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	err = r.db.QueryRowContext(
		ctx,
		query,
		username,
		string(hashedPassword),
		sql.NullString{String: email, Valid: email != ""},
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		// A concurrent register can slip past the exists check.
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, customerrors.ErrUsernameAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// GetUserByCredentials returns the same error for an unknown username
// and a wrong password so callers cannot tell which check failed.
func (r *UserRepositoryImpl) GetUserByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	var email sql.NullString
	query := `
        SELECT id, username, password_hash, email, created_at
        FROM users
        WHERE username = $1
    `

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&email,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	user.Email = email.String

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, customerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepositoryImpl) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
