package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/filipkase07-hue/ppl-quiz-backend/internal/config"
	customerrors "github.com/filipkase07-hue/ppl-quiz-backend/internal/customErrors"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// AuthMiddleware verifies the bearer token and injects the decoded
// claims into the request context. A missing header is 401, a token
// that fails signature or expiry checks is 403.
func AuthMiddleware(token config.Token) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			header := r.Header.Get("Authorization")
			if header == "" {
				return customerrors.ErrMissingToken
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return customerrors.ErrMissingToken
			}

			claims, err := token.ValidateJWT(parts[1])
			if err != nil {
				return customerrors.ErrInvalidToken
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			return next(w, r.WithContext(ctx))
		}
	}
}

// ClaimsFromContext returns the claims stored by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) (*config.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*config.Claims)
	return claims, ok
}
