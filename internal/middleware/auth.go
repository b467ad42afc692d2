package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/nirvaankohli/invasisee/internal/database"
	model "github.com/nirvaankohli/invasisee/internal/models"
	"github.com/nirvaankohli/invasisee/internal/scanner"
	"github.com/nirvaankohli/invasisee/internal/utils"
)

// Context keys
type contextKey string

const (
	userContextKey  = contextKey("user")
	tokenContextKey = contextKey("token")
)

// AuthMiddleware valide le token et injecte l'utilisateur dans le contexte
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Récupérer le token depuis le header Authorization
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.Error(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		// Valider le token et récupérer l'utilisateur
		user, err := validateTokenAndGetUser(r.Context(), token)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		// Injecter l'utilisateur et le token dans le contexte
		ctx := context.WithValue(r.Context(), userContextKey, *user)
		ctx = context.WithValue(ctx, tokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateTokenAndGetUser valide le token et retourne l'utilisateur associé
func validateTokenAndGetUser(ctx context.Context, token string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT
			u.id, u.username, u.xp_total, u.xp_balance, u.level,
			u.unlocked_cosmetics, u.active_cosmetic, u.created_at
		FROM users u
		JOIN sessions s ON u.id = s.user_id
		WHERE s.token = $1
			AND s.is_active = true
			AND s.expires_at > NOW()`,
		token,
	)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("token not found or expired")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return user, nil
}

// GetUserFromContext récupère l'utilisateur depuis le contexte de la requête
func GetUserFromContext(r *http.Request) (model.UserProfile, error) {
	user, ok := r.Context().Value(userContextKey).(model.UserProfile)
	if !ok {
		return model.UserProfile{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}

// GetTokenFromContext récupère le token depuis le contexte de la requête
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in context")
	}
	return token, nil
}

// RequestWithUser retourne une copie de la requête avec l'utilisateur
// injecté dans le contexte, comme le ferait AuthMiddleware
func RequestWithUser(r *http.Request, user model.UserProfile) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}
