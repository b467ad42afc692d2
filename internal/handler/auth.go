package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/nirvaankohli/invasisee/internal/database"
	"github.com/nirvaankohli/invasisee/internal/middleware"
	"github.com/nirvaankohli/invasisee/internal/utils"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register crée un utilisateur avec l'état de progression initial
// (xp_total=0, xp_balance=0, level=1, aucun cosmétique)
func Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username and password required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	ctx := context.Background()
	var userID string
	err = database.DB.QueryRow(ctx,
		`INSERT INTO users(username, password_hash) VALUES($1, $2) RETURNING id`,
		req.Username, string(hashed),
	).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(w, http.StatusConflict, "user already exists")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not create user: "+err.Error())
		return
	}

	utils.Message(w, "user created")
}

// Login vérifie le mot de passe et ouvre une session à token UUID
func Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username and password required")
		return
	}

	ctx := context.Background()
	var userID, hashedPassword string
	err := database.DB.QueryRow(ctx,
		`SELECT id, password_hash FROM users WHERE username=$1`,
		req.Username,
	).Scan(&userID, &hashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not query user")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, userID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"username": req.Username,
		"token":    token,
	})
}

// Logout invalide la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Message(w, "logged out successfully")
}

// Me renvoie l'utilisateur courant
func Me(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}
	utils.Success(w, user)
}
