package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirvaankohli/invasisee/internal/middleware"
	model "github.com/nirvaankohli/invasisee/internal/models"
	"github.com/nirvaankohli/invasisee/internal/services"
	"github.com/nirvaankohli/invasisee/internal/utils"
)

type fakeProgression struct {
	profile     *model.ProfileSnapshot
	profileErr  error
	purchaseErr error
	equipErr    error
	balance     int
	unlocked    []string
}

func (f *fakeProgression) Profile(ctx context.Context, userID string) (*model.ProfileSnapshot, error) {
	return f.profile, f.profileErr
}

func (f *fakeProgression) Purchase(ctx context.Context, userID, itemID string) (int, []string, error) {
	if f.purchaseErr != nil {
		return 0, nil, f.purchaseErr
	}
	return f.balance, f.unlocked, nil
}

func (f *fakeProgression) Equip(ctx context.Context, userID, itemID string) error {
	return f.equipErr
}

func authedRequest(method, path, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	return middleware.RequestWithUser(r, model.UserProfile{ID: "user-1", Username: "nirvaan"})
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestGetProfile(t *testing.T) {
	progressionSvc = &fakeProgression{profile: &model.ProfileSnapshot{
		Username: "nirvaan", XPTotal: 150, XPBalance: 75, Level: 3,
		UnlockedCosmetics: []string{"leaves_spring"},
		PrevThreshold:     150, NextThreshold: 300, MaxLevel: 5,
	}}

	w := httptest.NewRecorder()
	GetProfile(w, authedRequest(http.MethodGet, "/api/profile", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestGetProfile_RequiresAuth(t *testing.T) {
	progressionSvc = &fakeProgression{}

	w := httptest.NewRecorder()
	GetProfile(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPurchaseCosmetic_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown item", services.ErrUnknownItem, http.StatusNotFound},
		{"already owned", services.ErrAlreadyOwned, http.StatusBadRequest},
		{"insufficient balance", services.ErrInsufficientXP, http.StatusBadRequest},
		{"user not found", services.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progressionSvc = &fakeProgression{purchaseErr: tt.err}

			w := httptest.NewRecorder()
			PurchaseCosmetic(w, authedRequest(http.MethodPost, "/api/cosmetics/purchase", `{"id":"pot_white"}`))

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
		})
	}
}

func TestPurchaseCosmetic_Success(t *testing.T) {
	progressionSvc = &fakeProgression{balance: 25, unlocked: []string{"pot_terracotta", "leaves_spring"}}

	w := httptest.NewRecorder()
	PurchaseCosmetic(w, authedRequest(http.MethodPost, "/api/cosmetics/purchase", `{"id":"leaves_spring"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(25), data["xpBalance"])
}

func TestEquipCosmetic_NotOwned(t *testing.T) {
	progressionSvc = &fakeProgression{equipErr: services.ErrNotOwned}

	w := httptest.NewRecorder()
	EquipCosmetic(w, authedRequest(http.MethodPost, "/api/cosmetics/equip", `{"id":"pot_white"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEquipCosmetic_Success(t *testing.T) {
	progressionSvc = &fakeProgression{}

	w := httptest.NewRecorder()
	EquipCosmetic(w, authedRequest(http.MethodPost, "/api/cosmetics/equip", `{"id":"pot_white"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pot_white", data["activeCosmetic"])
}
