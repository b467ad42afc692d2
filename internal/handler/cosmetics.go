package handler

import (
	"errors"
	"net/http"

	"github.com/nirvaankohli/invasisee/internal/middleware"
	"github.com/nirvaankohli/invasisee/internal/services"
	"github.com/nirvaankohli/invasisee/internal/utils"
)

type cosmeticRequest struct {
	ID string `json:"id"`
}

// GetProfile renvoie l'instantané de progression de l'utilisateur courant
func GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := progressionSvc.Profile(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.Error(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not fetch profile: "+err.Error())
		return
	}

	utils.Success(w, profile)
}

// PurchaseCosmetic achète un objet du catalogue avec le solde XP
func PurchaseCosmetic(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req cosmeticRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	balance, unlocked, err := progressionSvc.Purchase(r.Context(), user.ID, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownItem):
			utils.Error(w, http.StatusNotFound, "unknown item")
		case errors.Is(err, services.ErrAlreadyOwned):
			utils.Error(w, http.StatusBadRequest, "already owned")
		case errors.Is(err, services.ErrInsufficientXP):
			utils.Error(w, http.StatusBadRequest, "not enough XP")
		case errors.Is(err, services.ErrUserNotFound):
			utils.Error(w, http.StatusNotFound, "user not found")
		default:
			utils.Error(w, http.StatusInternalServerError, "could not purchase item: "+err.Error())
		}
		return
	}

	utils.Success(w, map[string]interface{}{
		"xpBalance":         balance,
		"unlockedCosmetics": unlocked,
	})
}

// EquipCosmetic active un cosmétique déjà débloqué
func EquipCosmetic(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req cosmeticRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := progressionSvc.Equip(r.Context(), user.ID, req.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotOwned):
			utils.Error(w, http.StatusBadRequest, "item not owned")
		case errors.Is(err, services.ErrUserNotFound):
			utils.Error(w, http.StatusNotFound, "user not found")
		default:
			utils.Error(w, http.StatusInternalServerError, "could not equip item: "+err.Error())
		}
		return
	}

	utils.Success(w, map[string]interface{}{
		"activeCosmetic": req.ID,
	})
}
