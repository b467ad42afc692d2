package handler

import (
	"net/http"

	"github.com/nirvaankohli/invasisee/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Invasisee API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/api/register", "description": "Inscription utilisateur"},
				{"method": "POST", "path": "/api/login", "description": "Connexion utilisateur"},
				{"method": "POST", "path": "/api/logout", "description": "Déconnexion utilisateur"},
				{"method": "GET", "path": "/api/me", "description": "Utilisateur courant"},
			},
			"reports": []map[string]string{
				{"method": "POST", "path": "/api/report", "description": "Soumettre une photo pour identification"},
				{"method": "GET", "path": "/api/reports", "description": "Flux public des rapports invasifs"},
				{"method": "GET", "path": "/uploads/{filename}", "description": "Image d'un rapport"},
			},
			"progression": []map[string]string{
				{"method": "GET", "path": "/api/profile", "description": "Profil XP/niveau/cosmétiques"},
				{"method": "POST", "path": "/api/cosmetics/purchase", "description": "Acheter un cosmétique"},
				{"method": "POST", "path": "/api/cosmetics/equip", "description": "Équiper un cosmétique"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
	}

	utils.Success(w, routes)
}
