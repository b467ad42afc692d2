package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/nirvaankohli/invasisee/internal/config"
	"github.com/nirvaankohli/invasisee/internal/handler"
	"github.com/nirvaankohli/invasisee/internal/middleware"
	"github.com/nirvaankohli/invasisee/internal/utils"
)

func SetupRouter(cfg *config.Config) http.Handler {
	r := mux.NewRouter()

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/api/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/api/logout", handler.Logout).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/api/me", handler.Me).Methods(http.MethodGet)

	// Reports - la soumission exige une identité, le flux public non
	authenticatedRoutes.HandleFunc("/api/report", handler.SubmitReport).Methods(http.MethodPost)
	r.HandleFunc("/api/reports", handler.GetReports).Methods(http.MethodGet)

	// Progression
	authenticatedRoutes.HandleFunc("/api/profile", handler.GetProfile).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/api/cosmetics/purchase", handler.PurchaseCosmetic).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/api/cosmetics/equip", handler.EquipCosmetic).Methods(http.MethodPost)

	// Images stockées en local
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))),
	).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
