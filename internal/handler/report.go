package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/nirvaankohli/invasisee/internal/middleware"
	"github.com/nirvaankohli/invasisee/internal/services"
	"github.com/nirvaankohli/invasisee/internal/utils"
)

// maxUploadSize limite la taille du fichier à 10MB
const maxUploadSize = 10 << 20

// SubmitReport accepte une photo multipart + lat/lng optionnels et la
// passe à l'orchestrateur de soumission
func SubmitReport(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "no image provided")
		return
	}
	defer file.Close()

	if fileHeader.Filename == "" {
		utils.Error(w, http.StatusBadRequest, "empty filename")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "could not read image")
		return
	}
	if len(content) == 0 {
		utils.Error(w, http.StatusBadRequest, "empty file")
		return
	}

	// Coordonnées optionnelles; une valeur malformée vaut "pas de
	// localisation", jamais un rejet
	lat, lng := utils.ParseCoordinatePair(r.FormValue("lat"), r.FormValue("lng"))

	result, err := submissionSvc.Submit(r.Context(), services.SubmissionInput{
		UserID:   user.ID,
		Username: user.Username,
		Filename: fileHeader.Filename,
		Content:  content,
		Lat:      lat,
		Lng:      lng,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not process submission: "+err.Error())
		return
	}

	utils.Success(w, result)
}

// GetReports renvoie le flux public des rapports invasifs, du plus récent
// au plus ancien
func GetReports(w http.ResponseWriter, r *http.Request) {
	reports, err := ledgerSvc.ListInvasiveReports(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query reports: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{"reports": reports})
}
