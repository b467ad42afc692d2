package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func DecodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

// ParseCoordinatePair parse lat/lng depuis les champs du formulaire. La
// paire est atomique: une valeur malformée invalide les deux (jamais une
// erreur de soumission, juste "pas de localisation").
func ParseCoordinatePair(latStr, lngStr string) (*float64, *float64) {
	if latStr == "" && lngStr == "" {
		return nil, nil
	}

	var lat, lng *float64
	if latStr != "" {
		v, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, nil
		}
		lat = &v
	}
	if lngStr != "" {
		v, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return nil, nil
		}
		lng = &v
	}
	return lat, lng
}
