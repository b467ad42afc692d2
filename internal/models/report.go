package model

import "time"

// Report est une observation confirmée d'espèce invasive. Immuable une
// fois insérée; user_id est NULL pour les données pré-remplies.
type Report struct {
	ID            int64     `json:"id"`
	UserID        *string   `json:"userId,omitempty"`
	Username      *string   `json:"username,omitempty"`
	Species       string    `json:"species"`
	Invasive      bool      `json:"invasive"`
	Summary       string    `json:"summary"`
	Lat           *float64  `json:"lat"`
	Lng           *float64  `json:"lng"`
	ImageFilename string    `json:"-"`
	ImageURL      string    `json:"imageUrl"`
	CreatedAt     time.Time `json:"createdAt"`
}
