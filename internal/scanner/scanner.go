package scanner

import (
	"database/sql"

	model "github.com/nirvaankohli/invasisee/internal/models"
)

// rowScanner couvre pgx.Row et pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile.
// Colonnes attendues: id, username, xp_total, xp_balance, level,
// unlocked_cosmetics, active_cosmetic, created_at
func ScanUserProfile(s rowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var active sql.NullString

	err := s.Scan(
		&user.ID, &user.Username,
		&user.XPTotal, &user.XPBalance, &user.Level,
		&user.UnlockedCosmetics, &active,
		&user.JoinDate,
	)
	if err != nil {
		return nil, err
	}

	if active.Valid {
		user.ActiveCosmetic = &active.String
	}
	if user.UnlockedCosmetics == nil {
		user.UnlockedCosmetics = []string{}
	}

	return &user, nil
}

// ScanReport scanne une ligne SQL vers un Report.
// Colonnes attendues: id, user_id, username, species, invasive, summary,
// lat, lng, image_filename, image_url, created_at
func ScanReport(s rowScanner) (*model.Report, error) {
	var r model.Report
	var userID, username sql.NullString
	var lat, lng sql.NullFloat64

	err := s.Scan(
		&r.ID, &userID, &username, &r.Species, &r.Invasive, &r.Summary,
		&lat, &lng, &r.ImageFilename, &r.ImageURL, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		r.UserID = &userID.String
	}
	if username.Valid {
		r.Username = &username.String
	}
	if lat.Valid {
		r.Lat = &lat.Float64
	}
	if lng.Valid {
		r.Lng = &lng.Float64
	}

	return &r, nil
}
