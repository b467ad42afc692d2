package services

import (
	"context"
	"fmt"

	"github.com/nirvaankohli/invasisee/internal/database"
	model "github.com/nirvaankohli/invasisee/internal/models"
	"github.com/nirvaankohli/invasisee/internal/scanner"
)

// Ledger est le registre append-only des observations confirmées. Aucune
// fonction d'update ou de delete n'existe volontairement.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// AppendReport insère un rapport et retourne son id (strictement croissant)
func (l *Ledger) AppendReport(ctx context.Context, r model.Report) (int64, error) {
	var id int64
	err := database.DB.QueryRow(ctx,
		`INSERT INTO reports (user_id, username, species, invasive, summary, lat, lng, image_filename, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		 RETURNING id`,
		r.UserID, r.Username, r.Species, r.Invasive, r.Summary,
		r.Lat, r.Lng, r.ImageFilename, r.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("could not insert report: %w", err)
	}
	return id, nil
}

// ListInvasiveReports retourne le flux public: uniquement les rapports
// invasifs, du plus récent au plus ancien
func (l *Ledger) ListInvasiveReports(ctx context.Context) ([]model.Report, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, user_id, username, species, invasive, summary,
		       lat, lng, image_filename, image_url, created_at
		FROM reports
		WHERE invasive = true
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query reports: %w", err)
	}
	defer rows.Close()

	reports := []model.Report{}
	for rows.Next() {
		r, err := scanner.ScanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan report row: %w", err)
		}
		reports = append(reports, *r)
	}
	return reports, rows.Err()
}
