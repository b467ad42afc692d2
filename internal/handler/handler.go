package handler

import (
	"context"
	"net/http"

	"github.com/nirvaankohli/invasisee/internal/classify"
	"github.com/nirvaankohli/invasisee/internal/config"
	model "github.com/nirvaankohli/invasisee/internal/models"
	"github.com/nirvaankohli/invasisee/internal/services"
	"github.com/nirvaankohli/invasisee/internal/utils"
)

// SubmissionService est la surface de l'orchestrateur vue des handlers
type SubmissionService interface {
	Submit(ctx context.Context, in services.SubmissionInput) (*services.SubmissionResult, error)
}

// ProgressionService est la surface de l'économie XP vue des handlers
type ProgressionService interface {
	Profile(ctx context.Context, userID string) (*model.ProfileSnapshot, error)
	Purchase(ctx context.Context, userID, itemID string) (int, []string, error)
	Equip(ctx context.Context, userID, itemID string) error
}

// LedgerService est la surface du registre vue des handlers
type LedgerService interface {
	ListInvasiveReports(ctx context.Context) ([]model.Report, error)
}

// Services injectés par Configure; remplaçables par des fakes en test
var (
	submissionSvc  SubmissionService
	progressionSvc ProgressionService
	ledgerSvc      LedgerService
)

// Configure câble les services concrets des handlers
func Configure(cfg *config.Config) error {
	store, err := services.NewImageStore(cfg)
	if err != nil {
		return err
	}

	gateway := classify.New(cfg)
	ledger := services.NewLedger()
	progression := services.NewProgression(services.DefaultProgressionConfig())

	submissionSvc = services.NewSubmission(
		gateway, store, ledger, progression,
		progression.Config().AwardPerReport,
	)
	progressionSvc = progression
	ledgerSvc = ledger

	return nil
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
