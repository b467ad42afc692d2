package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nirvaankohli/invasisee/internal/classify"
	"github.com/nirvaankohli/invasisee/internal/logger"
	model "github.com/nirvaankohli/invasisee/internal/models"
)

// Statuts d'une soumission tels que renvoyés au client
const (
	StatusSkipped              = "skipped"
	StatusClassified           = "classified"
	StatusClassificationFailed = "classification_failed"
)

// Classifier est la capacité de classification vue par l'orchestrateur
type Classifier interface {
	Classify(ctx context.Context, image []byte, lat, lng *float64) (classify.Result, error)
}

// ReportAppender est la partie du registre utilisée par l'orchestrateur
type ReportAppender interface {
	AppendReport(ctx context.Context, r model.Report) (int64, error)
}

// XPAwarder est la partie de la progression utilisée par l'orchestrateur
type XPAwarder interface {
	AwardXP(ctx context.Context, userID string, amount int) error
}

// SubmissionInput est une soumission validée côté transport
type SubmissionInput struct {
	UserID   string
	Username string
	Filename string
	Content  []byte
	Lat      *float64
	Lng      *float64
}

// SubmissionResult est renvoyé au client dans tous les chemins
type SubmissionResult struct {
	Status              string            `json:"status"`
	Bytes               int               `json:"bytes,omitempty"`
	Verdict             *classify.Verdict `json:"verdict,omitempty"`
	ReportID            *int64            `json:"reportId,omitempty"`
	ClassificationError string            `json:"classificationError,omitempty"`
	RewardFailed        bool              `json:"rewardFailed,omitempty"`
}

// Submission orchestre le pipeline: valider → classifier → stocker
// l'image → écrire le registre → créditer le XP. L'ordre est contractuel:
// l'image est stockée avant la ligne de registre pour que sa référence
// soit résolvable dès le commit, et le XP part strictement après le
// registre.
type Submission struct {
	classifier  Classifier
	store       ImageStore
	ledger      ReportAppender
	progression XPAwarder
	awardAmount int
}

func NewSubmission(classifier Classifier, store ImageStore, ledger ReportAppender, progression XPAwarder, awardAmount int) *Submission {
	return &Submission{
		classifier:  classifier,
		store:       store,
		ledger:      ledger,
		progression: progression,
		awardAmount: awardAmount,
	}
}

// Submit traite une soumission de photo de bout en bout
func (s *Submission) Submit(ctx context.Context, in SubmissionInput) (*SubmissionResult, error) {
	if in.Filename == "" {
		return nil, fmt.Errorf("%w: empty filename", ErrInvalidInput)
	}
	if len(in.Content) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	result, err := s.classifier.Classify(ctx, in.Content, in.Lat, in.Lng)
	if err != nil {
		// Échec dur de la gateway: échec doux pour le client (il peut
		// retenter la photo), rien n'est persisté
		if errors.Is(err, classify.ErrAllProvidersFailed) {
			logger.Warning("Submission by %s: %v", in.Username, err)
			return &SubmissionResult{
				Status:              StatusClassificationFailed,
				ClassificationError: err.Error(),
			}, nil
		}
		return nil, err
	}

	// Pas de provider configuré: succès dégradé explicite, jamais
	// interprété comme "pas invasif"
	if result.Skipped {
		return &SubmissionResult{
			Status: StatusSkipped,
			Bytes:  len(in.Content),
		}, nil
	}

	verdict := result.Verdict
	out := &SubmissionResult{
		Status:  StatusClassified,
		Verdict: verdict,
	}

	// Les verdicts non invasifs (y compris dégradés "Unknown") ne
	// produisent ni ligne durable ni XP
	if !verdict.Invasive {
		return out, nil
	}

	ref, url, err := s.store.Save(ctx, in.Filename, in.Content)
	if err != nil {
		return nil, fmt.Errorf("could not store image: %w", err)
	}

	report := model.Report{
		Species:       verdict.Species,
		Invasive:      true,
		Summary:       verdict.Summary,
		Lat:           in.Lat,
		Lng:           in.Lng,
		ImageFilename: ref,
		ImageURL:      url,
	}
	if in.UserID != "" {
		report.UserID = &in.UserID
		report.Username = &in.Username
	}

	reportID, err := s.ledger.AppendReport(ctx, report)
	if err != nil {
		// La récompense ne doit jamais partir sans écriture de registre
		return nil, fmt.Errorf("could not persist report: %w", err)
	}
	out.ReportID = &reportID

	// Échec de récompense: loggé, non fatal. Le rapport persisté reste
	// valide et la réponse reste un succès pour le rapport lui-même.
	if err := s.progression.AwardXP(ctx, in.UserID, s.awardAmount); err != nil {
		logger.Error("XP award failed for user %s (report %d): %v", in.UserID, reportID, err)
		out.RewardFailed = true
	}

	return out, nil
}
