package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nirvaankohli/invasisee/internal/config"
	"github.com/nirvaankohli/invasisee/internal/logger"
)

// ErrAllProvidersFailed signale que tous les clients de la chaîne ont
// échoué. Les erreurs provider sous-jacentes sont enveloppées, jamais
// exposées avec leur forme d'origine.
var ErrAllProvidersFailed = errors.New("all classification providers failed")

// Verdict est le jugement structuré du provider sur une image
type Verdict struct {
	Species  string `json:"species"`
	Invasive bool   `json:"invasive"`
	Summary  string `json:"summary"`
}

// Result distingue "pas de provider configuré" (Skipped) d'un vrai
// verdict; un Skipped ne veut jamais dire "pas invasif".
type Result struct {
	Skipped bool
	Verdict *Verdict
}

const systemPrompt = `You identify species in images. Respond ONLY with strict JSON: ` +
	`{"species": string, "invasive": boolean, "summary": string}. ` +
	`If unsure, set species='Unknown' and invasive=false, and explain uncertainty in summary.`

const userPromptBase = "Identify the species and whether it is invasive. " +
	"Provide a summary under 500 chars including distinctive features, typical habitats, " +
	"your reasonings for your description, and any potential risks."

// defaultTimeout borne l'appel provider pour qu'un provider bloqué ne
// retienne pas une soumission indéfiniment
const defaultTimeout = 60 * time.Second

// Gateway essaie les clients dans l'ordre et coerce la sortie en Verdict
type Gateway struct {
	clients []VisionClient
	timeout time.Duration
}

// New construit la chaîne primary → legacy. Sans clé API, la gateway est
// désactivée et Classify retourne un Result "skipped".
func New(cfg *config.Config) *Gateway {
	g := &Gateway{timeout: defaultTimeout}
	if cfg.OpenAIAPIKey == "" {
		return g
	}
	g.clients = []VisionClient{
		NewChatClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, defaultTimeout),
		NewLegacyClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, defaultTimeout),
	}
	return g
}

// NewWithClients construit une gateway sur des clients arbitraires (tests)
func NewWithClients(timeout time.Duration, clients ...VisionClient) *Gateway {
	return &Gateway{clients: clients, timeout: timeout}
}

// Enabled indique si un provider est configuré
func (g *Gateway) Enabled() bool {
	return len(g.clients) > 0
}

// Classify envoie l'image au premier client qui répond et retourne
// toujours un Verdict bien typé ou une erreur dure.
func (g *Gateway) Classify(ctx context.Context, image []byte, lat, lng *float64) (Result, error) {
	if !g.Enabled() {
		return Result{Skipped: true}, nil
	}

	userPrompt := userPromptBase
	if lat != nil && lng != nil {
		userPrompt += fmt.Sprintf(" The photo was taken near coordinates (%v, %v).", *lat, *lng)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var lastErr error
	for _, client := range g.clients {
		raw, err := client.Classify(ctx, systemPrompt, userPrompt, image)
		if err != nil {
			lastErr = err
			logger.Warning("Classification via %s client failed: %v", client.Name(), err)
			// L'annulation appelant ne doit pas déclencher le repli
			if ctx.Err() != nil {
				break
			}
			continue
		}
		verdict := coerceVerdict(raw)
		return Result{Verdict: &verdict}, nil
	}

	return Result{}, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// coerceVerdict convertit le texte brut du provider en Verdict: parse
// strict, puis extraction de sous-chaîne JSON, puis verdict dégradé.
func coerceVerdict(raw string) Verdict {
	var v Verdict
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return normalizeVerdict(v, raw)
	}

	if extracted := ExtractJSON(raw); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), &v); err == nil {
			return normalizeVerdict(v, raw)
		}
	}

	summary := raw
	if summary == "" {
		summary = "No analysis returned"
	}
	return Verdict{Species: "Unknown", Invasive: false, Summary: summary}
}

func normalizeVerdict(v Verdict, raw string) Verdict {
	if v.Species == "" {
		v.Species = "Unknown"
	}
	if v.Summary == "" {
		v.Summary = raw
	}
	return v
}
