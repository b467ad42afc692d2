package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/nirvaankohli/invasisee/internal/database"
	model "github.com/nirvaankohli/invasisee/internal/models"
	"github.com/nirvaankohli/invasisee/internal/scanner"
)

// ProgressionConfig est la configuration immuable de l'économie XP,
// injectée à la construction. Seuils et catalogue sont des constantes de
// compilation, jamais mutées ni persistées.
type ProgressionConfig struct {
	// Thresholds[i] est le XP total requis pour le niveau i+1
	Thresholds     []int
	MaxLevel       int
	AwardPerReport int
	Catalog        []model.Cosmetic
}

// DefaultProgressionConfig retourne l'économie de production
func DefaultProgressionConfig() ProgressionConfig {
	return ProgressionConfig{
		Thresholds:     []int{0, 50, 150, 300, 500},
		MaxLevel:       5,
		AwardPerReport: 50,
		Catalog: []model.Cosmetic{
			{ID: "pot_terracotta", Label: "Terracotta Pot", Cost: 50},
			{ID: "pot_white", Label: "White Pot", Cost: 100},
			{ID: "leaves_spring", Label: "Spring Leaves", Cost: 75},
			{ID: "leaves_autumn", Label: "Autumn Leaves", Cost: 125},
		},
	}
}

// LevelFor retourne le plus haut niveau dont le seuil est atteint,
// borné à [1, MaxLevel]
func (c ProgressionConfig) LevelFor(xpTotal int) int {
	level := 1
	for i, threshold := range c.Thresholds {
		if xpTotal >= threshold {
			level = i + 1
		}
	}
	return min(level, c.MaxLevel)
}

// ThresholdBounds retourne les seuils de début du niveau courant et du
// niveau suivant (barre de progression)
func (c ProgressionConfig) ThresholdBounds(level int) (prev, next int) {
	nextIdx := min(level, len(c.Thresholds)-1)
	next = c.Thresholds[nextIdx]
	if level > 1 {
		prev = c.Thresholds[nextIdx-1]
	}
	return prev, next
}

// FindCosmetic cherche une entrée du catalogue par id
func (c ProgressionConfig) FindCosmetic(itemID string) (model.Cosmetic, bool) {
	for _, item := range c.Catalog {
		if item.ID == itemID {
			return item, true
		}
	}
	return model.Cosmetic{}, false
}

// CheckPurchase applique les règles d'achat sans toucher à l'état
func (c ProgressionConfig) CheckPurchase(itemID string, balance int, unlocked []string) (model.Cosmetic, error) {
	item, ok := c.FindCosmetic(itemID)
	if !ok {
		return model.Cosmetic{}, ErrUnknownItem
	}
	if slices.Contains(unlocked, itemID) {
		return model.Cosmetic{}, ErrAlreadyOwned
	}
	if balance < item.Cost {
		return model.Cosmetic{}, ErrInsufficientXP
	}
	return item, nil
}

// Progression possède l'état XP/niveau/cosmétiques par utilisateur. Toutes
// les mutations passent par une transaction avec verrou de ligne
// (SELECT ... FOR UPDATE): deux opérations concurrentes sur le même
// utilisateur se sérialisent, les utilisateurs différents restent parallèles.
type Progression struct {
	cfg ProgressionConfig
}

func NewProgression(cfg ProgressionConfig) *Progression {
	return &Progression{cfg: cfg}
}

// Config expose la configuration (lecture seule)
func (p *Progression) Config() ProgressionConfig {
	return p.cfg
}

// AwardXP crédite xp_total et xp_balance et recalcule le niveau
func (p *Progression) AwardXP(ctx context.Context, userID string, amount int) error {
	if userID == "" || amount <= 0 {
		return fmt.Errorf("%w: award requires a user and a positive amount", ErrInvalidInput)
	}

	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var xpTotal, xpBalance int
	err = tx.QueryRow(ctx,
		`SELECT xp_total, xp_balance FROM users WHERE id=$1 FOR UPDATE`,
		userID,
	).Scan(&xpTotal, &xpBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("could not read user: %w", err)
	}

	xpTotal += amount
	xpBalance += amount
	level := p.cfg.LevelFor(xpTotal)

	_, err = tx.Exec(ctx,
		`UPDATE users SET xp_total=$1, xp_balance=$2, level=$3 WHERE id=$4`,
		xpTotal, xpBalance, level, userID,
	)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}

	return tx.Commit(ctx)
}

// Purchase débite xp_balance et débloque l'objet. xp_total et level ne
// bougent jamais: un achat dépense le solde, pas la progression.
func (p *Progression) Purchase(ctx context.Context, userID, itemID string) (int, []string, error) {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int
	var unlocked []string
	err = tx.QueryRow(ctx,
		`SELECT xp_balance, unlocked_cosmetics FROM users WHERE id=$1 FOR UPDATE`,
		userID,
	).Scan(&balance, &unlocked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil, ErrUserNotFound
		}
		return 0, nil, fmt.Errorf("could not read user: %w", err)
	}

	item, err := p.cfg.CheckPurchase(itemID, balance, unlocked)
	if err != nil {
		return 0, nil, err
	}

	balance -= item.Cost
	unlocked = append(unlocked, itemID)

	_, err = tx.Exec(ctx,
		`UPDATE users SET xp_balance=$1, unlocked_cosmetics=$2 WHERE id=$3`,
		balance, unlocked, userID,
	)
	if err != nil {
		return 0, nil, fmt.Errorf("could not update user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, nil, err
	}
	return balance, unlocked, nil
}

// Equip active un cosmétique déjà débloqué. Pas d'opération inverse.
func (p *Progression) Equip(ctx context.Context, userID, itemID string) error {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var unlocked []string
	err = tx.QueryRow(ctx,
		`SELECT unlocked_cosmetics FROM users WHERE id=$1 FOR UPDATE`,
		userID,
	).Scan(&unlocked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("could not read user: %w", err)
	}

	if !slices.Contains(unlocked, itemID) {
		return ErrNotOwned
	}

	_, err = tx.Exec(ctx,
		`UPDATE users SET active_cosmetic=$1 WHERE id=$2`,
		itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}

	return tx.Commit(ctx)
}

// Profile retourne l'instantané complet servi à la présentation
func (p *Progression) Profile(ctx context.Context, userID string) (*model.ProfileSnapshot, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT id, username, xp_total, xp_balance, level,
		       unlocked_cosmetics, active_cosmetic, created_at
		FROM users WHERE id=$1`,
		userID,
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not read user: %w", err)
	}

	prev, next := p.cfg.ThresholdBounds(user.Level)
	return &model.ProfileSnapshot{
		Username:          user.Username,
		XPTotal:           user.XPTotal,
		XPBalance:         user.XPBalance,
		Level:             user.Level,
		UnlockedCosmetics: user.UnlockedCosmetics,
		ActiveCosmetic:    user.ActiveCosmetic,
		PrevThreshold:     prev,
		NextThreshold:     next,
		MaxLevel:          p.cfg.MaxLevel,
		Store:             p.cfg.Catalog,
	}, nil
}
