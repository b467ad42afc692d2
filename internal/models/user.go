package model

import (
	"time"
)

type UserProfile struct {
	ID       string    `json:"id,omitempty"`
	Username string    `json:"username"`
	JoinDate time.Time `json:"joinDate,omitempty"`

	// Progression: xpTotal ne descend jamais, xpBalance est dépensable
	XPTotal           int      `json:"xpTotal"`
	XPBalance         int      `json:"xpBalance"`
	Level             int      `json:"level"`
	UnlockedCosmetics []string `json:"unlockedCosmetics"`
	ActiveCosmetic    *string  `json:"activeCosmetic,omitempty"`
}

// ProfileSnapshot est la vue renvoyée par GET /api/profile, avec les
// seuils nécessaires au rendu de la barre de progression
type ProfileSnapshot struct {
	Username          string     `json:"username"`
	XPTotal           int        `json:"xpTotal"`
	XPBalance         int        `json:"xpBalance"`
	Level             int        `json:"level"`
	UnlockedCosmetics []string   `json:"unlockedCosmetics"`
	ActiveCosmetic    *string    `json:"activeCosmetic"`
	PrevThreshold     int        `json:"prevThreshold"`
	NextThreshold     int        `json:"nextThreshold"`
	MaxLevel          int        `json:"maxLevel"`
	Store             []Cosmetic `json:"store"`
}
