package services

import "errors"

// Erreurs sentinelles de la couche services, mappées en codes HTTP par
// les handlers.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUserNotFound   = errors.New("user not found")
	ErrUnknownItem    = errors.New("unknown item")
	ErrAlreadyOwned   = errors.New("already owned")
	ErrInsufficientXP = errors.New("not enough XP")
	ErrNotOwned       = errors.New("item not owned")
)
