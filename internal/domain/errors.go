package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidRecipe = errors.New("invalid recipe")
	ErrInvalidPack   = errors.New("invalid pack")
	ErrDuplicatePack = errors.New("duplicate pack key")
	ErrUnknownPack   = errors.New("unknown pack")
)
