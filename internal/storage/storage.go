// Package storage defines the character persistence contract shared by every
// backend, and the in-memory backend used when persistence is disabled.
package storage

import (
	"context"
	"errors"

	"github.com/cory-johannsen/deadmud/internal/game/character"
)

// ErrCharacterNotFound is returned when a character lookup yields no results.
var ErrCharacterNotFound = errors.New("character not found")

// ErrCharacterNameTaken is returned when creating a character whose name is already in use.
var ErrCharacterNameTaken = errors.New("character name already taken")

// CharacterRepository persists character records. Names are unique without
// regard to case.
type CharacterRepository interface {
	// Create stores a new character, assigning its UID and timestamps.
	Create(ctx context.Context, ch *character.Character) error
	// GetByName loads a character by name, ignoring case.
	GetByName(ctx context.Context, name string) (*character.Character, error)
	// Save overwrites the stored record of an existing character.
	Save(ctx context.Context, ch *character.Character) error
}
