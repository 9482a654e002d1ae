package storage

import (
	"context"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/deadmud/internal/game/character"
)

// Memory is a CharacterRepository that keeps records in process memory.
// Records are copied in and out, so callers never share state with the store.
type Memory struct {
	mu      sync.RWMutex
	records map[string]character.Character // lowercase name → record
	nextID  int64
}

// NewMemory creates an empty Memory repository.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]character.Character)}
}

// Create implements CharacterRepository.
//
// Postcondition: ch.ID, ch.UID, ch.CreatedAt and ch.UpdatedAt are set, or
// ErrCharacterNameTaken is returned.
func (m *Memory) Create(_ context.Context, ch *character.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := strings.ToLower(ch.Name)
	if _, exists := m.records[k]; exists {
		return ErrCharacterNameTaken
	}
	m.nextID++
	now := time.Now().UTC()
	ch.ID = m.nextID
	if ch.UID == uuid.Nil {
		ch.UID = uuid.New()
	}
	ch.CreatedAt = now
	ch.UpdatedAt = now
	m.records[k] = clone(ch)
	return nil
}

// GetByName implements CharacterRepository.
func (m *Memory) GetByName(_ context.Context, name string) (*character.Character, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[strings.ToLower(name)]
	if !ok {
		return nil, ErrCharacterNotFound
	}
	out := clone(&rec)
	return &out, nil
}

// Save implements CharacterRepository.
//
// Postcondition: Returns ErrCharacterNotFound if ch was never created.
func (m *Memory) Save(_ context.Context, ch *character.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := strings.ToLower(ch.Name)
	if _, ok := m.records[k]; !ok {
		return ErrCharacterNotFound
	}
	ch.UpdatedAt = time.Now().UTC()
	m.records[k] = clone(ch)
	return nil
}

func clone(ch *character.Character) character.Character {
	out := *ch
	out.Skills = maps.Clone(ch.Skills)
	return out
}
