// Package redis stores character records as JSON documents in Redis.
//
// Each record lives under <prefix>:character:<uid>; the hash
// <prefix>:character_names maps lowercase names to UIDs.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/cory-johannsen/deadmud/internal/config"
	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/storage"
)

// CharacterRepository persists characters in Redis.
type CharacterRepository struct {
	client goredis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewClient connects to the Redis server named by cfg.
//
// Postcondition: Returns a client that answered PING, or a non-nil error.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewCharacterRepository creates a CharacterRepository whose keys start with prefix.
//
// Precondition: client must be non-nil.
func NewCharacterRepository(client goredis.UniversalClient, prefix string) *CharacterRepository {
	if client == nil {
		panic("redis.NewCharacterRepository: client must not be nil")
	}
	return &CharacterRepository{client: client, prefix: prefix, now: time.Now}
}

// WithClock replaces the time source used for CreatedAt and UpdatedAt.
func (r *CharacterRepository) WithClock(now func() time.Time) *CharacterRepository {
	r.now = now
	return r
}

func (r *CharacterRepository) recordKey(uid uuid.UUID) string {
	return fmt.Sprintf("%s:character:%s", r.prefix, uid)
}

func (r *CharacterRepository) namesKey() string {
	return r.prefix + ":character_names"
}

// Create reserves ch's name and stores its record.
//
// Postcondition: ch.UID, ch.CreatedAt and ch.UpdatedAt are set, or
// storage.ErrCharacterNameTaken is returned and nothing is written.
func (r *CharacterRepository) Create(ctx context.Context, ch *character.Character) error {
	if ch == nil {
		return errors.New("character cannot be nil")
	}
	if ch.UID == uuid.Nil {
		ch.UID = uuid.New()
	}
	name := strings.ToLower(ch.Name)

	reserved, err := r.client.HSetNX(ctx, r.namesKey(), name, ch.UID.String()).Result()
	if err != nil {
		return fmt.Errorf("reserving character name: %w", err)
	}
	if !reserved {
		return storage.ErrCharacterNameTaken
	}

	now := r.now().UTC()
	ch.CreatedAt = now
	ch.UpdatedAt = now
	data, err := json.Marshal(ch)
	if err != nil {
		return errors.Join(fmt.Errorf("marshalling character: %w", err), r.releaseName(ctx, name))
	}
	if err := r.client.Set(ctx, r.recordKey(ch.UID), data, 0).Err(); err != nil {
		return errors.Join(fmt.Errorf("storing character: %w", err), r.releaseName(ctx, name))
	}
	return nil
}

// releaseName drops a name reservation whose record was never written.
func (r *CharacterRepository) releaseName(ctx context.Context, name string) error {
	if err := r.client.HDel(ctx, r.namesKey(), name).Err(); err != nil {
		return fmt.Errorf("releasing character name %q: %w", name, err)
	}
	return nil
}

// GetByName loads a character by name, ignoring case.
//
// Postcondition: Returns the Character or storage.ErrCharacterNotFound.
func (r *CharacterRepository) GetByName(ctx context.Context, name string) (*character.Character, error) {
	uid, err := r.client.HGet(ctx, r.namesKey(), strings.ToLower(name)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("looking up character name: %w", err)
	}
	id, err := uuid.Parse(uid)
	if err != nil {
		return nil, fmt.Errorf("corrupt uid %q for %q: %w", uid, name, err)
	}
	return r.GetByUID(ctx, id)
}

// GetByUID loads a character by UID.
//
// Postcondition: Returns the Character or storage.ErrCharacterNotFound.
func (r *CharacterRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*character.Character, error) {
	data, err := r.client.Get(ctx, r.recordKey(uid)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, storage.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("loading character: %w", err)
	}
	var ch character.Character
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, fmt.Errorf("unmarshalling character: %w", err)
	}
	return &ch, nil
}

// Save overwrites the record of an existing character.
//
// Postcondition: Returns storage.ErrCharacterNotFound if ch was never created.
func (r *CharacterRepository) Save(ctx context.Context, ch *character.Character) error {
	if ch == nil {
		return errors.New("character cannot be nil")
	}
	prev := ch.UpdatedAt
	ch.UpdatedAt = r.now().UTC()
	data, err := json.Marshal(ch)
	if err != nil {
		ch.UpdatedAt = prev
		return fmt.Errorf("marshalling character: %w", err)
	}
	ok, err := r.client.SetXX(ctx, r.recordKey(ch.UID), data, goredis.KeepTTL).Result()
	if err != nil {
		ch.UpdatedAt = prev
		return fmt.Errorf("saving character: %w", err)
	}
	if !ok {
		ch.UpdatedAt = prev
		return storage.ErrCharacterNotFound
	}
	return nil
}
