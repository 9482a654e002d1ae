package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/storage"
)

// CharacterRepository provides character persistence operations.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

const characterColumns = `id, uid, name, sex, class, race, level, total_level, experience, practices, title,
	real_abilities, abilities, hit, max_hit, mana, max_mana, move, max_move,
	drunk, hunger, thirst, multi_flags, skills, holylight, location, created_at, updated_at`

// Create inserts a new character.
//
// Precondition: ch.Name must be non-empty.
// Postcondition: ch.ID, ch.UID, ch.CreatedAt and ch.UpdatedAt are set, or
// storage.ErrCharacterNameTaken is returned on a duplicate name.
func (r *CharacterRepository) Create(ctx context.Context, ch *character.Character) error {
	if ch.UID == uuid.Nil {
		ch.UID = uuid.New()
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO characters
			(uid, name, sex, class, race, level, total_level, experience, practices, title,
			 real_abilities, abilities, hit, max_hit, mana, max_mana, move, max_move,
			 drunk, hunger, thirst, multi_flags, skills, holylight, location)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
		RETURNING id, created_at, updated_at`,
		ch.UID, ch.Name, int(ch.Sex), int(ch.Class), int(ch.Race),
		ch.Level, ch.TotalLevel, ch.Experience, ch.Practices, ch.Title,
		ch.RealAbilities, ch.Abilities,
		ch.Points.Hit, ch.Points.MaxHit, ch.Points.Mana, ch.Points.MaxMana, ch.Points.Move, ch.Points.MaxMove,
		ch.Conditions.Drunk, ch.Conditions.Hunger, ch.Conditions.Thirst,
		int64(ch.MultiFlags), skillsOrEmpty(ch.Skills), ch.Holylight, ch.Location,
	).Scan(&ch.ID, &ch.CreatedAt, &ch.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrCharacterNameTaken
		}
		return fmt.Errorf("inserting character: %w", err)
	}
	return nil
}

// GetByName retrieves a character by name, ignoring case.
//
// Postcondition: Returns the Character or storage.ErrCharacterNotFound.
func (r *CharacterRepository) GetByName(ctx context.Context, name string) (*character.Character, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE LOWER(name) = $1`,
		strings.ToLower(name),
	)
	return scanCharacter(row)
}

// GetByUID retrieves a character by its UID.
//
// Postcondition: Returns the Character or storage.ErrCharacterNotFound.
func (r *CharacterRepository) GetByUID(ctx context.Context, uid uuid.UUID) (*character.Character, error) {
	row := r.db.QueryRow(ctx, `SELECT `+characterColumns+` FROM characters WHERE uid = $1`, uid)
	return scanCharacter(row)
}

// Save persists the full character record.
//
// Precondition: ch.ID must be > 0.
// Postcondition: Returns nil on success, storage.ErrCharacterNotFound if no row updated.
func (r *CharacterRepository) Save(ctx context.Context, ch *character.Character) error {
	err := r.db.QueryRow(ctx, `
		UPDATE characters SET
			sex = $2, class = $3, race = $4, level = $5, total_level = $6, experience = $7,
			practices = $8, title = $9, real_abilities = $10, abilities = $11,
			hit = $12, max_hit = $13, mana = $14, max_mana = $15, move = $16, max_move = $17,
			drunk = $18, hunger = $19, thirst = $20, multi_flags = $21, skills = $22,
			holylight = $23, location = $24, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		ch.ID, int(ch.Sex), int(ch.Class), int(ch.Race),
		ch.Level, ch.TotalLevel, ch.Experience, ch.Practices, ch.Title,
		ch.RealAbilities, ch.Abilities,
		ch.Points.Hit, ch.Points.MaxHit, ch.Points.Mana, ch.Points.MaxMana, ch.Points.Move, ch.Points.MaxMove,
		ch.Conditions.Drunk, ch.Conditions.Hunger, ch.Conditions.Thirst,
		int64(ch.MultiFlags), skillsOrEmpty(ch.Skills), ch.Holylight, ch.Location,
	).Scan(&ch.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.ErrCharacterNotFound
		}
		return fmt.Errorf("saving character: %w", err)
	}
	return nil
}

func scanCharacter(row pgx.Row) (*character.Character, error) {
	var (
		c                character.Character
		sex, class, race int
		multiFlags       int64
	)
	err := row.Scan(
		&c.ID, &c.UID, &c.Name, &sex, &class, &race,
		&c.Level, &c.TotalLevel, &c.Experience, &c.Practices, &c.Title,
		&c.RealAbilities, &c.Abilities,
		&c.Points.Hit, &c.Points.MaxHit, &c.Points.Mana, &c.Points.MaxMana, &c.Points.Move, &c.Points.MaxMove,
		&c.Conditions.Drunk, &c.Conditions.Hunger, &c.Conditions.Thirst,
		&multiFlags, &c.Skills, &c.Holylight, &c.Location, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("querying character: %w", err)
	}
	c.Sex = ruleset.Sex(sex)
	c.Class = ruleset.ClassID(class)
	c.Race = ruleset.RaceID(race)
	c.MultiFlags = uint32(multiFlags)
	return &c, nil
}

func skillsOrEmpty(skills map[string]int) map[string]int {
	if skills == nil {
		return map[string]int{}
	}
	return skills
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	// SQLSTATE 23505 is unique_violation.
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
