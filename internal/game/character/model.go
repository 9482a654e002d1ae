// Package character defines the character record and the class progression
// rules that act on it: ability rolls, experience, saving throws, attack
// bases and level advancement.
package character

import (
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

// Unlimited is the condition value that never decays. Immortals carry it in
// every condition slot.
const Unlimited = -1

// AbilityScores holds the six ability scores of a character.
//
// StrengthBonus is the percentile exceptional strength (0-100) carried only by
// classes that grant it, and only on a strength of 18.
type AbilityScores struct {
	Strength      int `json:"str"`
	StrengthBonus int `json:"str_add"`
	Intelligence  int `json:"int"`
	Wisdom        int `json:"wis"`
	Dexterity     int `json:"dex"`
	Constitution  int `json:"con"`
	Charisma      int `json:"cha"`
}

// Get returns the score of ability a, or 0 for an unknown ability.
func (s AbilityScores) Get(a ruleset.Ability) int {
	switch a {
	case ruleset.Strength:
		return s.Strength
	case ruleset.Intelligence:
		return s.Intelligence
	case ruleset.Wisdom:
		return s.Wisdom
	case ruleset.Dexterity:
		return s.Dexterity
	case ruleset.Constitution:
		return s.Constitution
	case ruleset.Charisma:
		return s.Charisma
	}
	return 0
}

// Set assigns v to ability a. Unknown abilities are ignored.
func (s *AbilityScores) Set(a ruleset.Ability, v int) {
	switch a {
	case ruleset.Strength:
		s.Strength = v
	case ruleset.Intelligence:
		s.Intelligence = v
	case ruleset.Wisdom:
		s.Wisdom = v
	case ruleset.Dexterity:
		s.Dexterity = v
	case ruleset.Constitution:
		s.Constitution = v
	case ruleset.Charisma:
		s.Charisma = v
	}
}

// Points are the current and maximum hit, mana and movement points.
type Points struct {
	Hit     int `json:"hit"`
	MaxHit  int `json:"max_hit"`
	Mana    int `json:"mana"`
	MaxMana int `json:"max_mana"`
	Move    int `json:"move"`
	MaxMove int `json:"max_move"`
}

// Conditions tracks drunkenness, hunger and thirst. Unlimited disables decay.
type Conditions struct {
	Drunk  int `json:"drunk"`
	Hunger int `json:"hunger"`
	Thirst int `json:"thirst"`
}

// Character represents a player character's persistent state.
//
// ID and UID are set by the persistence layer; zero values indicate an unsaved character.
type Character struct {
	ID  int64     `json:"id"`
	UID uuid.UUID `json:"uid"`

	Name  string          `json:"name"`
	Sex   ruleset.Sex     `json:"sex"`
	Class ruleset.ClassID `json:"class"`
	Race  ruleset.RaceID  `json:"race"`

	Level      int    `json:"level"`
	TotalLevel int    `json:"total_level"` // levels gained across every class
	Experience int64  `json:"exp"`
	Practices  int    `json:"practices"`
	Title      string `json:"title"`

	// RealAbilities are the rolled scores; Abilities are the effective
	// scores after equipment and affects.
	RealAbilities AbilityScores `json:"real_abilities"`
	Abilities     AbilityScores `json:"abilities"`

	Points     Points         `json:"points"`
	Conditions Conditions     `json:"conditions"`
	MultiFlags uint32         `json:"multi_flags"` // classes multiclassed into, by ClassID bit
	Skills     map[string]int `json:"skills,omitempty"`
	Holylight  bool           `json:"holylight"`

	Location string `json:"location"` // current room ID

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCompleted reports whether the character has already multiclassed into id.
func (c *Character) HasCompleted(id ruleset.ClassID) bool {
	bit := id.Bit()
	return bit != 0 && c.MultiFlags&bit != 0
}

// SetSkill records the proficiency percentage of a skill or spell.
//
// Postcondition: c.Skills[name] == percent.
func (c *Character) SetSkill(name string, percent int) {
	if c.Skills == nil {
		c.Skills = make(map[string]int)
	}
	c.Skills[name] = percent
}

// Skill returns the proficiency percentage of a skill, 0 if never practiced.
func (c *Character) Skill(name string) int {
	return c.Skills[name]
}
