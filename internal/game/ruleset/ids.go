// Package ruleset defines the game-balance content of Deadmud: character
// classes, races, level tiers and the per-class tables every formula reads.
//
// Content is loaded once at startup and never written afterwards, so a
// Registry may be shared freely between goroutines.
package ruleset

import (
	"fmt"
	"strings"
)

// ClassID enumerates the playable classes. The numeric value is also the bit
// position of the class in a character's completed-class bitset.
type ClassID int

// ClassUndefined marks a character with no valid class.
const ClassUndefined ClassID = -1

// Playable classes.
const (
	ClassBiotic ClassID = iota
	ClassMedic
	ClassBandit
	ClassSoldier
)

// NumClasses is the number of playable classes.
const NumClasses = 4

var classKeys = [NumClasses]string{"biotic", "medic", "bandit", "soldier"}

// AllClasses returns every playable class in ID order.
func AllClasses() []ClassID {
	return []ClassID{ClassBiotic, ClassMedic, ClassBandit, ClassSoldier}
}

// Valid reports whether c is a playable class.
func (c ClassID) Valid() bool {
	return c >= 0 && int(c) < NumClasses
}

// Key returns the lowercase content key of the class, e.g. "soldier".
func (c ClassID) Key() string {
	if !c.Valid() {
		return "undefined"
	}
	return classKeys[c]
}

// String implements fmt.Stringer.
func (c ClassID) String() string {
	return c.Key()
}

// Bit returns the completed-class bitset flag for c, or 0 for an invalid class.
func (c ClassID) Bit() uint32 {
	if !c.Valid() {
		return 0
	}
	return 1 << uint(c)
}

// MarshalText encodes the class as its content key.
func (c ClassID) MarshalText() ([]byte, error) {
	return []byte(c.Key()), nil
}

// UnmarshalText decodes a content key produced by MarshalText.
func (c *ClassID) UnmarshalText(b []byte) error {
	id, err := ParseClassID(string(b))
	if err != nil {
		return err
	}
	*c = id
	return nil
}

// ParseClassID resolves an exact, case-insensitive content key.
func ParseClassID(key string) (ClassID, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, k := range classKeys {
		if k == key {
			return ClassID(i), nil
		}
	}
	return ClassUndefined, fmt.Errorf("unknown class %q", key)
}

// RaceID enumerates the playable races.
type RaceID int

// RaceUndefined marks a character with no valid race.
const RaceUndefined RaceID = -1

// Playable races.
const (
	RaceHuman RaceID = iota
	RaceMutant
	RaceZombie
)

// NumRaces is the number of playable races.
const NumRaces = 3

var raceKeys = [NumRaces]string{"human", "mutant", "zombie"}

// Valid reports whether r is a playable race.
func (r RaceID) Valid() bool {
	return r >= 0 && int(r) < NumRaces
}

// Key returns the lowercase content key of the race.
func (r RaceID) Key() string {
	if !r.Valid() {
		return "undefined"
	}
	return raceKeys[r]
}

// String implements fmt.Stringer.
func (r RaceID) String() string {
	return r.Key()
}

// MarshalText encodes the race as its content key.
func (r RaceID) MarshalText() ([]byte, error) {
	return []byte(r.Key()), nil
}

// UnmarshalText decodes a content key produced by MarshalText.
func (r *RaceID) UnmarshalText(b []byte) error {
	id, err := ParseRaceID(string(b))
	if err != nil {
		return err
	}
	*r = id
	return nil
}

// ParseRaceID resolves an exact, case-insensitive content key.
func ParseRaceID(key string) (RaceID, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, k := range raceKeys {
		if k == key {
			return RaceID(i), nil
		}
	}
	return RaceUndefined, fmt.Errorf("unknown race %q", key)
}

// Sex selects between the male and female title tables.
type Sex int

// Sexes.
const (
	SexNeutral Sex = iota
	SexMale
	SexFemale
)

// String implements fmt.Stringer.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	}
	return "neutral"
}

// ParseSex accepts "n", "m", "f" or the full words.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "neutral":
		return SexNeutral, nil
	case "m", "male":
		return SexMale, nil
	case "f", "female":
		return SexFemale, nil
	}
	return SexNeutral, fmt.Errorf("unknown sex %q", s)
}

// SaveCategory is one of the five saving-throw categories.
type SaveCategory int

// Saving-throw categories.
const (
	SaveParalysis SaveCategory = iota
	SaveRod
	SavePetrification
	SaveBreath
	SaveSpell
)

// NumSaveCategories is the number of saving-throw categories.
const NumSaveCategories = 5

var saveKeys = [NumSaveCategories]string{"paralysis", "rod", "petrification", "breath", "spell"}

// Valid reports whether s is a known category.
func (s SaveCategory) Valid() bool {
	return s >= 0 && int(s) < NumSaveCategories
}

// String implements fmt.Stringer.
func (s SaveCategory) String() string {
	if !s.Valid() {
		return fmt.Sprintf("save(%d)", int(s))
	}
	return saveKeys[s]
}

// ParseSaveCategory resolves a content key such as "breath".
func ParseSaveCategory(key string) (SaveCategory, error) {
	for i, k := range saveKeys {
		if k == key {
			return SaveCategory(i), nil
		}
	}
	return -1, fmt.Errorf("unknown saving throw category %q", key)
}

// Ability names one of the six ability scores.
type Ability string

// Abilities.
const (
	Strength     Ability = "strength"
	Intelligence Ability = "intelligence"
	Wisdom       Ability = "wisdom"
	Dexterity    Ability = "dexterity"
	Constitution Ability = "constitution"
	Charisma     Ability = "charisma"
)

// AllAbilities lists the six abilities in display order.
var AllAbilities = []Ability{Strength, Intelligence, Wisdom, Dexterity, Constitution, Charisma}

// Valid reports whether a is one of the six abilities.
func (a Ability) Valid() bool {
	for _, x := range AllAbilities {
		if a == x {
			return true
		}
	}
	return false
}

// Short returns the three-letter display label, e.g. "Str".
func (a Ability) Short() string {
	switch a {
	case Strength:
		return "Str"
	case Intelligence:
		return "Int"
	case Wisdom:
		return "Wis"
	case Dexterity:
		return "Dex"
	case Constitution:
		return "Con"
	case Charisma:
		return "Cha"
	}
	return fmt.Sprintf("<%s>", string(a))
}
