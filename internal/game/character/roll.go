package character

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/deadmud/internal/game/dice"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

// Dice is the randomness consumed by character generation and advancement.
// *dice.Roller satisfies it.
type Dice interface {
	Roll(expr dice.Expression) (dice.RollResult, error)
	Between(lo, hi int) int
}

// abilityRoll is four six-sided dice with the lowest discarded.
var abilityRoll = dice.MustParse("4d6kh3")

// RollAbilities rolls six ability scores and assigns them to the abilities of
// class id, highest roll to the first ability in the class priority.
//
// Precondition: reg and d must be non-nil.
// Postcondition: every score lies in [3, 18]; StrengthBonus is in [0, 100] and
// non-zero only for a class with exceptional strength that rolled 18 strength.
func RollAbilities(reg *ruleset.Registry, id ruleset.ClassID, d Dice) (AbilityScores, error) {
	if d == nil {
		return AbilityScores{}, ErrNilSource
	}
	cls, ok := reg.Class(id)
	if !ok {
		return AbilityScores{}, fmt.Errorf("rolling abilities: %w %q", ErrUnknownClass, id)
	}

	rolls := make([]int, len(ruleset.AllAbilities))
	for i := range rolls {
		res, err := d.Roll(abilityRoll)
		if err != nil {
			return AbilityScores{}, fmt.Errorf("rolling abilities: %w", err)
		}
		rolls[i] = res.Total()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))

	var scores AbilityScores
	for i, a := range cls.AbilityPriority {
		scores.Set(a, rolls[i])
	}
	if cls.ExceptionalStrength && scores.Strength == 18 {
		scores.StrengthBonus = d.Between(0, 100)
	}
	return scores, nil
}

// RollRealAbilities rolls abilities for ch's class and stores them as both
// the real and the effective scores.
//
// Postcondition: on success ch.RealAbilities == ch.Abilities.
func RollRealAbilities(reg *ruleset.Registry, ch *Character, d Dice) error {
	scores, err := RollAbilities(reg, ch.Class, d)
	if err != nil {
		return err
	}
	ch.RealAbilities = scores
	ch.Abilities = scores
	return nil
}
