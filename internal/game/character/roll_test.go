package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/dice"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/testutil"
)

func TestRollAbilities_AssignsByClassPriority(t *testing.T) {
	reg := testutil.Registry(t)
	cases := []struct {
		class ruleset.ClassID
		want  character.AbilityScores
	}{
		{ruleset.ClassBiotic, character.AbilityScores{Intelligence: 18, Wisdom: 15, Dexterity: 12, Strength: 9, Constitution: 6, Charisma: 3}},
		{ruleset.ClassMedic, character.AbilityScores{Wisdom: 18, Intelligence: 15, Strength: 12, Dexterity: 9, Constitution: 6, Charisma: 3}},
		{ruleset.ClassBandit, character.AbilityScores{Dexterity: 18, Strength: 15, Constitution: 12, Intelligence: 9, Wisdom: 6, Charisma: 3}},
		{ruleset.ClassSoldier, character.AbilityScores{Strength: 18, StrengthBonus: 42, Dexterity: 15, Constitution: 12, Wisdom: 9, Intelligence: 6, Charisma: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.class.String(), func(t *testing.T) {
			// Rolled out of order; assignment must sort them first.
			values := append(abilityFaces(9, 3, 18, 12, 6, 15), 42)
			roller, _ := newRoller(values...)
			got, err := character.RollAbilities(reg, tc.class, roller)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRollAbilities_DropsLowestDie(t *testing.T) {
	reg := testutil.Registry(t)
	// First group rolls 1,6,5,4: the 1 is dropped for a 15.
	values := []int{0, 5, 4, 3}
	values = append(values, abilityFaces(3, 3, 3, 3, 3)...)
	roller, _ := newRoller(values...)
	got, err := character.RollAbilities(reg, ruleset.ClassBandit, roller)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Dexterity)
	assert.Equal(t, 3, got.Charisma)
}

func TestRollAbilities_NoBonusWithoutExceptionalStrength(t *testing.T) {
	reg := testutil.Registry(t)
	roller, src := newRoller(abilityFaces(18, 18, 18, 18, 18, 18)...)
	got, err := character.RollAbilities(reg, ruleset.ClassMedic, roller)
	require.NoError(t, err)
	assert.Equal(t, 18, got.Strength)
	assert.Zero(t, got.StrengthBonus)
	assert.Equal(t, 24, src.Calls())
}

func TestRollAbilities_SoldierBelow18HasNoBonus(t *testing.T) {
	reg := testutil.Registry(t)
	roller, src := newRoller(abilityFaces(15, 15, 15, 15, 15, 15)...)
	got, err := character.RollAbilities(reg, ruleset.ClassSoldier, roller)
	require.NoError(t, err)
	assert.Zero(t, got.StrengthBonus)
	assert.Equal(t, 24, src.Calls())
}

func TestRollAbilities_Errors(t *testing.T) {
	reg := testutil.Registry(t)
	_, err := character.RollAbilities(reg, ruleset.ClassSoldier, nil)
	assert.ErrorIs(t, err, character.ErrNilSource)

	roller, _ := newRoller()
	_, err = character.RollAbilities(reg, ruleset.ClassUndefined, roller)
	assert.ErrorIs(t, err, character.ErrUnknownClass)
}

func TestRollRealAbilities_SetsBothSnapshots(t *testing.T) {
	reg := testutil.Registry(t)
	roller, _ := newRoller(abilityFaces(18, 15, 12, 9, 6, 3)...)
	ch := &character.Character{Class: ruleset.ClassBandit}
	require.NoError(t, character.RollRealAbilities(reg, ch, roller))
	assert.Equal(t, ch.RealAbilities, ch.Abilities)
	assert.Equal(t, 18, ch.Abilities.Dexterity)
}

func TestPropertyRolledScoresFollowPriority(t *testing.T) {
	reg := testutil.Registry(t)
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		id := ruleset.ClassID(rapid.IntRange(0, ruleset.NumClasses-1).Draw(t, "class"))
		roller := dice.NewLoggedRoller(dice.NewSeededSource(seed), zap.NewNop())

		got, err := character.RollAbilities(reg, id, roller)
		if err != nil {
			t.Fatalf("roll: %v", err)
		}
		cls, _ := reg.Class(id)
		prev := 19
		for _, a := range cls.AbilityPriority {
			v := got.Get(a)
			if v < 3 || v > 18 {
				t.Fatalf("%s = %d outside [3, 18]", a, v)
			}
			if v > prev {
				t.Fatalf("%s = %d exceeds higher-priority score %d", a, v, prev)
			}
			prev = v
		}
		if got.StrengthBonus < 0 || got.StrengthBonus > 100 {
			t.Fatalf("strength bonus %d outside [0, 100]", got.StrengthBonus)
		}
		if got.StrengthBonus != 0 && (!cls.ExceptionalStrength || got.Strength != 18) {
			t.Fatalf("unexpected strength bonus %d for %s with %d strength", got.StrengthBonus, id, got.Strength)
		}
	})
}
