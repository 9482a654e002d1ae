package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/testutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadClasses_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "soldier.yaml"), `
id: soldier
name: Soldier
abbrev: So
menu_letter: c
exp_coefficient: 42
saving_throws: {paralysis: 70, rod: 80, petrification: 75, breath: 85, spell: 85}
attack_base: 17
ability_priority: [strength, dexterity, constitution, wisdom, intelligence, charisma]
exceptional_strength: true
hit_gain: {min: 10, max: 15}
move_gain: {min: 1, max: 3}
practice: {learned_level: 80, max_per_practice: 12, min_per_practice: 0, noun: skill}
guild: {room: "3021", direction: east}
skills:
  - {name: kick, level: 1}
titles:
  male:
    default: the Warrior
    levels:
      1: the Swordpupil
`)
	writeFile(t, filepath.Join(dir, "README.txt"), "not content")

	classes, err := ruleset.LoadClasses(dir)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	c := classes[0]
	assert.Equal(t, "soldier", c.Key)
	assert.Equal(t, "Soldier", c.Name)
	assert.Equal(t, int64(42), c.ExpCoefficient)
	assert.Equal(t, 85, c.SavingThrows["breath"])
	assert.True(t, c.ExceptionalStrength)
	assert.Equal(t, ruleset.Range{Min: 10, Max: 15}, c.HitGain)
	assert.False(t, c.Mana.Caster)
	assert.Equal(t, "skill", c.Practice.Noun)
	assert.Equal(t, "3021", c.Guild.Room)
	assert.Equal(t, "the Swordpupil", c.Titles.Male.Levels[1])
	assert.Equal(t, []ruleset.Ability{
		ruleset.Strength, ruleset.Dexterity, ruleset.Constitution,
		ruleset.Wisdom, ruleset.Intelligence, ruleset.Charisma,
	}, c.AbilityPriority)
}

func TestLoadClasses_EmptyDir(t *testing.T) {
	classes, err := ruleset.LoadClasses(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestLoadClasses_MissingDir(t *testing.T) {
	_, err := ruleset.LoadClasses(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadClasses_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "id: [unterminated")
	_, err := ruleset.LoadClasses(dir)
	assert.Error(t, err)
}

func TestLoadRaces_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "zombie.yml"), `
id: zombie
name: Zombie
abbrev: Zo
menu_letter: c
`)
	races, err := ruleset.LoadRaces(dir)
	require.NoError(t, err)
	require.Len(t, races, 1)
	assert.Equal(t, "zombie", races[0].Key)
	assert.Equal(t, "Zo", races[0].Abbrev)
}

func TestLoadRegistry_ShippedContent(t *testing.T) {
	reg := testutil.Registry(t)

	classes := reg.Classes()
	require.Len(t, classes, ruleset.NumClasses)
	for i, c := range classes {
		assert.Equal(t, ruleset.ClassID(i), c.ID)
	}

	expected := map[ruleset.ClassID]struct {
		coef   int64
		attack int
		saves  [ruleset.NumSaveCategories]int
	}{
		ruleset.ClassBiotic:  {45, 20, [5]int{70, 55, 65, 75, 60}},
		ruleset.ClassMedic:   {44, 19, [5]int{60, 70, 65, 80, 70}},
		ruleset.ClassBandit:  {43, 18, [5]int{65, 70, 60, 80, 75}},
		ruleset.ClassSoldier: {42, 17, [5]int{70, 80, 75, 85, 85}},
	}
	for id, want := range expected {
		c, ok := reg.Class(id)
		require.True(t, ok, id.String())
		assert.Equal(t, want.coef, c.ExpCoefficient, id.String())
		assert.Equal(t, want.attack, c.AttackBase, id.String())
		for cat := ruleset.SaveCategory(0); cat < ruleset.NumSaveCategories; cat++ {
			assert.Equal(t, want.saves[cat], c.SaveBase(cat), "%s %s", id, cat)
		}
	}

	soldier, _ := reg.Class(ruleset.ClassSoldier)
	assert.True(t, soldier.ExceptionalStrength)
	for _, id := range []ruleset.ClassID{ruleset.ClassBiotic, ruleset.ClassMedic, ruleset.ClassBandit} {
		c, _ := reg.Class(id)
		assert.False(t, c.ExceptionalStrength, id.String())
	}

	bandit, _ := reg.Class(ruleset.ClassBandit)
	assert.Equal(t, map[string]int{
		"sneak": 10, "hide": 5, "steal": 15, "backstab": 10, "pick lock": 10, "track": 10,
	}, bandit.StartingSkills)

	for _, id := range []ruleset.RaceID{ruleset.RaceHuman, ruleset.RaceMutant, ruleset.RaceZombie} {
		_, ok := reg.Race(id)
		assert.True(t, ok, id.String())
	}
}
