package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/deadmud/internal/game/command"
	"github.com/cory-johannsen/deadmud/internal/game/multiclass"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

func TestHandleMulti_Arguments(t *testing.T) {
	env, s := newEnv(t, multiclass.DefaultRules())
	ch := veteran()

	assert.Equal(t, "Usage: multi <class name>", command.HandleMulti(context.Background(), env, ch, ""))
	assert.Equal(t, "Improper class name, please try again.", command.HandleMulti(context.Background(), env, ch, "paladin"))
	assert.Equal(t, ruleset.ClassSoldier, ch.Class)
	assert.Empty(t, s.Names())
}

func TestHandleMulti_Ineligible(t *testing.T) {
	env, s := newEnv(t, multiclass.DefaultRules())

	ch := veteran()
	assert.Equal(t, "You are currently a Soldier!", command.HandleMulti(context.Background(), env, ch, "sol"))

	ch.MultiFlags = ruleset.ClassMedic.Bit()
	assert.Equal(t, "You can not repeat a class already completed.", command.HandleMulti(context.Background(), env, ch, "medic"))

	ch.Level = 49
	assert.Equal(t,
		"You are only level 49, you must be at least level 50 before you can multiclass.",
		command.HandleMulti(context.Background(), env, ch, "bandit"))
	assert.Equal(t, 49, ch.Level)
	assert.Empty(t, s.Names())
}

func TestHandleMulti_WrongRoom(t *testing.T) {
	rules := multiclass.DefaultRules()
	rules.Room = "3090"
	env, _ := newEnv(t, rules)

	ch := veteran()
	assert.Equal(t, "You are not in the correct room to multi!", command.HandleMulti(context.Background(), env, ch, "b"))

	ch.Location = "3090"
	assert.Equal(t, multiclass.Message, command.HandleMulti(context.Background(), env, ch, "b"))
	assert.Equal(t, ruleset.ClassBiotic, ch.Class)
}

func TestHandleMulti_Success(t *testing.T) {
	env, s := newEnv(t, multiclass.DefaultRules())
	ch := veteran()

	out := command.HandleMulti(context.Background(), env, ch, "ba")
	assert.Equal(t, multiclass.Message, out)
	assert.Equal(t, ruleset.ClassBandit, ch.Class)
	assert.Equal(t, 1, ch.Level)
	assert.Equal(t, int64(1), ch.Experience)
	assert.Equal(t, 51, ch.TotalLevel)
	assert.Equal(t, 20, ch.Points.MaxHit)
	assert.Equal(t, 100, ch.Points.MaxMana)
	assert.Equal(t, 80, ch.Points.MaxMove)
	assert.True(t, ch.HasCompleted(ruleset.ClassBandit))
	assert.Equal(t, "the Pilferer", ch.Title)
	assert.Equal(t, 90, ch.Skill("kick"))
	assert.Equal(t, []string{"Vet"}, s.Names())

	assert.Equal(t, "You are currently a Bandit!", command.HandleMulti(context.Background(), env, ch, "bandit"))
}
