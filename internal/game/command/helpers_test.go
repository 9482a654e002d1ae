package command_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/command"
	"github.com/cory-johannsen/deadmud/internal/game/dice"
	"github.com/cory-johannsen/deadmud/internal/game/multiclass"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/game/session"
	"github.com/cory-johannsen/deadmud/internal/game/world"
	"github.com/cory-johannsen/deadmud/internal/testutil"
)

// saves counts character saves by name.
type saves struct {
	mu    sync.Mutex
	names []string
}

func (s *saves) Save(_ context.Context, ch *character.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, ch.Name)
	return nil
}

func (s *saves) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...)
}

// newEnv builds an Env over the shipped content with the given multiclass rules.
func newEnv(t *testing.T, rules multiclass.Rules) (*command.Env, *saves) {
	t.Helper()
	reg := testutil.Registry(t)
	w, err := world.Load(testutil.ContentDir(t, "zones"))
	require.NoError(t, err)
	require.NoError(t, w.SetGuildGuards(world.GuildGuards(reg)))

	sessions := session.NewManager()
	s := &saves{}
	roller := dice.NewLoggedRoller(testutil.NewSequenceSource(), zap.NewNop())
	adv := character.NewAdvancer(character.NewCalculator(reg, zap.NewNop()), roller, s, sessions, zap.NewNop())

	return &command.Env{
		Rules:    reg,
		Advancer: adv,
		Multi:    multiclass.NewService(reg, rules, w, adv, zap.NewNop()),
		World:    w,
		Sessions: sessions,
		Commands: command.DefaultRegistry(),
		Logger:   zap.NewNop(),
	}, s
}

func veteran() *character.Character {
	return &character.Character{
		Name:       "Vet",
		Sex:        ruleset.SexMale,
		Race:       ruleset.RaceHuman,
		Class:      ruleset.ClassSoldier,
		Level:      50,
		TotalLevel: 50,
		Experience: 4_000_000,
		Title:      "the Warlord",
		Points:     character.Points{Hit: 500, MaxHit: 600, Mana: 100, MaxMana: 100, Move: 250, MaxMove: 300},
		Abilities:  character.AbilityScores{Strength: 18, StrengthBonus: 100, Intelligence: 9, Wisdom: 10, Dexterity: 15, Constitution: 16, Charisma: 8},
		Skills:     map[string]int{"kick": 90},
		Location:   "3001",
	}
}

// join adds ch to env's sessions.
func join(t *testing.T, env *command.Env, ch *character.Character) {
	t.Helper()
	_, err := env.Sessions.AddPlayer(ch)
	require.NoError(t, err)
}
