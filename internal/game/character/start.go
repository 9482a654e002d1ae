package character

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Base points of a fresh character before the first level is applied.
const (
	StartMaxHit  = 10
	StartMaxMana = 100
	StartMaxMove = 82
)

// Starting conditions.
const (
	StartThirst = 24
	StartHunger = 24
	StartDrunk  = 0
)

// Start turns a newly created character into a level 1 member of its class:
// it rolls abilities, grants the class starting skills and applies level 1.
//
// Precondition: ch.Class is a class known to the registry.
// Postcondition: ch.Level == 1, current points equal their maximums and the
// character has been saved.
func (a *Advancer) Start(ctx context.Context, ch *Character) error {
	cls, ok := a.calc.reg.Class(ch.Class)
	if !ok {
		return fmt.Errorf("starting %q: %w %q", ch.Name, ErrUnknownClass, ch.Class)
	}

	ch.Level = 1
	ch.TotalLevel = 1
	ch.Experience = 1
	a.SetTitle(ch)

	if err := RollRealAbilities(a.calc.reg, ch, a.dice); err != nil {
		return fmt.Errorf("starting %q: %w", ch.Name, err)
	}

	ch.Points.MaxHit = StartMaxHit
	ch.Points.MaxMana = StartMaxMana
	ch.Points.MaxMove = StartMaxMove

	for skill, pct := range cls.StartingSkills {
		ch.SetSkill(skill, pct)
	}

	a.AdvanceLevel(ctx, ch)

	ch.Points.Hit = ch.Points.MaxHit
	ch.Points.Mana = ch.Points.MaxMana
	ch.Points.Move = ch.Points.MaxMove

	ch.Conditions = Conditions{Thirst: StartThirst, Hunger: StartHunger, Drunk: StartDrunk}

	a.logger.Info("character started",
		zap.String("name", ch.Name),
		zap.Stringer("class", ch.Class),
		zap.Stringer("race", ch.Race),
	)
	return nil
}
