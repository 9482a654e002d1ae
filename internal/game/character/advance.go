package character

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/observability"
)

// Saver persists a character record.
type Saver interface {
	Save(ctx context.Context, ch *Character) error
}

// SnoopChecker drops snoop links a level change has made illegal.
type SnoopChecker interface {
	SnoopCheck(ch *Character)
}

// Advancer applies level gains to characters and persists the result.
type Advancer struct {
	calc        *Calculator
	dice        Dice
	saver       Saver
	snoop       SnoopChecker
	saveTimeout time.Duration
	logger      *zap.Logger
}

// NewAdvancer creates an Advancer.
//
// Precondition: calc, d and logger must be non-nil. saver and snoop may be nil,
// in which case the corresponding step is skipped.
func NewAdvancer(calc *Calculator, d Dice, saver Saver, snoop SnoopChecker, logger *zap.Logger) *Advancer {
	if calc == nil {
		panic("character.NewAdvancer: calculator must not be nil")
	}
	return &Advancer{calc: calc, dice: d, saver: saver, snoop: snoop, logger: logger}
}

// WithSaveTimeout bounds every save issued by the Advancer. Zero means no bound.
func (a *Advancer) WithSaveTimeout(d time.Duration) *Advancer {
	a.saveTimeout = d
	return a
}

// Calculator returns the progression calculator the Advancer uses.
func (a *Advancer) Calculator() *Calculator {
	return a.calc
}

// AdvanceLevel grows ch's maximum points and practices for the level it has
// just reached, then runs the snoop check and saves the character.
//
// Precondition: ch.Level already holds the new level.
// Postcondition: MaxHit and MaxMove grew by at least 1; MaxMana grew only if
// ch.Level > 1; immortals have unlimited conditions and holylight. Save
// failures are logged and never returned.
func (a *Advancer) AdvanceLevel(ctx context.Context, ch *Character) {
	addHit := ConHitBonus(ch.Abilities.Constitution)
	addMana, addMove := 0, 0
	caster := false

	if cls, ok := a.calc.reg.Class(ch.Class); ok {
		addHit += a.dice.Between(cls.HitGain.Min, cls.HitGain.Max)
		if cls.Mana.Caster {
			caster = true
			addMana = min(a.dice.Between(ch.Level, ch.Level*3/2), cls.Mana.Cap)
		}
		addMove = a.dice.Between(cls.MoveGain.Min, cls.MoveGain.Max)
	} else {
		observability.SysErr(a.logger, "unknown class advancing level",
			zap.String("name", ch.Name), zap.Int("class", int(ch.Class)))
	}

	ch.Points.MaxHit += max(1, addHit)
	ch.Points.MaxMove += max(1, addMove)
	if ch.Level > 1 {
		ch.Points.MaxMana += addMana
	}

	bonus := WisPracticeBonus(ch.Abilities.Wisdom)
	if caster {
		ch.Practices += max(2, bonus)
	} else {
		ch.Practices += min(2, max(1, bonus))
	}

	if ruleset.IsImmortal(ch.Level) {
		ch.Conditions = Conditions{Drunk: Unlimited, Hunger: Unlimited, Thirst: Unlimited}
		ch.Holylight = true
	}

	a.logger.Info("level advanced",
		zap.String("name", ch.Name),
		zap.Stringer("class", ch.Class),
		zap.Int("level", ch.Level),
		zap.Int("max_hit", ch.Points.MaxHit),
		zap.Int("max_mana", ch.Points.MaxMana),
		zap.Int("max_move", ch.Points.MaxMove),
	)

	if a.snoop != nil {
		a.snoop.SnoopCheck(ch)
	}
	a.save(ctx, ch)
}

func (a *Advancer) save(ctx context.Context, ch *Character) {
	if a.saver == nil {
		return
	}
	if a.saveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.saveTimeout)
		defer cancel()
	}
	if err := a.saver.Save(ctx, ch); err != nil {
		observability.SysErr(a.logger, "saving character",
			zap.String("name", ch.Name), zap.Error(err))
	}
}

// Save persists ch through the Advancer's saver, logging any failure.
func (a *Advancer) Save(ctx context.Context, ch *Character) {
	a.save(ctx, ch)
}

// GainExperience adds amount to ch's experience and advances one level at a
// time for as long as the next level's requirement is met. Immortals and
// characters below level 1 are unaffected, and so is a character whose class
// the registry does not define. Losses never take experience below 0.
//
// Postcondition: Returns the number of levels gained.
func (a *Advancer) GainExperience(ctx context.Context, ch *Character, amount int64) int {
	if ch.Level < 1 || ruleset.IsImmortal(ch.Level) {
		return 0
	}
	if amount <= 0 {
		ch.Experience = max(0, ch.Experience+amount)
		return 0
	}
	if _, ok := a.calc.reg.Class(ch.Class); !ok {
		observability.SysErr(a.logger, "unknown class gaining experience",
			zap.String("name", ch.Name), zap.Int("class", int(ch.Class)))
		return 0
	}

	ch.Experience += amount
	gained := 0
	for ch.Level < ruleset.LevelImmortal-1 &&
		ch.Experience >= a.calc.ExperienceRequired(ch.Class, ch.Level+1) {
		ch.Level++
		ch.TotalLevel++
		gained++
		a.AdvanceLevel(ctx, ch)
	}
	if gained > 0 {
		a.SetTitle(ch)
		a.logger.Info("experience gained",
			zap.String("name", ch.Name),
			zap.Int64("amount", amount),
			zap.Int("levels", gained),
		)
	}
	return gained
}

// SetTitle sets ch's title to the default for its class, sex and level. A
// level with no title defined leaves the current title in place.
func (a *Advancer) SetTitle(ch *Character) {
	title, ok := a.calc.reg.Title(ch.Class, ch.Sex, ch.Level)
	if !ok {
		a.logger.Warn("no title defined",
			zap.Stringer("class", ch.Class), zap.Int("level", ch.Level))
		return
	}
	ch.Title = title
}
