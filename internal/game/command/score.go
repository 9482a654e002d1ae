package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

// HandleScore reports ch's class standing, points, abilities and the
// progression values derived from its class and level.
//
// Precondition: e.Rules and e.Advancer must not be nil.
func HandleScore(e *Env, ch *character.Character) string {
	calc := e.Advancer.Calculator()
	p := e.Palette
	var b strings.Builder

	line := func(format string, args ...any) {
		b.WriteString(fmt.Sprintf(format, args...))
		b.WriteString("\r\n")
	}

	line("This ranks you as %s %s (level %d).", ch.Name, ch.Title, ch.Level)
	line("You are a %s %s %s with %d total levels.",
		ch.Sex, e.Rules.RaceName(ch.Race), e.Rules.ClassName(ch.Class), ch.TotalLevel)
	line("You have %d(%d) hit, %d(%d) mana and %d(%d) movement points.",
		ch.Points.Hit, ch.Points.MaxHit, ch.Points.Mana, ch.Points.MaxMana, ch.Points.Move, ch.Points.MaxMove)
	line("You have scored %d exp and have %d practice sessions.", ch.Experience, ch.Practices)
	if !ruleset.IsImmortal(ch.Level) {
		need := calc.ExperienceRequired(ch.Class, ch.Level+1) - ch.Experience
		if need < 0 {
			need = 0
		}
		line("You need %d exp to reach your next level.", need)
	}

	a := ch.Abilities
	str := fmt.Sprintf("%d", a.Strength)
	if a.Strength == 18 && a.StrengthBonus > 0 {
		str = fmt.Sprintf("18/%02d", a.StrengthBonus%100)
	}
	line("%s Str: %s  Int: %d  Wis: %d  Dex: %d  Con: %d  Cha: %d",
		p.Paint(Cyan, "Abilities:"), str, a.Intelligence, a.Wisdom, a.Dexterity, a.Constitution, a.Charisma)

	saves := make([]string, 0, ruleset.NumSaveCategories)
	for cat := ruleset.SaveCategory(0); cat.Valid(); cat++ {
		saves = append(saves, fmt.Sprintf("%s %d", cat, calc.SavingThrow(ch.Class, cat, ch.Level)))
	}
	line("%s %s", p.Paint(Cyan, "Saving throws:"), strings.Join(saves, ", "))
	line("%s %d  Backstab: x%d", p.Paint(Cyan, "Attack roll base:"),
		calc.AttackRollBase(ch.Class, ch.Level), character.BackstabMultiplier(ch.Level))

	var done []string
	for _, c := range e.Rules.Classes() {
		if ch.HasCompleted(c.ID) {
			done = append(done, c.Name)
		}
	}
	if len(done) > 0 {
		line("You have multiclassed into: %s.", strings.Join(done, ", "))
	}
	if ch.Holylight {
		line("You have holylight.")
	}
	return strings.TrimSuffix(b.String(), "\r\n")
}
