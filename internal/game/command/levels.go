package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

// HandleLevels lists the experience range and title of every mortal level of
// ch's class.
//
// Postcondition: Returns one line per level 1..LevelImmortal-1 followed by
// the experience needed for immortality.
func HandleLevels(e *Env, ch *character.Character) string {
	calc := e.Advancer.Calculator()
	var b strings.Builder
	for lvl := 1; lvl < ruleset.LevelImmortal; lvl++ {
		lo := calc.ExperienceRequired(ch.Class, lvl)
		hi := calc.ExperienceRequired(ch.Class, lvl+1) - 1
		title, _ := e.Rules.Title(ch.Class, ch.Sex, lvl)
		b.WriteString(fmt.Sprintf("[%2d] %9d-%-9d : %s\r\n", lvl, lo, hi, title))
	}
	b.WriteString(fmt.Sprintf("[%2d] %9d          : Immortality",
		ruleset.LevelImmortal, calc.ExperienceRequired(ch.Class, ruleset.LevelImmortal)))
	return b.String()
}
