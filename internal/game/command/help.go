package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/deadmud/internal/game/character"
)

var categoryOrder = []string{CategoryMovement, CategoryWorld, CategoryCharacter, CategorySystem, CategoryImmortal}

// HandleHelp lists the commands available to ch grouped by category.
func HandleHelp(e *Env, ch *character.Character) string {
	p := e.Palette
	cats := make(map[string][]*Command)
	for _, cmd := range e.Commands.Available(ch.Level) {
		cats[cmd.Category] = append(cats[cmd.Category], cmd)
	}
	var b strings.Builder
	for _, cat := range categoryOrder {
		cmds := cats[cat]
		if len(cmds) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(p.Paint(BrightYellow, strings.ToUpper(cat[:1])+cat[1:]))
		b.WriteString("\r\n")
		for _, cmd := range cmds {
			name := cmd.Name
			if len(cmd.Aliases) > 0 {
				name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			b.WriteString(fmt.Sprintf("  %-16s %s\r\n", name, cmd.Help))
		}
	}
	return strings.TrimSuffix(b.String(), "\r\n")
}
