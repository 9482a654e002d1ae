package command

import (
	"context"
	"strings"

	"github.com/cory-johannsen/deadmud/internal/game/character"
)

// MaxTitleLength bounds a player-chosen title.
const MaxTitleLength = 80

// HandleTitle shows ch's title, or sets it to arg. "title default" restores
// the class title for ch's level.
//
// Postcondition: ch.Title changes only on an accepted title; the character is
// saved after every change.
func HandleTitle(ctx context.Context, e *Env, ch *character.Character, arg string) string {
	arg = strings.TrimSpace(arg)
	switch {
	case arg == "":
		if ch.Title == "" {
			return "You have no title."
		}
		return "Your title is: " + ch.Title
	case strings.EqualFold(arg, "default"):
		e.Advancer.SetTitle(ch)
	case strings.ContainsAny(arg, "()"):
		return "Titles can't contain the ( or ) characters."
	case len(arg) > MaxTitleLength:
		return "Sorry, titles can't be longer than 80 characters."
	default:
		ch.Title = arg
	}
	e.Advancer.Save(ctx, ch)
	return "Okay, you're now " + ch.Name + " " + ch.Title + "."
}
