package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/multiclass"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/game/session"
	"github.com/cory-johannsen/deadmud/internal/game/world"
)

// Env holds the collaborators player commands run against.
type Env struct {
	Rules    *ruleset.Registry
	Advancer *character.Advancer
	Multi    *multiclass.Service
	World    *world.Manager
	// Sessions tracks room occupancy; nil when a single character plays alone.
	Sessions *session.Manager
	Commands *Registry
	Palette  Palette
	Logger   *zap.Logger
}

// Result is the outcome of one command line.
type Result struct {
	Output string
	// Quit is set when the player asked to leave.
	Quit bool
}

// Dispatch parses line and runs the command it names for ch.
//
// Precondition: every Env field except Sessions must be non-nil.
// Postcondition: Output holds the text to show the player; an empty line
// yields an empty Result.
func (e *Env) Dispatch(ctx context.Context, ch *character.Character, line string) Result {
	parsed := Parse(line)
	if parsed.Command == "" {
		return Result{}
	}
	cmd, ok := e.Commands.ResolveFor(parsed.Command, ch.Level)
	if !ok {
		return Result{Output: "Huh?!?"}
	}
	e.Logger.Debug("command",
		zap.String("name", ch.Name),
		zap.String("command", cmd.Name),
		zap.String("args", parsed.Rest),
	)

	switch cmd.Handler {
	case HandlerMove:
		dir, _ := world.ParseDirection(cmd.Name)
		return Result{Output: HandleMove(e, ch, dir)}
	case HandlerLook:
		return Result{Output: HandleLook(e, ch)}
	case HandlerExits:
		return Result{Output: HandleExits(e, ch)}
	case HandlerScore:
		return Result{Output: HandleScore(e, ch)}
	case HandlerLevels:
		return Result{Output: HandleLevels(e, ch)}
	case HandlerTitle:
		return Result{Output: HandleTitle(ctx, e, ch, parsed.Rest)}
	case HandlerMulti:
		return Result{Output: HandleMulti(ctx, e, ch, parsed.Arg(0))}
	case HandlerSave:
		e.Advancer.Save(ctx, ch)
		return Result{Output: fmt.Sprintf("Saving %s.", ch.Name)}
	case HandlerHelp:
		return Result{Output: HandleHelp(e, ch)}
	case HandlerHolylight:
		ch.Holylight = !ch.Holylight
		if ch.Holylight {
			return Result{Output: "HolyLight mode on."}
		}
		return Result{Output: "HolyLight mode off."}
	case HandlerQuit:
		e.Advancer.Save(ctx, ch)
		return Result{Output: "Goodbye, friend.. Come back soon!", Quit: true}
	}
	return Result{Output: fmt.Sprintf("%s is not implemented.", cmd.Name)}
}
