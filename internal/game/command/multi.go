package command

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/multiclass"
)

// HandleMulti processes the "multi" command. arg is the class name, matched
// by abbreviation.
//
// Precondition: e.Multi must not be nil.
// Postcondition: On success ch has been reset into the new class and saved,
// and the multiclass message is returned. Otherwise ch is unchanged and the
// returned text names the problem.
func HandleMulti(ctx context.Context, e *Env, ch *character.Character, arg string) string {
	target, err := multiclass.ParseTarget(e.Multi.Registry(), arg)
	switch {
	case errors.Is(err, multiclass.ErrNoClassName):
		return "Usage: multi <class name>"
	case err != nil:
		return "Improper class name, please try again."
	}

	d, err := e.Multi.Request(ctx, ch, target)
	if err != nil && !errors.Is(err, multiclass.ErrIneligible) {
		e.Logger.Error("multiclass failed", zap.String("name", ch.Name), zap.Error(err))
		return "Something went wrong. Please try again."
	}
	return d.Message(e.Multi.Registry())
}
