package multiclass

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

// Service runs a multiclass request end to end: evaluation, reset, title
// and save.
type Service struct {
	reg    *ruleset.Registry
	rules  Rules
	rooms  RoomLookup
	adv    *character.Advancer
	logger *zap.Logger
}

// NewService creates a Service.
//
// Precondition: reg, adv and logger must be non-nil; rooms may be nil, which
// disables the room rule.
func NewService(reg *ruleset.Registry, rules Rules, rooms RoomLookup, adv *character.Advancer, logger *zap.Logger) *Service {
	return &Service{reg: reg, rules: rules, rooms: rooms, adv: adv, logger: logger}
}

// Rules returns the rules the service enforces.
func (s *Service) Rules() Rules {
	return s.rules
}

// Registry returns the class registry the service resolves names against.
func (s *Service) Registry() *ruleset.Registry {
	return s.reg
}

// Request multiclasses ch into target if every rule allows it.
//
// Postcondition: on an ineligible decision ch is untouched and the returned
// error wraps ErrIneligible; otherwise ch has been reset and saved.
func (s *Service) Request(ctx context.Context, ch *character.Character, target ruleset.ClassID) (Decision, error) {
	d := Evaluate(s.rules, s.rooms, ch, target)
	if err := d.Err(); err != nil {
		s.logger.Debug("multiclass refused",
			zap.String("name", ch.Name),
			zap.Stringer("target", target),
			zap.Stringer("reason", d.Reason),
		)
		return d, err
	}

	from := ch.Class
	if err := Apply(s.rules, ch, target); err != nil {
		return d, err
	}
	s.adv.SetTitle(ch)
	s.adv.Save(ctx, ch)

	s.logger.Info("multiclassed",
		zap.String("name", ch.Name),
		zap.Stringer("from", from),
		zap.Stringer("to", target),
		zap.Int("total_level", ch.TotalLevel),
	)
	return d, nil
}
