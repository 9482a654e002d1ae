// Package multiclass implements the reset that lets a veteran character start
// over at level 1 in another class while keeping what it already knows.
//
// Evaluation is pure; only Apply mutates a character.
package multiclass

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/deadmud/internal/config"
	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/game/world"
)

// Message is shown to a character that has just multiclassed.
const Message = "You have multied, and must begin anew. However, you will retain knowledge\r\n" +
	"of your previous skills and spells, you just will not be able to use them\r\n" +
	"until you reach the appropriate level."

// Rules are the tunables of the reset.
type Rules struct {
	// Level is the minimum level a character must hold.
	Level int
	// Room is the room a character must stand in; empty disables the check.
	Room string

	ResetHit  int
	ResetMana int
	ResetMove int
}

// DefaultRules returns the stock rules: level 50 anywhere, reset to 20/100/80.
func DefaultRules() Rules {
	return Rules{
		Level:     ruleset.LevelImmortal - 1,
		ResetHit:  20,
		ResetMana: 100,
		ResetMove: 80,
	}
}

// RulesFromConfig converts the configuration section into Rules.
func RulesFromConfig(cfg config.MulticlassConfig) Rules {
	return Rules{
		Level:     cfg.Level,
		Room:      cfg.Room,
		ResetHit:  cfg.ResetHit,
		ResetMana: cfg.ResetMana,
		ResetMove: cfg.ResetMove,
	}
}

// RoomLookup resolves room IDs. *world.Manager satisfies it.
type RoomLookup interface {
	GetRoom(id string) (*world.Room, bool)
}

// Reason is the outcome of an eligibility check.
type Reason int

// Outcomes, in the order they are checked.
const (
	Eligible Reason = iota
	AlreadyClass
	AlreadyCompleted
	LevelTooLow
	WrongRoom
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case Eligible:
		return "eligible"
	case AlreadyClass:
		return "already class"
	case AlreadyCompleted:
		return "already completed"
	case LevelTooLow:
		return "level too low"
	case WrongRoom:
		return "wrong room"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Argument errors of the multi command.
var (
	ErrNoClassName  = errors.New("no class name given")
	ErrInvalidClass = errors.New("improper class name")
)

// ErrIneligible matches every *IneligibleError.
var ErrIneligible = errors.New("not eligible to multiclass")

// IneligibleError carries the business rule that rejected a reset.
type IneligibleError struct {
	Reason Reason
}

// Error implements error.
func (e *IneligibleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIneligible, e.Reason)
}

// Unwrap lets errors.Is match ErrIneligible.
func (e *IneligibleError) Unwrap() error {
	return ErrIneligible
}

// Decision is the result of Evaluate together with what the player is told.
type Decision struct {
	Reason  Reason
	Target  ruleset.ClassID
	Current ruleset.ClassID
	Level   int
	Needed  int
}

// Eligible reports whether the reset may proceed.
func (d Decision) Eligible() bool {
	return d.Reason == Eligible
}

// Err returns nil for an eligible decision and an *IneligibleError otherwise.
func (d Decision) Err() error {
	if d.Eligible() {
		return nil
	}
	return &IneligibleError{Reason: d.Reason}
}

// Message renders the text shown to the player.
func (d Decision) Message(reg *ruleset.Registry) string {
	switch d.Reason {
	case Eligible:
		return Message
	case AlreadyClass:
		return fmt.Sprintf("You are currently a %s!", reg.ClassName(d.Current))
	case AlreadyCompleted:
		return "You can not repeat a class already completed."
	case LevelTooLow:
		return fmt.Sprintf("You are only level %d, you must be at least level %d before you can multiclass.", d.Level, d.Needed)
	case WrongRoom:
		return "You are not in the correct room to multi!"
	}
	return fmt.Sprintf("Unknown multiclass outcome %s.", d.Reason)
}

// ParseTarget resolves the argument of the multi command to a class by
// abbreviation.
//
// Postcondition: Returns ErrNoClassName for an empty argument and
// ErrInvalidClass when no class name starts with arg.
func ParseTarget(reg *ruleset.Registry, arg string) (ruleset.ClassID, error) {
	if arg == "" {
		return ruleset.ClassUndefined, ErrNoClassName
	}
	id, ok := reg.FindClassAbbrev(arg)
	if !ok {
		return ruleset.ClassUndefined, fmt.Errorf("%w: %q", ErrInvalidClass, arg)
	}
	return id, nil
}

// Evaluate decides whether ch may multiclass into target. The checks run in
// order: current class, completed classes, level, room. The room rule applies
// only when rules.Room is set and rooms knows that room.
//
// Postcondition: ch is not modified.
func Evaluate(rules Rules, rooms RoomLookup, ch *character.Character, target ruleset.ClassID) Decision {
	d := Decision{Target: target, Current: ch.Class, Level: ch.Level, Needed: rules.Level}
	switch {
	case target == ch.Class:
		d.Reason = AlreadyClass
	case ch.HasCompleted(target):
		d.Reason = AlreadyCompleted
	case ch.Level < rules.Level:
		d.Reason = LevelTooLow
	case rules.Room != "" && rooms != nil && wrongRoom(rules.Room, rooms, ch):
		d.Reason = WrongRoom
	}
	return d
}

func wrongRoom(required string, rooms RoomLookup, ch *character.Character) bool {
	if _, ok := rooms.GetRoom(required); !ok {
		return false
	}
	return ch.Location != required
}

// Apply resets ch to level 1 of target: fixed maximum points, full current
// points, 1 experience, the target's completed bit set and one more total level.
// Skills are kept.
//
// Precondition: Evaluate returned an eligible decision for ch and target.
// Postcondition: ch.Class == target and ch.HasCompleted(target).
func Apply(rules Rules, ch *character.Character, target ruleset.ClassID) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidClass, target)
	}
	ch.Points.MaxHit = rules.ResetHit
	ch.Points.MaxMana = rules.ResetMana
	ch.Points.MaxMove = rules.ResetMove
	ch.Points.Hit = ch.Points.MaxHit
	ch.Points.Move = ch.Points.MaxMove
	ch.Points.Mana = ch.Points.MaxMana

	ch.Level = 1
	ch.Class = target
	ch.Experience = 1
	ch.MultiFlags |= target.Bit()
	ch.TotalLevel++
	return nil
}
