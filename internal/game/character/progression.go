package character

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
	"github.com/cory-johannsen/deadmud/internal/observability"
)

// UnknownClassExp is the experience requirement reported for a class with no
// coefficient. It is large enough that nobody levels by accident.
const UnknownClassExp int64 = 1234567

// worstRoll is the saving throw and attack base of a level 0 character, and
// the safe default when the tables have no entry.
const worstRoll = 100

// Calculator evaluates the class progression formulas against a registry.
// Missing table entries are logged and answered with a safe default.
type Calculator struct {
	reg    *ruleset.Registry
	logger *zap.Logger
}

// NewCalculator creates a Calculator.
//
// Precondition: reg and logger must be non-nil.
func NewCalculator(reg *ruleset.Registry, logger *zap.Logger) *Calculator {
	if reg == nil {
		panic("character.NewCalculator: registry must not be nil")
	}
	return &Calculator{reg: reg, logger: logger}
}

// Registry returns the class registry the calculator reads.
func (c *Calculator) Registry() *ruleset.Registry {
	return c.reg
}

// ExperienceRequired returns the total experience a character of class id
// needs to hold level: (level * coefficient)^2.
//
// Postcondition: Returns UnknownClassExp and logs when id has no definition.
func (c *Calculator) ExperienceRequired(id ruleset.ClassID, level int) int64 {
	cls, ok := c.reg.Class(id)
	if !ok {
		observability.SysErr(c.logger, "unknown class in experience table",
			zap.Int("class", int(id)), zap.Int("level", level))
		return UnknownClassExp
	}
	n := int64(level) * cls.ExpCoefficient
	return n * n
}

// SavingThrow returns the roll a character of class id and level must beat
// to save against category. Lower is better.
//
// Postcondition: 100 at level 0, 0 from LevelImmortal up, otherwise the class
// base scaled linearly toward 0. Unknown class or category logs and returns 100.
func (c *Calculator) SavingThrow(id ruleset.ClassID, category ruleset.SaveCategory, level int) int {
	cls, ok := c.reg.Class(id)
	if !ok {
		observability.SysErr(c.logger, "unknown class in saving throw table",
			zap.Int("class", int(id)), zap.Stringer("category", category))
		return worstRoll
	}
	if !category.Valid() {
		observability.SysErr(c.logger, "invalid saving throw category",
			zap.Stringer("class", id), zap.Int("category", int(category)))
		return worstRoll
	}
	return scaleToLevel(cls.SaveBase(category), level)
}

// AttackRollBase returns the to-hit base (THAC0) of class id at level.
//
// Postcondition: same shape as SavingThrow with the class attack base.
func (c *Calculator) AttackRollBase(id ruleset.ClassID, level int) int {
	cls, ok := c.reg.Class(id)
	if !ok {
		observability.SysErr(c.logger, "unknown class in attack table",
			zap.Int("class", int(id)), zap.Int("level", level))
		return worstRoll
	}
	return scaleToLevel(cls.AttackBase, level)
}

func scaleToLevel(base, level int) int {
	switch {
	case level <= 0:
		return worstRoll
	case ruleset.IsImmortal(level):
		return 0
	}
	return base - base*level/(ruleset.LevelImmortal-1)
}

// BackstabMultiplier returns the damage multiplier of a backstab at level.
func BackstabMultiplier(level int) int {
	switch {
	case level <= 7:
		return 2
	case level <= 13:
		return 3
	case level <= 20:
		return 4
	case level <= 28:
		return 5
	case level < ruleset.LevelImmortal:
		return 6
	}
	return 20
}
