package dice

import "go.uber.org/zap"

// Roller rolls against a Source and writes every result to a debug log, so a
// character's abilities and level gains can be audited after the fact.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller over src.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if src == nil || logger == nil {
		panic("dice.NewLoggedRoller: source and logger must not be nil")
	}
	return &Roller{src: src, logger: logger}
}

// Source returns the Source the roller draws from.
func (r *Roller) Source() Source {
	return r.src
}

// Roll evaluates expr.
//
// Precondition: expr came from Parse.
func (r *Roller) Roll(expr Expression) (RollResult, error) {
	result, err := Roll(expr, r.src)
	if err != nil {
		return RollResult{}, err
	}
	if ce := r.logger.Check(zap.DebugLevel, "dice roll"); ce != nil {
		ce.Write(
			zap.String("expression", result.Expression),
			zap.Ints("kept", result.Dice),
			zap.Ints("dropped", result.Dropped),
			zap.Int("modifier", result.Modifier),
			zap.Int("total", result.Total()),
		)
	}
	return result, nil
}

// RollExpr parses and rolls expr.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(e)
}

// Between returns a uniform integer in [lo, hi].
func (r *Roller) Between(lo, hi int) int {
	v := Between(r.src, lo, hi)
	r.logger.Debug("range roll", zap.Int("lo", lo), zap.Int("hi", hi), zap.Int("value", v))
	return v
}
