package dice

import (
	"fmt"
	"sort"
)

// Roll evaluates an Expression using the given Source and returns a RollResult.
//
// Precondition: expr must come from Parse (Count >= 1, Sides >= 2); src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count when KeepHighest == 0, or
// len(result.Dice) == expr.KeepHighest and len(result.Dropped) == Count-KeepHighest otherwise.
func Roll(expr Expression, src Source) (RollResult, error) {
	if src == nil {
		return RollResult{}, fmt.Errorf("dice: nil source rolling %q", expr.Raw)
	}
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}

	result := RollResult{Expression: expr.Raw, Dice: rolled, Modifier: expr.Modifier}
	if expr.KeepHighest > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(rolled)))
		result.Dice = rolled[:expr.KeepHighest]
		result.Dropped = rolled[expr.KeepHighest:]
	}
	return result, nil
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: expr must be a valid dice expression string; src must be non-nil.
// Postcondition: Returns a RollResult or a parse/roll error.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src)
}

// Between returns a uniform random integer in the inclusive range [lo, hi].
// A reversed range is swapped rather than rejected.
//
// Precondition: src must be non-nil.
// Postcondition: lo <= result <= hi (after ordering).
func Between(src Source, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + src.Intn(hi-lo+1)
}
