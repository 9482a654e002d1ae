// Package dice rolls the dice behind ability generation and level gains.
package dice

import (
	"fmt"
	"strings"
)

// Source yields the random numbers behind every roll. Implementations must
// be safe for concurrent use.
type Source interface {
	// Intn returns a random int in [0, n). It panics when n <= 0.
	Intn(n int) int
}

// RollResult records one evaluated expression: the dice kept, the dice
// dropped by a keep-highest rule and the flat modifier.
type RollResult struct {
	Expression string
	Dice       []int // kept, highest first when the expression drops dice
	Dropped    []int
	Modifier   int
}

// Total is the sum of the kept dice plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String renders the roll for logs, e.g. "4d6kh3: [6 5 3] drop [1] = 14".
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String with empty expression")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", r.Expression, r.Dice)
	if len(r.Dropped) > 0 {
		fmt.Fprintf(&b, " drop %v", r.Dropped)
	}
	if r.Modifier != 0 {
		fmt.Fprintf(&b, " %+d", r.Modifier)
	}
	fmt.Fprintf(&b, " = %d", r.Total())
	return b.String()
}
