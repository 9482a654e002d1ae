package character_test

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/dice"
	"github.com/cory-johannsen/deadmud/internal/testutil"
)

// recorder captures snoop checks and saves in call order.
type recorder struct {
	mu      sync.Mutex
	events  []string
	saveErr error
}

func (r *recorder) SnoopCheck(ch *character.Character) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "snoop:"+ch.Name)
}

func (r *recorder) Save(_ context.Context, ch *character.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "save:"+ch.Name)
	return r.saveErr
}

func (r *recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

var syserrField = zap.Bool("syserr", true)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func newRoller(values ...int) (*dice.Roller, *testutil.SequenceSource) {
	src := testutil.NewSequenceSource(values...)
	return dice.NewLoggedRoller(src, zap.NewNop()), src
}

// abilityFaces returns Intn answers that roll one 4d6 group per total in
// totals: three dice showing total/3 and a dropped 1.
//
// Precondition: every total is a multiple of 3 in [3, 18].
func abilityFaces(totals ...int) []int {
	var values []int
	for _, total := range totals {
		face := total / 3
		values = append(values, face-1, face-1, face-1, 0)
	}
	return values
}

func newAdvancer(t *testing.T, values ...int) (*character.Advancer, *recorder, *observer.ObservedLogs) {
	t.Helper()
	reg := testutil.Registry(t)
	logger, logs := observedLogger()
	roller, _ := newRoller(values...)
	rec := &recorder{}
	calc := character.NewCalculator(reg, logger)
	return character.NewAdvancer(calc, roller, rec, rec, logger), rec, logs
}
