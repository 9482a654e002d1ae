package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/deadmud/internal/game/dice"
	"github.com/cory-johannsen/deadmud/internal/testutil"
)

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{
		Expression: "2d6+3",
		Dice:       []int{4, 5},
		Modifier:   3,
	}
	assert.Equal(t, 12, r.Total(), "Total() must equal sum(Dice)+Modifier")
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{
		Expression: "4d6kh3",
		Dice:       []int{6, 5, 3},
		Dropped:    []int{1},
	}
	assert.Equal(t, "4d6kh3: [6 5 3] drop [1] = 14", r.String())

	r = dice.RollResult{Expression: "1d6+2", Dice: []int{4}, Modifier: 2}
	assert.Equal(t, "1d6+2: [4] +2 = 6", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}, Modifier: 0}
	assert.Panics(t, func() { _ = r.String() })
}

func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dice_ := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.IntRange(-100, 100).Draw(rt, "modifier")

		r := dice.RollResult{Expression: "Nd6+M", Dice: dice_, Modifier: modifier}

		expected := modifier
		for _, d := range dice_ {
			expected += d
		}
		assert.Equal(rt, expected, r.Total())
	})
}

func TestParse_Forms(t *testing.T) {
	cases := []struct {
		in    string
		count int
		sides int
		mod   int
		kh    int
	}{
		{"d20", 1, 20, 0, 0},
		{"2d6", 2, 6, 0, 0},
		{"2d6+3", 2, 6, 3, 0},
		{"4d8-2", 4, 8, -2, 0},
		{"4d6kh3", 4, 6, 0, 3},
		{"4D6KH3+1", 4, 6, 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := dice.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.in, e.Raw)
			assert.Equal(t, tc.count, e.Count)
			assert.Equal(t, tc.sides, e.Sides)
			assert.Equal(t, tc.mod, e.Modifier)
			assert.Equal(t, tc.kh, e.KeepHighest)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "6", "0d6", "xd6", "2d1", "2dx", "4d6kh4", "4d6kh0", "4d6khz", "2d6+z"} {
		_, err := dice.Parse(in)
		assert.Error(t, err, "expression %q must be rejected", in)
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("nope") })
	assert.NotPanics(t, func() { dice.MustParse("4d6kh3") })
}

func TestRoll_KeepHighestDropsLowest(t *testing.T) {
	src := testutil.Faces(2, 6, 1, 4)
	r, err := dice.Roll(dice.MustParse("4d6kh3"), src)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 4, 2}, r.Dice)
	assert.Equal(t, []int{1}, r.Dropped)
	assert.Equal(t, 12, r.Total())
}

func TestRoll_NilSource(t *testing.T) {
	_, err := dice.Roll(dice.MustParse("2d6"), nil)
	assert.Error(t, err)
}

func TestRoll_KeepHighest_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		r, err := dice.RollExpr("4d6kh3", dice.NewSeededSource(seed))
		require.NoError(rt, err)
		require.Len(rt, r.Dice, 3)
		require.Len(rt, r.Dropped, 1)
		assert.GreaterOrEqual(rt, r.Total(), 3)
		assert.LessOrEqual(rt, r.Total(), 18)
		for _, d := range r.Dice {
			assert.GreaterOrEqual(rt, d, r.Dropped[0], "dropped die must be the lowest")
		}
	})
}

func TestBetween_Inclusive(t *testing.T) {
	assert.Equal(t, 3, dice.Between(testutil.NewSequenceSource(0), 3, 8))
	assert.Equal(t, 8, dice.Between(testutil.NewSequenceSource(5), 3, 8))
	assert.Equal(t, 7, dice.Between(testutil.NewSequenceSource(0), 7, 7))
}

func TestBetween_ReversedRange(t *testing.T) {
	assert.Equal(t, 3, dice.Between(testutil.NewSequenceSource(0), 8, 3))
}

func TestBetween_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-50, 50).Draw(rt, "lo")
		hi := rapid.IntRange(lo, lo+100).Draw(rt, "hi")
		v := dice.Between(dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")), lo, hi)
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, hi)
	})
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestLoggedRoller_LogsRolls(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(testutil.Faces(3, 3, 5, 6), zap.New(core))

	res, err := r.RollExpr("4d6kh3")
	require.NoError(t, err)
	assert.Equal(t, 14, res.Total())

	v := r.Between(1, 3)
	assert.Equal(t, 1, v)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "dice roll", entries[0].Message)
	assert.EqualValues(t, 14, entries[0].ContextMap()["total"])
	assert.Equal(t, "range roll", entries[1].Message)
	assert.True(t, strings.Contains(fmt.Sprint(entries[1].ContextMap()["hi"]), "3"))
}
