package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParse_Blank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t\r\n"} {
		in := Parse(line)
		assert.Empty(t, in.Command, "%q", line)
		assert.Nil(t, in.Args)
	}
}

func TestParse_CommandIsLowercased(t *testing.T) {
	in := Parse("  MULTI   Medic ")
	assert.Equal(t, "multi", in.Command)
	assert.Equal(t, []string{"Medic"}, in.Args)
	assert.Equal(t, "Medic", in.Rest)
}

func TestParse_FillWordsAreSkipped(t *testing.T) {
	in := Parse("multi to the bandit")
	assert.Equal(t, []string{"bandit"}, in.Args)
	assert.Equal(t, "bandit", in.Arg(0))
	assert.Equal(t, "to the bandit", in.Rest)
}

func TestParse_RestKeepsInnerSpacing(t *testing.T) {
	in := Parse("title the   Unbroken")
	assert.Equal(t, "the   Unbroken", in.Rest)
	assert.Equal(t, []string{"Unbroken"}, in.Args)
}

func TestParse_LeadingPunctuation(t *testing.T) {
	in := Parse("'hello there")
	assert.Equal(t, "'", in.Command)
	assert.Equal(t, "hello there", in.Rest)
	assert.Equal(t, []string{"hello", "there"}, in.Args)

	in = Parse("?")
	assert.Equal(t, "?", in.Command)
	assert.Empty(t, in.Rest)
}

func TestParse_InvalidUTF8LeadByte(t *testing.T) {
	var in Input
	assert.NotPanics(t, func() { in = Parse("\xff") })
	assert.NotEmpty(t, in.Command)
	assert.Empty(t, in.Rest)

	in = Parse("\xff multi soldier")
	assert.NotEmpty(t, in.Command)
	assert.Equal(t, "multi soldier", in.Rest)
	assert.Equal(t, []string{"multi", "soldier"}, in.Args)
}

func TestPropertyParseNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := string(rapid.SliceOf(rapid.Byte()).Draw(t, "line"))
		in := Parse(line)
		if strings.TrimSpace(line) != "" && in.Command == "" {
			t.Fatalf("non-blank line %q parsed to no command", line)
		}
	})
}

func TestInput_ArgOutOfRange(t *testing.T) {
	in := Parse("score")
	assert.Equal(t, "", in.Arg(0))
	assert.Equal(t, "", in.Arg(-1))
}

func TestPropertyParseCommandIsFirstWord(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cmd := rapid.StringMatching(`[a-zA-Z]{1,10}`).Draw(t, "cmd")
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 0, 5).Draw(t, "words")
		in := Parse(cmd + " " + strings.Join(words, " "))
		if in.Command != strings.ToLower(cmd) {
			t.Fatalf("command %q, want %q", in.Command, strings.ToLower(cmd))
		}
		for _, a := range in.Args {
			if fillWords[a] {
				t.Fatalf("fill word %q kept in %v", a, in.Args)
			}
		}
	})
}
