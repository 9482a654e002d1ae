package command

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// fillWords are skipped when a command reads its arguments.
var fillWords = map[string]bool{
	"in": true, "from": true, "with": true, "the": true, "on": true, "at": true, "to": true,
}

// Input is one player line split into a command word and its arguments.
type Input struct {
	// Command is the command word, lowercased.
	Command string
	// Args are the words after the command with fill words removed.
	Args []string
	// Rest is the text after the command with its surrounding space trimmed.
	Rest string
}

// Arg returns the i-th argument, or "" when there are fewer arguments.
func (in Input) Arg(i int) string {
	if i < 0 || i >= len(in.Args) {
		return ""
	}
	return in.Args[i]
}

// Parse splits line into a command and its arguments. A line that starts
// with punctuation uses that single character as the command, so "'hello"
// reads as the command "'" with the argument "hello".
//
// Postcondition: Command is empty only when line is blank.
func Parse(line string) Input {
	line = strings.TrimSpace(line)
	if line == "" {
		return Input{}
	}

	var cmd, rest string
	first, size := utf8.DecodeRuneInString(line)
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		cmd, rest = line[:size], line[size:]
	} else if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		cmd, rest = line[:i], line[i:]
	} else {
		cmd = line
	}
	rest = strings.TrimSpace(rest)

	in := Input{Command: strings.ToLower(cmd), Rest: rest}
	for _, w := range strings.Fields(rest) {
		if !fillWords[strings.ToLower(w)] {
			in.Args = append(in.Args, w)
		}
	}
	return in
}
