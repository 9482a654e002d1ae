package command

import "fmt"

// ANSI escape codes used by command output.
const (
	Reset        = "\033[0m"
	Dim          = "\033[2m"
	Red          = "\033[31m"
	Green        = "\033[32m"
	Yellow       = "\033[33m"
	Cyan         = "\033[36m"
	White        = "\033[37m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
)

// Palette styles command output. The zero Palette writes plain text.
type Palette struct {
	Enabled bool
}

// Paint wraps text with color and a reset suffix when the palette is enabled.
//
// Postcondition: Returns text unchanged when p is disabled.
func (p Palette) Paint(color, text string) string {
	if !p.Enabled {
		return text
	}
	return color + text + Reset
}

// Paintf formats and paints in one step.
func (p Palette) Paintf(color, format string, args ...any) string {
	return p.Paint(color, fmt.Sprintf(format, args...))
}

// StripANSI removes all ANSI escape sequences from a string.
//
// Postcondition: Returns s with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}
