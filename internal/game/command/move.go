package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cory-johannsen/deadmud/internal/game/character"
	"github.com/cory-johannsen/deadmud/internal/game/world"
)

// HandleMove moves ch one room in dir and describes the destination.
//
// Precondition: e.World must not be nil.
// Postcondition: On success ch.Location is the destination room and the room
// description is returned; otherwise ch stays put.
func HandleMove(e *Env, ch *character.Character, dir world.Direction) string {
	dest, err := e.World.Navigate(ch.Location, dir, ch.Class, ch.Level)
	switch {
	case errors.Is(err, world.ErrGuildBlocked):
		return "The guard humiliates you, and blocks your way."
	case errors.Is(err, world.ErrLocked):
		return "The door seems to be closed."
	case err != nil:
		return "Alas, you cannot go that way..."
	}

	if e.Sessions != nil {
		if _, merr := e.Sessions.MovePlayer(ch.Name, dest.ID); merr != nil {
			ch.Location = dest.ID
		}
	} else {
		ch.Location = dest.ID
	}
	return HandleLook(e, ch)
}

// HandleLook describes the room ch stands in.
//
// Postcondition: Returns the title, description, exits and other players.
func HandleLook(e *Env, ch *character.Character) string {
	room, ok := e.World.GetRoom(ch.Location)
	if !ok {
		return "You are floating in the void."
	}
	p := e.Palette
	var b strings.Builder
	b.WriteString(p.Paint(BrightYellow, room.Title))
	if ch.Holylight {
		b.WriteString(p.Paintf(Dim, " [%s]", room.ID))
	}
	b.WriteString("\r\n")
	if room.Description != "" {
		b.WriteString(p.Paint(White, strings.TrimRight(room.Description, "\n")))
		b.WriteString("\r\n")
	}
	b.WriteString(exitLine(p, room))

	if e.Sessions != nil {
		var others []string
		for _, name := range e.Sessions.PlayersInRoom(room.ID) {
			if !strings.EqualFold(name, ch.Name) {
				others = append(others, name)
			}
		}
		if len(others) > 0 {
			sort.Strings(others)
			b.WriteString("\r\n")
			b.WriteString(p.Paintf(Green, "Also here: %s", strings.Join(others, ", ")))
		}
	}
	return b.String()
}

// HandleExits lists the exits of the room ch stands in, with their targets.
func HandleExits(e *Env, ch *character.Character) string {
	room, ok := e.World.GetRoom(ch.Location)
	if !ok || len(room.Exits) == 0 {
		return e.Palette.Paint(Dim, "There are no obvious exits.")
	}
	p := e.Palette
	var b strings.Builder
	b.WriteString(p.Paint(Cyan, "Obvious exits:"))
	for _, d := range world.Directions {
		exit, ok := room.ExitForDirection(d)
		if !ok {
			continue
		}
		label := string(d)
		if exit.Locked {
			label += " (closed)"
		}
		target := "Too dark to tell"
		if r, ok := e.World.GetRoom(exit.TargetRoom); ok {
			target = r.Title
		}
		b.WriteString("\r\n")
		b.WriteString("  " + p.Paint(BrightCyan, fmt.Sprintf("%-15s", label)) + " - " + target)
	}
	return b.String()
}

func exitLine(p Palette, room *world.Room) string {
	var dirs []string
	for _, d := range world.Directions {
		if _, ok := room.ExitForDirection(d); ok {
			dirs = append(dirs, string(d))
		}
	}
	if len(dirs) == 0 {
		return p.Paint(Cyan, "[ Exits: None! ]")
	}
	return p.Paintf(Cyan, "[ Exits: %s ]", strings.Join(dirs, " "))
}
