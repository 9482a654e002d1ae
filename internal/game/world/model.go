// Package world holds the rooms characters stand in: zones loaded from YAML,
// exits between rooms and the guild guards that keep other classes out.
package world

import (
	"errors"
	"fmt"
)

// Direction is one of the six exits a room may have.
type Direction string

// Directions.
const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists every direction in display order.
var Directions = []Direction{North, East, South, West, Up, Down}

// Valid reports whether d is one of the six directions.
func (d Direction) Valid() bool {
	for _, x := range Directions {
		if d == x {
			return true
		}
	}
	return false
}

// Opposite returns the reverse direction, or "" for an invalid one.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	}
	return ""
}

// ParseDirection resolves an abbreviated direction such as "n" or "sou".
func ParseDirection(s string) (Direction, bool) {
	if s == "" {
		return "", false
	}
	for _, d := range Directions {
		if len(s) <= len(d) && string(d[:len(s)]) == s {
			return d, true
		}
	}
	return "", false
}

// Exit is a passage to another room.
type Exit struct {
	Direction  Direction
	TargetRoom string
	Locked     bool
}

// Room is a location in the world.
type Room struct {
	ID          string
	ZoneID      string
	Title       string
	Description string
	Exits       []Exit
	// Flags tag room behaviour, e.g. "peaceful" or "indoors".
	Flags []string
}

// ExitForDirection returns the exit in the given direction, if one exists.
//
// Postcondition: Returns (exit, true) if found, or (Exit{}, false) otherwise.
func (r *Room) ExitForDirection(dir Direction) (Exit, bool) {
	for _, e := range r.Exits {
		if e.Direction == dir {
			return e, true
		}
	}
	return Exit{}, false
}

// HasFlag reports whether the room carries flag.
func (r *Room) HasFlag(flag string) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Zone groups related rooms.
type Zone struct {
	ID          string
	Name        string
	Description string
	StartRoom   string
	Rooms       map[string]*Room
}

// Validate checks zone invariants. Exits may target rooms of other zones;
// Manager.ValidateExits checks those once every zone is loaded.
//
// Postcondition: Returns nil if valid, or an error listing every violation.
func (z *Zone) Validate() error {
	if z.ID == "" {
		return errors.New("zone ID must not be empty")
	}
	var errs []error
	if z.Name == "" {
		errs = append(errs, fmt.Errorf("zone %q: name must not be empty", z.ID))
	}
	if len(z.Rooms) == 0 {
		errs = append(errs, fmt.Errorf("zone %q: must contain at least one room", z.ID))
	}
	if z.StartRoom != "" {
		if _, ok := z.Rooms[z.StartRoom]; !ok {
			errs = append(errs, fmt.Errorf("zone %q: start_room %q not found in rooms", z.ID, z.StartRoom))
		}
	}
	for id, room := range z.Rooms {
		if room.ID != id {
			errs = append(errs, fmt.Errorf("zone %q: room key %q does not match room ID %q", z.ID, id, room.ID))
		}
		if room.Title == "" {
			errs = append(errs, fmt.Errorf("zone %q: room %q: title must not be empty", z.ID, id))
		}
		seen := make(map[Direction]bool)
		for _, exit := range room.Exits {
			if !exit.Direction.Valid() {
				errs = append(errs, fmt.Errorf("zone %q: room %q: unknown direction %q", z.ID, id, exit.Direction))
			}
			if seen[exit.Direction] {
				errs = append(errs, fmt.Errorf("zone %q: room %q: two exits %s", z.ID, id, exit.Direction))
			}
			seen[exit.Direction] = true
			if exit.TargetRoom == "" {
				errs = append(errs, fmt.Errorf("zone %q: room %q: exit %q has empty target", z.ID, id, exit.Direction))
			}
		}
	}
	return errors.Join(errs...)
}
