package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

// Movement errors.
var (
	ErrNoExit       = errors.New("no exit in that direction")
	ErrLocked       = errors.New("exit is locked")
	ErrGuildBlocked = errors.New("guild guard blocks the way")
)

// GuildGuard blocks one exit of a room to every class but its own.
type GuildGuard struct {
	Room      string
	Direction Direction
	Class     ruleset.ClassID
}

// GuildGuards derives the guards of every class guild in reg.
func GuildGuards(reg *ruleset.Registry) []GuildGuard {
	var guards []GuildGuard
	for _, c := range reg.Classes() {
		if c.Guild.Room == "" {
			continue
		}
		guards = append(guards, GuildGuard{Room: c.Guild.Room, Direction: Direction(c.Guild.Direction), Class: c.ID})
	}
	return guards
}

// Manager provides thread-safe access to the loaded world.
// It indexes rooms across all zones by room ID.
type Manager struct {
	mu        sync.RWMutex
	zones     map[string]*Zone
	rooms     map[string]*Room
	guards    map[string][]GuildGuard // room ID → guards
	startRoom string
}

// NewManager creates a Manager from the given zones.
//
// Precondition: the first zone with a start room supplies the global start room.
// Postcondition: Returns a Manager with all rooms indexed by ID, or an error on duplicate IDs.
func NewManager(zones []*Zone) (*Manager, error) {
	m := &Manager{
		zones:  make(map[string]*Zone, len(zones)),
		rooms:  make(map[string]*Room),
		guards: make(map[string][]GuildGuard),
	}
	for _, z := range zones {
		if _, exists := m.zones[z.ID]; exists {
			return nil, fmt.Errorf("duplicate zone ID: %q", z.ID)
		}
		m.zones[z.ID] = z
		for id, room := range z.Rooms {
			if existing, exists := m.rooms[id]; exists {
				return nil, fmt.Errorf("duplicate room ID %q: in zone %q and %q", id, existing.ZoneID, z.ID)
			}
			m.rooms[id] = room
		}
		if m.startRoom == "" {
			m.startRoom = z.StartRoom
		}
	}
	return m, nil
}

// Load reads every zone in dir and builds a Manager whose exits all resolve.
func Load(dir string) (*Manager, error) {
	zones, err := LoadZonesFromDir(dir)
	if err != nil {
		return nil, err
	}
	m, err := NewManager(zones)
	if err != nil {
		return nil, err
	}
	if err := m.ValidateExits(); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateExits checks that every exit target resolves to a known room
// across all loaded zones.
//
// Postcondition: Returns nil if all exits resolve, or an error listing every dangling target.
func (m *Manager) ValidateExits() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var errs []error
	for _, room := range m.rooms {
		for _, exit := range room.Exits {
			if _, ok := m.rooms[exit.TargetRoom]; !ok {
				errs = append(errs, fmt.Errorf("zone %q: room %q: exit %q targets unknown room %q",
					room.ZoneID, room.ID, exit.Direction, exit.TargetRoom))
			}
		}
	}
	return errors.Join(errs...)
}

// SetGuildGuards installs guards, replacing any previous set.
//
// Postcondition: Returns an error, and installs nothing, if a guard stands in
// an unknown room or watches a direction the room has no exit in.
func (m *Manager) SetGuildGuards(guards []GuildGuard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byRoom := make(map[string][]GuildGuard)
	var errs []error
	for _, g := range guards {
		room, ok := m.rooms[g.Room]
		if !ok {
			errs = append(errs, fmt.Errorf("%s guild: unknown room %q", g.Class, g.Room))
			continue
		}
		if _, ok := room.ExitForDirection(g.Direction); !ok {
			errs = append(errs, fmt.Errorf("%s guild: room %q has no exit %s", g.Class, g.Room, g.Direction))
			continue
		}
		byRoom[g.Room] = append(byRoom[g.Room], g)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	m.guards = byRoom
	return nil
}

// GetRoom returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (m *Manager) GetRoom(id string) (*Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

// Navigate resolves movement of a character of the given class and level.
//
// Precondition: fromRoomID must exist in the world.
// Postcondition: Returns the destination room, or an error if the exit does
// not exist, is locked, or a guild guard of another class blocks it.
// Immortals pass every guard.
func (m *Manager) Navigate(fromRoomID string, dir Direction, class ruleset.ClassID, level int) (*Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	from, ok := m.rooms[fromRoomID]
	if !ok {
		return nil, fmt.Errorf("room %q not found", fromRoomID)
	}
	exit, ok := from.ExitForDirection(dir)
	if !ok {
		return nil, fmt.Errorf("%s from %q: %w", dir, fromRoomID, ErrNoExit)
	}
	if exit.Locked {
		return nil, fmt.Errorf("%s from %q: %w", dir, fromRoomID, ErrLocked)
	}
	if !ruleset.IsImmortal(level) {
		for _, g := range m.guards[fromRoomID] {
			if g.Direction == dir && g.Class != class {
				return nil, ErrGuildBlocked
			}
		}
	}
	target, ok := m.rooms[exit.TargetRoom]
	if !ok {
		return nil, fmt.Errorf("exit %q from %q targets unknown room %q", dir, fromRoomID, exit.TargetRoom)
	}
	return target, nil
}

// StartRoom returns the global start room.
//
// Postcondition: Returns the start room or nil if no zone names one.
func (m *Manager) StartRoom() *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.startRoom == "" {
		return nil
	}
	return m.rooms[m.startRoom]
}

// RoomCount returns the total number of rooms across all zones.
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// ZoneCount returns the number of loaded zones.
func (m *Manager) ZoneCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.zones)
}
