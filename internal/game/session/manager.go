package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cory-johannsen/deadmud/internal/game/character"
)

// Snoop errors.
var (
	ErrSnoopSelf      = errors.New("you cannot snoop yourself")
	ErrSnoopBusy      = errors.New("busy already")
	ErrSnoopLoop      = errors.New("don't be stupid")
	ErrSnoopForbidden = errors.New("you can't")
)

// PlayerSession tracks one character in the game.
type PlayerSession struct {
	Character *character.Character
	Outbox    *Outbox

	snooping  *PlayerSession // whose output this session copies
	snoopedBy *PlayerSession // who copies this session's output
}

// Name returns the character's name.
func (s *PlayerSession) Name() string {
	return s.Character.Name
}

// Manager tracks all active player sessions, room occupancy and snoop links.
// All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	players  map[string]*PlayerSession  // lowercase name → session
	roomSets map[string]map[string]bool // roomID → set of lowercase names
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{
		players:  make(map[string]*PlayerSession),
		roomSets: make(map[string]map[string]bool),
	}
}

func key(name string) string {
	return strings.ToLower(name)
}

// AddPlayer registers ch in the room named by ch.Location.
//
// Precondition: ch must be non-nil with a non-empty Name.
// Postcondition: Returns the created PlayerSession, or an error if the name is already in the game.
func (m *Manager) AddPlayer(ch *character.Character) (*PlayerSession, error) {
	if ch == nil || ch.Name == "" {
		return nil, errors.New("character must have a name")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(ch.Name)
	if _, exists := m.players[k]; exists {
		return nil, fmt.Errorf("player %q already connected", ch.Name)
	}
	sess := &PlayerSession{Character: ch, Outbox: NewOutbox(ch.Name, 64)}
	m.players[k] = sess
	m.enterRoom(k, ch.Location)
	return sess, nil
}

// RemovePlayer removes a player session, breaks its snoop links and cleans up room occupancy.
//
// Postcondition: The player is removed from all tracking. Returns an error if not found.
func (m *Manager) RemovePlayer(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	sess, exists := m.players[k]
	if !exists {
		return fmt.Errorf("player %q not found", name)
	}
	m.leaveRoom(k, sess.Character.Location)
	unlinkSnooping(sess)
	unlinkSnoopedBy(sess)
	_ = sess.Outbox.Close()
	delete(m.players, k)
	return nil
}

// MovePlayer moves a player to a new room and updates the character's location.
//
// Postcondition: Returns the old room ID, or an error if the player is not found.
func (m *Manager) MovePlayer(name, newRoomID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	sess, exists := m.players[k]
	if !exists {
		return "", fmt.Errorf("player %q not found", name)
	}
	old := sess.Character.Location
	m.leaveRoom(k, old)
	sess.Character.Location = newRoomID
	m.enterRoom(k, newRoomID)
	return old, nil
}

func (m *Manager) enterRoom(k, roomID string) {
	if m.roomSets[roomID] == nil {
		m.roomSets[roomID] = make(map[string]bool)
	}
	m.roomSets[roomID][k] = true
}

func (m *Manager) leaveRoom(k, roomID string) {
	if rs, ok := m.roomSets[roomID]; ok {
		delete(rs, k)
		if len(rs) == 0 {
			delete(m.roomSets, roomID)
		}
	}
}

// PlayersInRoom returns the character names of all players in the given room.
//
// Postcondition: Returns a slice of character names (may be empty).
func (m *Manager) PlayersInRoom(roomID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys, ok := m.roomSets[roomID]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(keys))
	for k := range keys {
		if sess, ok := m.players[k]; ok {
			names = append(names, sess.Name())
		}
	}
	return names
}

// GetPlayer returns the session of the named character (case-insensitive).
//
// Postcondition: Returns (session, true) if found, or (nil, false) otherwise.
func (m *Manager) GetPlayer(name string) (*PlayerSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.players[key(name)]
	return sess, ok
}

// PlayerCount returns the total number of players in the game.
func (m *Manager) PlayerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}

// Send delivers text to the named player and a "% "-prefixed copy to whoever
// snoops them.
func (m *Manager) Send(name, text string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.players[key(name)]
	if !ok {
		return fmt.Errorf("player %q not found", name)
	}
	if err := sess.Outbox.Push(text); err != nil {
		return err
	}
	if w := sess.snoopedBy; w != nil {
		// A snooper's full buffer must not block the victim.
		_ = w.Outbox.Push("% " + text)
	}
	return nil
}

// Snoop links watcher to victim so watcher receives a copy of victim's output.
// Snooping an empty victim name, or oneself, ends any current snoop.
//
// Precondition: watcher is in the game.
// Postcondition: on success watcher snoops victim and no snoop cycle exists.
func (m *Manager) Snoop(watcher, victim string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.players[key(watcher)]
	if !ok {
		return fmt.Errorf("player %q not found", watcher)
	}
	if victim == "" || key(victim) == key(watcher) {
		unlinkSnooping(w)
		if victim == "" {
			return nil
		}
		return ErrSnoopSelf
	}
	v, ok := m.players[key(victim)]
	if !ok {
		return fmt.Errorf("player %q not found", victim)
	}
	if v.snoopedBy != nil {
		return ErrSnoopBusy
	}
	for s := v.snooping; s != nil; s = s.snooping {
		if s == w {
			return ErrSnoopLoop
		}
	}
	if v.Character.Level >= w.Character.Level {
		return ErrSnoopForbidden
	}

	unlinkSnooping(w)
	w.snooping = v
	v.snoopedBy = w
	return nil
}

// Snooping returns the name of the character watcher snoops, if any.
func (m *Manager) Snooping(watcher string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.players[key(watcher)]
	if !ok || w.snooping == nil {
		return "", false
	}
	return w.snooping.Name(), true
}

// SnoopCheck drops the snoop links of ch that its current level no longer
// permits: ch may only snoop lower levels and be snooped by higher levels.
// Characters not in the game are ignored.
func (m *Manager) SnoopCheck(ch *character.Character) {
	if ch == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.players[key(ch.Name)]
	if !ok {
		return
	}
	if v := sess.snooping; v != nil && v.Character.Level >= ch.Level {
		unlinkSnooping(sess)
	}
	if w := sess.snoopedBy; w != nil && ch.Level >= w.Character.Level {
		unlinkSnoopedBy(sess)
	}
}

func unlinkSnooping(s *PlayerSession) {
	if s.snooping != nil {
		s.snooping.snoopedBy = nil
		s.snooping = nil
	}
}

func unlinkSnoopedBy(s *PlayerSession) {
	if s.snoopedBy != nil {
		s.snoopedBy.snooping = nil
		s.snoopedBy = nil
	}
}
