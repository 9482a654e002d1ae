// Package session tracks the characters currently in the game, the rooms
// they occupy and the snoop links between their outputs.
package session

import (
	"fmt"
	"sync"
)

// Outbox routes text sent to a player onto a buffered channel that the
// player's front end drains.
type Outbox struct {
	name   string
	events chan string
	mu     sync.Mutex
	closed bool
}

// NewOutbox creates an Outbox for the named player.
//
// Precondition: name must be non-empty.
// Postcondition: Returns an Outbox with an open events channel.
func NewOutbox(name string, bufferSize int) *Outbox {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Outbox{
		name:   name,
		events: make(chan string, bufferSize),
	}
}

// Name returns the owning character's name.
func (o *Outbox) Name() string {
	return o.name
}

// Push enqueues text for the player.
//
// Postcondition: text is enqueued, or an error if the outbox is closed or full.
func (o *Outbox) Push(text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return fmt.Errorf("outbox %s is closed", o.name)
	}
	select {
	case o.events <- text:
		return nil
	default:
		return fmt.Errorf("outbox %s buffer full", o.name)
	}
}

// Events returns the read-only events channel.
func (o *Outbox) Events() <-chan string {
	return o.events
}

// Close marks the outbox as closed and closes the events channel.
//
// Postcondition: The events channel is closed. Further Push calls return an error.
func (o *Outbox) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.closed {
		o.closed = true
		close(o.events)
	}
	return nil
}

// IsClosed reports whether the outbox has been closed.
func (o *Outbox) IsClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}
