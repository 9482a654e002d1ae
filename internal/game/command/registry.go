package command

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/deadmud/internal/game/ruleset"
)

// Registry maps command names and aliases to Command definitions.
type Registry struct {
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
	order    []*Command          // registration order, used for abbreviations
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
		order:    make([]*Command, 0, len(cmds)),
	}

	for i := range cmds {
		cmd := &cmds[i]
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if _, exists := r.aliases[cmd.Name]; exists {
			return nil, fmt.Errorf("command name %q conflicts with an existing alias", cmd.Name)
		}
		r.commands[cmd.Name] = cmd
		r.order = append(r.order, cmd)

		for _, alias := range cmd.Aliases {
			if _, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with command name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, cmd.Name)
			}
			r.aliases[alias] = cmd.Name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
//
// Postcondition: Returns a Registry with all built-in commands registered.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by exact name, then alias, then as an
// abbreviation of a command name in registration order. Level gates are
// ignored.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Command, bool) {
	return r.ResolveFor(input, ruleset.LevelImplementor)
}

// ResolveFor is Resolve restricted to commands a character of level may use.
// A command above level is invisible: it neither matches by name nor absorbs
// an abbreviation meant for a later command.
func (r *Registry) ResolveFor(input string, level int) (*Command, bool) {
	if input == "" {
		return nil, false
	}
	if cmd, ok := r.commands[input]; ok && cmd.MinLevel <= level {
		return cmd, true
	}
	if canonical, ok := r.aliases[input]; ok {
		if cmd := r.commands[canonical]; cmd.MinLevel <= level {
			return cmd, true
		}
	}
	for _, cmd := range r.order {
		if cmd.MinLevel <= level && strings.HasPrefix(cmd.Name, input) {
			return cmd, true
		}
	}
	return nil, false
}

// Available returns the commands a character of level may use, in
// registration order.
func (r *Registry) Available(level int) []*Command {
	var result []*Command
	for _, cmd := range r.order {
		if cmd.MinLevel <= level {
			result = append(result, cmd)
		}
	}
	return result
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []*Command {
	result := make([]*Command, len(r.order))
	copy(result, r.order)
	return result
}

// CommandsByCategory returns commands grouped by category.
func (r *Registry) CommandsByCategory() map[string][]*Command {
	categories := make(map[string][]*Command)
	for _, cmd := range r.order {
		categories[cmd.Category] = append(categories[cmd.Category], cmd)
	}
	return categories
}
