// Package command provides the command registry, parser, and the player
// commands of the class and multiclass surface.
package command

import "github.com/cory-johannsen/deadmud/internal/game/ruleset"

// Categories for organizing commands.
const (
	CategoryMovement  = "movement"
	CategoryWorld     = "world"
	CategoryCharacter = "character"
	CategorySystem    = "system"
	CategoryImmortal  = "immortal"
)

// Handler identifiers mapping commands to their handler functions.
const (
	HandlerMove   = "move"
	HandlerLook   = "look"
	HandlerExits  = "exits"
	HandlerScore  = "score"
	HandlerLevels = "levels"
	HandlerTitle  = "title"
	HandlerMulti  = "multi"
	HandlerSave   = "save"
	HandlerHelp   = "help"
	HandlerQuit   = "quit"

	HandlerHolylight = "holylight"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (movement, world, character, system).
	Category string
	// Handler names the function that runs the command.
	Handler string
	// MinLevel is the lowest level that can see and use the command.
	MinLevel int
}

// BuiltinCommands returns all built-in commands for the game, in the order
// abbreviations are matched against them.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "north", Aliases: []string{"n"}, Help: "Move north", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "east", Aliases: []string{"e"}, Help: "Move east", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "south", Aliases: []string{"s"}, Help: "Move south", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "west", Aliases: []string{"w"}, Help: "Move west", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "up", Aliases: []string{"u"}, Help: "Move up", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "down", Aliases: []string{"d"}, Help: "Move down", Category: CategoryMovement, Handler: HandlerMove},

		// World commands
		{Name: "look", Aliases: []string{"l"}, Help: "Look around the current room", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "exits", Aliases: []string{"ex"}, Help: "List available exits", Category: CategoryWorld, Handler: HandlerExits},

		// Character commands
		{Name: "score", Aliases: []string{"sc"}, Help: "Show your statistics", Category: CategoryCharacter, Handler: HandlerScore},
		{Name: "levels", Aliases: nil, Help: "Show the experience needed for each level of your class", Category: CategoryCharacter, Handler: HandlerLevels},
		{Name: "title", Aliases: nil, Help: "Show or change your title (title [text])", Category: CategoryCharacter, Handler: HandlerTitle},
		{Name: "multi", Aliases: nil, Help: "Start over in another class (multi <class name>)", Category: CategoryCharacter, Handler: HandlerMulti},

		// System commands
		{Name: "save", Aliases: nil, Help: "Save your character", Category: CategorySystem, Handler: HandlerSave},
		{Name: "help", Aliases: []string{"?"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit"}, Help: "Leave the game", Category: CategorySystem, Handler: HandlerQuit},

		// Immortal commands
		{Name: "holylight", Aliases: nil, Help: "Toggle seeing room numbers", Category: CategoryImmortal, Handler: HandlerHolylight, MinLevel: ruleset.LevelImmortal},
	}
}

// IsMovementCommand reports whether the command name is a movement direction.
func IsMovementCommand(name string) bool {
	switch name {
	case "north", "east", "south", "west", "up", "down":
		return true
	default:
		return false
	}
}
