// Package command provides the single-character command table and line parser.
package command

import "github.com/cory-johannsen/rooms/internal/game/world"

// Handler identifiers.
const (
	HandlerMove = "move"
	HandlerQuit = "quit"
)

// Command defines a player-invocable command, selected by the first character of a line.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Key is the character that selects the command.
	Key rune
	// Help is the short help text displayed to players.
	Help string
	// Handler identifies how the session applies the command.
	Handler string
	// Direction is the movement direction for HandlerMove commands.
	Direction world.Direction
}

// BuiltinCommands returns all built-in commands.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "north", Key: 'n', Help: "Move north", Handler: HandlerMove, Direction: world.North},
		{Name: "south", Key: 's', Help: "Move south", Handler: HandlerMove, Direction: world.South},
		{Name: "east", Key: 'e', Help: "Move east", Handler: HandlerMove, Direction: world.East},
		{Name: "west", Key: 'w', Help: "Move west", Handler: HandlerMove, Direction: world.West},
		{Name: "quit", Key: 'q', Help: "Leave the game", Handler: HandlerQuit},
	}
}
