// Package session drives interactive play: it holds the player's current room,
// reads one command per line and prints what the player sees.
package session

import (
	"fmt"

	"github.com/cory-johannsen/rooms/internal/game/world"
)

// DoorPhrase describes the doors facing dirs, listed in the order given.
//
//	0: "There are no doors."
//	1: "There is a door to the north."
//	2: "There are doors to the north and east."
//	3: "There are doors to the north, south and east."
//	4: "There are doors in all directions."
func DoorPhrase(dirs []world.Direction) string {
	switch len(dirs) {
	case 0:
		return "There are no doors."
	case 1:
		return fmt.Sprintf("There is a door to the %s.", dirs[0])
	case 2:
		return fmt.Sprintf("There are doors to the %s and %s.", dirs[0], dirs[1])
	case 3:
		return fmt.Sprintf("There are doors to the %s, %s and %s.", dirs[0], dirs[1], dirs[2])
	default:
		return "There are doors in all directions."
	}
}

// NoDoorText is printed when a move is blocked.
func NoDoorText(d world.Direction) string {
	return fmt.Sprintf("There is no door to the %s!", d)
}

// UnknownCommandText is printed for any unrecognised command.
const UnknownCommandText = "Huh?"
