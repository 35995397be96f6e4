// Package world provides the room graph: rooms, directions, and the reciprocal
// doors between them.
package world

import "fmt"

// Direction is one of the four compass directions a door can face.
type Direction uint8

// The four compass directions, in canonical enumeration order.
const (
	North Direction = iota
	South
	East
	West
)

// numDirections is the number of door slots on every room.
const numDirections = 4

// Directions contains all directions in canonical order (north, south, east, west).
var Directions = []Direction{North, South, East, West}

var directionNames = [numDirections]string{"north", "south", "east", "west"}

// String returns the lowercase direction name, e.g. "north".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d < numDirections
}

// Opposite returns the direction a reciprocal door faces: north↔south, east↔west.
//
// Precondition: d must be valid.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// ParseDirection resolves an exact, case-sensitive direction name.
//
// Postcondition: Returns (direction, true) for "north", "south", "east" or "west";
// (0, false) for anything else.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return 0, false
}

// RoomID is a stable handle to a room inside the graph that owns it.
type RoomID int

// NoRoom marks an empty door slot.
const NoRoom RoomID = -1

// Room is one location in the graph.
type Room struct {
	// ID is the room's position in the owning graph.
	ID RoomID
	// Name identifies the room in room files. Programmatically built rooms may leave it empty.
	Name string
	// Description is shown to the player on entry.
	Description string

	doors [numDirections]RoomID
}

func newRoom(id RoomID, name, description string) Room {
	r := Room{ID: id, Name: name, Description: description}
	for i := range r.doors {
		r.doors[i] = NoRoom
	}
	return r
}

// Door returns the room reached through the door facing d.
//
// Postcondition: Returns (target, true) if a door exists, or (NoRoom, false) otherwise.
func (r Room) Door(d Direction) (RoomID, bool) {
	if !d.Valid() {
		return NoRoom, false
	}
	target := r.doors[d]
	return target, target != NoRoom
}

// Doors lists the directions that have a door, in canonical order.
func (r Room) Doors() []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if r.doors[d] != NoRoom {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// String returns the room description.
func (r Room) String() string {
	return r.Description
}
