package world

import "fmt"

// Graph is an immutable set of rooms and the doors between them.
// Rooms live in one append-only slice; every door is a RoomID into it.
type Graph struct {
	rooms  []Room
	byName map[string]RoomID
}

// EntryRoom returns the room where a session begins: the first room added.
func (g *Graph) EntryRoom() RoomID {
	return 0
}

// Len returns the number of rooms in the graph.
func (g *Graph) Len() int {
	return len(g.rooms)
}

// Room returns the room with the given id.
//
// Precondition: id must come from this graph.
func (g *Graph) Room(id RoomID) Room {
	return g.rooms[id]
}

// Door returns the room reached from id through the door facing d.
//
// Postcondition: Returns (target, true) if the door exists, or (NoRoom, false) otherwise.
func (g *Graph) Door(id RoomID, d Direction) (RoomID, bool) {
	if !g.contains(id) {
		return NoRoom, false
	}
	return g.rooms[id].Door(d)
}

// Lookup resolves a room name.
func (g *Graph) Lookup(name string) (RoomID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// Rooms returns a copy of all rooms in insertion order.
func (g *Graph) Rooms() []Room {
	out := make([]Room, len(g.rooms))
	copy(out, g.rooms)
	return out
}

func (g *Graph) contains(id RoomID) bool {
	return id >= 0 && int(id) < len(g.rooms)
}

// Builder assembles a Graph. Rooms may be added and linked freely until Finish
// hands back the read-only Graph; after that every call fails with ErrBuilderFinished.
type Builder struct {
	rooms    []Room
	byName   map[string]RoomID
	finished bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]RoomID)}
}

// AddRoom appends a room with no doors and returns its handle.
//
// Precondition: a non-empty name must not already be in use.
// Postcondition: Returns the new room's id, or an error wrapping ErrDuplicateRoom
// or ErrBuilderFinished.
func (b *Builder) AddRoom(name, description string) (RoomID, error) {
	if b.finished {
		return NoRoom, ErrBuilderFinished
	}
	if name != "" {
		if _, exists := b.byName[name]; exists {
			return NoRoom, fmt.Errorf("room %q: %w", name, ErrDuplicateRoom)
		}
	}
	id := RoomID(len(b.rooms))
	b.rooms = append(b.rooms, newRoom(id, name, description))
	if name != "" {
		b.byName[name] = id
	}
	return id, nil
}

// Lookup resolves a room name declared so far.
func (b *Builder) Lookup(name string) (RoomID, bool) {
	id, ok := b.byName[name]
	return id, ok
}

// Link connects a and b with a reciprocal pair of doors: a's door facing d leads
// to b and b's door facing d.Opposite() leads to a. Both slots are checked before
// either is written, so a failed Link leaves the graph unchanged. Linking a room
// to itself is allowed.
//
// Postcondition: Returns nil when the pair is linked (or already was), or an error
// wrapping ErrDoorOccupied, ErrInvalidRoom or ErrBuilderFinished.
func (b *Builder) Link(a RoomID, d Direction, to RoomID) error {
	if b.finished {
		return ErrBuilderFinished
	}
	if !b.contains(a) || !b.contains(to) {
		return fmt.Errorf("link %d %s %d: %w", a, d, to, ErrInvalidRoom)
	}
	if !d.Valid() {
		return fmt.Errorf("link %d %s %d: %w", a, d, to, ErrUnknownDirection)
	}

	back := d.Opposite()
	from, target := &b.rooms[a], &b.rooms[to]
	if from.doors[d] == to && target.doors[back] == a {
		return nil
	}
	if from.doors[d] != NoRoom {
		return fmt.Errorf("%s of %s: %w", d, b.label(a), ErrDoorOccupied)
	}
	if target.doors[back] != NoRoom {
		return fmt.Errorf("%s of %s: %w", back, b.label(to), ErrDoorOccupied)
	}

	from.doors[d] = to
	target.doors[back] = a
	return nil
}

// Finish freezes the builder and returns the graph.
//
// Postcondition: Returns a Graph with at least one room, or ErrEmptyGraph.
func (b *Builder) Finish() (*Graph, error) {
	if b.finished {
		return nil, ErrBuilderFinished
	}
	if len(b.rooms) == 0 {
		return nil, ErrEmptyGraph
	}
	b.finished = true
	g := &Graph{rooms: b.rooms, byName: b.byName}
	b.rooms, b.byName = nil, nil
	return g, nil
}

func (b *Builder) contains(id RoomID) bool {
	return id >= 0 && int(id) < len(b.rooms)
}

func (b *Builder) label(id RoomID) string {
	if name := b.rooms[id].Name; name != "" {
		return fmt.Sprintf("room %q", name)
	}
	return fmt.Sprintf("room %d", id)
}

// DefaultGraph returns the built-in layout used when no room file is given:
// three rooms A, B and C in a line running north, A↔B and B↔C.
func DefaultGraph() *Graph {
	b := NewBuilder()
	a := mustAdd(b, "A", "room 1")
	mid := mustAdd(b, "B", "room 2")
	c := mustAdd(b, "C", "room 3")
	mustLink(b, a, North, mid)
	mustLink(b, mid, North, c)
	g, err := b.Finish()
	if err != nil {
		panic(fmt.Sprintf("building default graph: %v", err))
	}
	return g
}

func mustAdd(b *Builder, name, description string) RoomID {
	id, err := b.AddRoom(name, description)
	if err != nil {
		panic(fmt.Sprintf("building default graph: %v", err))
	}
	return id
}

func mustLink(b *Builder, a RoomID, d Direction, to RoomID) {
	if err := b.Link(a, d, to); err != nil {
		panic(fmt.Sprintf("building default graph: %v", err))
	}
}
