package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const houseRooms = `
# a small house
room; hall; You are in the hall.
room; kitchen; You are in the kitchen.
room; garden; You are in the garden.

   # indented comment
door; hall; east; kitchen
door; garden; south; hall
`

func parseString(t *testing.T, s string) (*Graph, error) {
	t.Helper()
	return ParseGraph(strings.NewReader(s))
}

func TestParseGraph_Valid(t *testing.T) {
	g, err := parseString(t, houseRooms)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())

	hall, ok := g.Lookup("hall")
	require.True(t, ok)
	kitchen, _ := g.Lookup("kitchen")
	garden, _ := g.Lookup("garden")
	assert.Equal(t, hall, g.EntryRoom())
	assert.Equal(t, "You are in the hall.", g.Room(hall).Description)

	// Every declared door and its reciprocal, and nothing else.
	want := map[RoomID]map[Direction]RoomID{
		hall:    {East: kitchen, North: garden},
		kitchen: {West: hall},
		garden:  {South: hall},
	}
	for _, r := range g.Rooms() {
		got := map[Direction]RoomID{}
		for _, d := range r.Doors() {
			got[d], _ = r.Door(d)
		}
		assert.Equal(t, want[r.ID], got, "doors of %s", r.Name)
	}
}

func TestParseGraph_SelfLoop(t *testing.T) {
	g, err := parseString(t, "room;Cell;a dark cell\ndoor;Cell;north;Cell")
	require.NoError(t, err)
	cell, _ := g.Lookup("Cell")
	south, ok := g.Door(cell, South)
	assert.True(t, ok)
	assert.Equal(t, cell, south)
}

func TestParseGraph_Empty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only a comment\n  # another\n"} {
		_, err := parseString(t, input)
		assert.ErrorIs(t, err, ErrEmptyGraph, "input %q", input)
	}
}

func TestParseGraph_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
		line  int
		value string
	}{
		{"room too few fields", "room; a", KindMalformedRow, 1, "room"},
		{"room too many fields", "room; a; b; c", KindMalformedRow, 1, "room"},
		{"door too few fields", "room;a;A\ndoor; a; north", KindMalformedRow, 2, "door"},
		{"unknown direction", "room;X;x\nroom;Y;y\ndoor;X;up;Y", KindUnknownDirection, 3, "up"},
		{"direction is case sensitive", "room;X;x\ndoor;X;North;X", KindUnknownDirection, 2, "North"},
		{"unknown source room", "room;a;A\ndoor;ghost;north;a", KindUnknownRoomName, 2, "ghost"},
		{"unknown target room", "room;a;A\ndoor;a;north;ghost", KindUnknownRoomName, 2, "ghost"},
		{"forward reference", "room;a;A\ndoor;a;north;b\nroom;b;B", KindUnknownRoomName, 2, "b"},
		{"unknown row type", "room;a;A\nexit;a;north;a", KindUnknownRowType, 2, "exit"},
		{"row type is exact", "Room;a;A", KindUnknownRowType, 1, "Room"},
		{"duplicate room", "room;a;A\nroom;a;again", KindDuplicateRoom, 2, "a"},
		{"door occupied", "room;a;A\nroom;b;B\nroom;c;C\ndoor;a;north;b\ndoor;a;north;c", KindDoorOccupied, 5, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := parseString(t, tt.input)
			require.Error(t, err)
			assert.Nil(t, g)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.value, pe.Value)
			assert.Contains(t, err.Error(), tt.value)
		})
	}
}

func TestParseGraph_UnknownRoomNameMessage(t *testing.T) {
	_, err := parseString(t, "room;a;A\ndoor;a;east;Nowhere")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRoomName)
	assert.Equal(t, `line 2: unknown room name "Nowhere"`, err.Error())
}

func TestParseGraph_StopsAtFirstError(t *testing.T) {
	_, err := parseString(t, "bogus\nroom;a\n")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindUnknownRowType, pe.Kind)
	assert.Equal(t, 1, pe.Line)
}

func TestParseGraph_CRLF(t *testing.T) {
	g, err := parseString(t, "room;a;A\r\nroom;b;B\r\ndoor;a;west;b\r\n")
	require.NoError(t, err)
	a, _ := g.Lookup("a")
	b, _ := g.Lookup("b")
	target, ok := g.Door(b, East)
	assert.True(t, ok)
	assert.Equal(t, a, target)
}

func TestLoadGraphFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "house.rooms")
	require.NoError(t, os.WriteFile(path, []byte(houseRooms), 0644))

	g, err := LoadGraphFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
}

func TestLoadGraphFromFile_NotFound(t *testing.T) {
	_, err := LoadGraphFromFile("/nonexistent/house.rooms")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "/nonexistent/house.rooms")
}

func TestLoadGraphFromFile_YAMLNotFound(t *testing.T) {
	_, err := LoadGraphFromFile("/nonexistent/house.yaml")
	assert.ErrorIs(t, err, ErrIO)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "unknown direction", KindUnknownDirection.String())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())
}
