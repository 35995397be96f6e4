package world

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Row types of the line-oriented room format.
const (
	rowRoom = "room"
	rowDoor = "door"
)

// LoadGraphFromFile reads a room file and builds its graph. Files ending in
// .yaml or .yml use the YAML room format; anything else uses the line format.
//
// Postcondition: Returns a graph with at least one room, or a *ParseError.
func LoadGraphFromFile(path string) (*Graph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ParseError{Kind: KindIO, Value: path, Err: err}
		}
		return LoadGraphFromYAML(data)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Kind: KindIO, Value: path, Err: err}
	}
	defer f.Close()
	return ParseGraph(f)
}

// ParseGraph builds a graph from the line-oriented room format:
//
//	# comment
//	room; <name>; <description>
//	door; <room_a>; <north|south|east|west>; <room_b>
//
// Parsing is single pass and stops at the first bad row, so a door may only
// name rooms declared above it.
//
// Postcondition: Returns a graph with at least one room, or a *ParseError.
func ParseGraph(r io.Reader) (*Graph, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := parseLine(b, lineNo, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Kind: KindIO, Line: lineNo, Err: err}
	}

	g, err := b.Finish()
	if err != nil {
		return nil, &ParseError{Kind: kindOf(err), Err: err}
	}
	return g, nil
}

func parseLine(b *Builder, lineNo int, line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	fields := strings.Split(trimmed, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	switch fields[0] {
	case rowRoom:
		return parseRoomRow(b, lineNo, fields)
	case rowDoor:
		return parseDoorRow(b, lineNo, fields)
	default:
		return &ParseError{Kind: KindUnknownRowType, Line: lineNo, Value: fields[0]}
	}
}

func parseRoomRow(b *Builder, lineNo int, fields []string) error {
	if len(fields) != 3 {
		return malformed(lineNo, fields)
	}
	if _, err := b.AddRoom(fields[1], fields[2]); err != nil {
		return &ParseError{Kind: kindOf(err), Line: lineNo, Value: fields[1], Err: err}
	}
	return nil
}

func parseDoorRow(b *Builder, lineNo int, fields []string) error {
	if len(fields) != 4 {
		return malformed(lineNo, fields)
	}
	dir, ok := ParseDirection(fields[2])
	if !ok {
		return &ParseError{Kind: KindUnknownDirection, Line: lineNo, Value: fields[2]}
	}
	from, ok := b.Lookup(fields[1])
	if !ok {
		return &ParseError{Kind: KindUnknownRoomName, Line: lineNo, Value: fields[1]}
	}
	to, ok := b.Lookup(fields[3])
	if !ok {
		return &ParseError{Kind: KindUnknownRoomName, Line: lineNo, Value: fields[3]}
	}
	if err := b.Link(from, dir, to); err != nil {
		return &ParseError{Kind: kindOf(err), Line: lineNo, Value: fields[1], Err: err}
	}
	return nil
}

func malformed(lineNo int, fields []string) error {
	return &ParseError{
		Kind:  KindMalformedRow,
		Line:  lineNo,
		Value: fields[0],
		Err:   errors.New("wrong number of fields"),
	}
}
