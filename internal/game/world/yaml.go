package world

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// yamlRoomFile is the top-level YAML structure for room files.
type yamlRoomFile struct {
	Rooms []yamlRoom `yaml:"rooms"`
}

// yamlRoom is the YAML representation of a room. Doors map a direction name to
// the target room's name.
type yamlRoom struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Doors       map[string]string `yaml:"doors,omitempty"`
}

// LoadGraphFromYAML builds a graph from YAML room data. Unlike the line format,
// doors may name rooms declared later in the document. A reciprocal pair may be
// listed on either room or on both.
//
// Postcondition: Returns a graph with at least one room, or a *ParseError.
func LoadGraphFromYAML(data []byte) (*Graph, error) {
	var file yamlRoomFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ParseError{Kind: KindMalformedRow, Err: fmt.Errorf("parsing room YAML: %w", err)}
	}

	b := NewBuilder()
	for _, yr := range file.Rooms {
		if yr.Name == "" {
			return nil, &ParseError{Kind: KindMalformedRow, Err: fmt.Errorf("room %q has no name", yr.Description)}
		}
		if _, err := b.AddRoom(yr.Name, yr.Description); err != nil {
			return nil, &ParseError{Kind: kindOf(err), Value: yr.Name, Err: err}
		}
	}

	for _, yr := range file.Rooms {
		from, _ := b.Lookup(yr.Name)
		for _, key := range sortedKeys(yr.Doors) {
			dir, ok := ParseDirection(key)
			if !ok {
				return nil, &ParseError{Kind: KindUnknownDirection, Value: key}
			}
			target := yr.Doors[key]
			to, ok := b.Lookup(target)
			if !ok {
				return nil, &ParseError{Kind: KindUnknownRoomName, Value: target}
			}
			if err := b.Link(from, dir, to); err != nil {
				return nil, &ParseError{Kind: kindOf(err), Value: yr.Name, Err: err}
			}
		}
	}

	g, err := b.Finish()
	if err != nil {
		return nil, &ParseError{Kind: kindOf(err), Err: err}
	}
	return g, nil
}

// MarshalGraphYAML renders g in the YAML room format. Every door is listed on
// both rooms it connects.
//
// Precondition: every room in g must have a non-empty name.
// Postcondition: Returns YAML accepted by LoadGraphFromYAML, or an error.
func MarshalGraphYAML(g *Graph) ([]byte, error) {
	file := yamlRoomFile{Rooms: make([]yamlRoom, 0, g.Len())}
	for _, r := range g.Rooms() {
		if r.Name == "" {
			return nil, fmt.Errorf("room %d has no name", r.ID)
		}
		yr := yamlRoom{Name: r.Name, Description: r.Description}
		for _, d := range r.Doors() {
			if yr.Doors == nil {
				yr.Doors = make(map[string]string, numDirections)
			}
			target, _ := r.Door(d)
			yr.Doors[d.String()] = g.Room(target).Name
		}
		file.Rooms = append(file.Rooms, yr)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("serialising rooms: %w", err)
	}
	return data, nil
}

// sortedKeys returns door keys with known directions first in canonical order,
// then any unknown keys alphabetically, so failures are reported deterministically.
func sortedKeys(doors map[string]string) []string {
	keys := make([]string, 0, len(doors))
	for k := range doors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, iok := ParseDirection(keys[i])
		dj, jok := ParseDirection(keys[j])
		switch {
		case iok && jok:
			return di < dj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
