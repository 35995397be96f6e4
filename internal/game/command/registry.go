package command

import (
	"fmt"
	"strings"
)

// Registry maps command keys to Command definitions.
type Registry struct {
	commands []*Command
	byKey    map[rune]*Command
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a name or key.
// Postcondition: Returns a Registry or an error on name/key collisions.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make([]*Command, 0, len(cmds)),
		byKey:    make(map[rune]*Command, len(cmds)),
	}
	names := make(map[string]bool, len(cmds))

	for i := range cmds {
		cmd := &cmds[i]
		if names[cmd.Name] {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if existing, exists := r.byKey[cmd.Key]; exists {
			return nil, fmt.Errorf("duplicate key %q: used by %q and %q", cmd.Key, existing.Name, cmd.Name)
		}
		names[cmd.Name] = true
		r.byKey[cmd.Key] = cmd
		r.commands = append(r.commands, cmd)
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by its key character.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(key rune) (*Command, bool) {
	cmd, ok := r.byKey[key]
	return cmd, ok
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Help renders one "  k  name  help" line per command.
func (r *Registry) Help() string {
	var b strings.Builder
	for _, cmd := range r.commands {
		fmt.Fprintf(&b, "  %c  %-6s %s\n", cmd.Key, cmd.Name, cmd.Help)
	}
	return b.String()
}
