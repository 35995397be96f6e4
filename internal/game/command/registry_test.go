package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rooms/internal/game/world"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Len(t, r.Commands(), 5)
}

func TestResolve_Movement(t *testing.T) {
	r := DefaultRegistry()
	keys := map[rune]world.Direction{'n': world.North, 's': world.South, 'e': world.East, 'w': world.West}
	for key, dir := range keys {
		cmd, ok := r.Resolve(key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, HandlerMove, cmd.Handler)
		assert.Equal(t, dir, cmd.Direction)
		assert.Equal(t, dir.String(), cmd.Name)
	}
}

func TestResolve_Quit(t *testing.T) {
	cmd, ok := DefaultRegistry().Resolve('q')
	require.True(t, ok)
	assert.Equal(t, HandlerQuit, cmd.Handler)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()
	for _, key := range []rune{'N', 'x', ' ', 'Q'} {
		_, ok := r.Resolve(key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestNewRegistry_DuplicateKey(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "north", Key: 'n'},
		{Name: "nowhere", Key: 'n'},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "north", Key: 'n'},
		{Name: "north", Key: 'N'},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestRegistry_Help(t *testing.T) {
	help := DefaultRegistry().Help()
	assert.Contains(t, help, "n  north")
	assert.Contains(t, help, "q  quit")
}

func TestPropertyResolveMatchesBuiltins(t *testing.T) {
	r := DefaultRegistry()
	builtins := BuiltinCommands()
	rapid.Check(t, func(t *rapid.T) {
		want := rapid.SampledFrom(builtins).Draw(t, "cmd")
		got, ok := r.Resolve(want.Key)
		if !ok || got.Name != want.Name {
			t.Fatalf("key %q resolved to %v, want %q", want.Key, got, want.Name)
		}
	})
}
