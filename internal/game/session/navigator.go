package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/rooms/internal/game/command"
	"github.com/cory-johannsen/rooms/internal/game/world"
	"github.com/cory-johannsen/rooms/internal/render"
)

// EntryHook is called after the entrance text of every room the player enters.
// Non-empty text is printed; errors are logged and never end the session.
type EntryHook interface {
	OnEnter(name, description string) (string, error)
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Navigator) { n.logger = logger }
}

// WithColor enables ANSI colors in game output.
func WithColor(enabled bool) Option {
	return func(n *Navigator) { n.style = render.NewStyler(enabled) }
}

// WithEntryHook installs a room-entry hook.
func WithEntryHook(hook EntryHook) Option {
	return func(n *Navigator) { n.hook = hook }
}

// WithPrompt prints prompt before every command read.
func WithPrompt(prompt string) Option {
	return func(n *Navigator) { n.prompt = prompt }
}

// WithRegistry replaces the built-in command table.
func WithRegistry(r *command.Registry) Option {
	return func(n *Navigator) { n.registry = r }
}

// Navigator owns the session cursor. The graph is only ever read.
type Navigator struct {
	id       uuid.UUID
	graph    *world.Graph
	current  world.RoomID
	in       *bufio.Reader
	out      io.Writer
	registry *command.Registry
	style    render.Styler
	hook     EntryHook
	prompt   string
	logger   *zap.Logger
	moves    int
}

// New creates a Navigator positioned at the graph's entry room.
//
// Precondition: g must be non-nil; in and out must be non-nil.
// Postcondition: Returns a Navigator ready for Run.
func New(g *world.Graph, in io.Reader, out io.Writer, opts ...Option) *Navigator {
	n := &Navigator{
		id:       uuid.New(),
		graph:    g,
		current:  g.EntryRoom(),
		in:       bufio.NewReader(in),
		out:      out,
		registry: command.DefaultRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With(zap.String("session_id", n.id.String()))
	return n
}

// ID returns the session identifier used in logs.
func (n *Navigator) ID() uuid.UUID {
	return n.id
}

// Current returns the room the player is in.
func (n *Navigator) Current() world.RoomID {
	return n.current
}

// Moves returns the number of successful moves so far.
func (n *Navigator) Moves() int {
	return n.moves
}

// Run prints the entry room, then reads and applies commands until the player
// quits or the input ends. End of input is a clean quit.
//
// Postcondition: Returns nil on quit or end of input, ctx.Err() if ctx is done
// between commands, or a read/write error.
func (n *Navigator) Run(ctx context.Context) error {
	room := n.graph.Room(n.current)
	n.logger.Info("session started",
		zap.Int("rooms", n.graph.Len()),
		zap.String("entry_room", room.Name),
	)

	if err := n.enter(n.current); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			n.logger.Info("session cancelled", zap.Int("moves", n.moves))
			return err
		}
		if n.prompt != "" {
			if _, err := io.WriteString(n.out, n.prompt); err != nil {
				return fmt.Errorf("writing prompt: %w", err)
			}
		}

		line, readErr := n.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			n.logger.Error("reading command", zap.Error(readErr))
			return fmt.Errorf("reading command: %w", readErr)
		}

		if line != "" {
			quit, err := n.Handle(line)
			if err != nil {
				return err
			}
			if quit {
				n.logger.Info("session ended", zap.String("reason", "quit"), zap.Int("moves", n.moves))
				return nil
			}
		}

		if readErr != nil {
			n.logger.Info("session ended", zap.String("reason", "end of input"), zap.Int("moves", n.moves))
			return nil
		}
	}
}

// Handle applies one line of input. Empty lines are ignored.
//
// Postcondition: Returns quit=true for the quit command; a non-nil error only
// when output cannot be written.
func (n *Navigator) Handle(line string) (quit bool, err error) {
	res := command.Parse(line)
	if res.Empty() {
		return false, nil
	}

	cmd, ok := n.registry.Resolve(res.Key)
	if !ok {
		n.logger.Debug("unknown command", zap.String("input", res.Raw))
		return false, n.println(render.Yellow, UnknownCommandText)
	}

	switch cmd.Handler {
	case command.HandlerQuit:
		return true, nil
	case command.HandlerMove:
		return false, n.move(cmd.Direction)
	default:
		return false, n.println(render.Yellow, UnknownCommandText)
	}
}

func (n *Navigator) move(d world.Direction) error {
	target, ok := n.graph.Door(n.current, d)
	if !ok {
		n.logger.Debug("move blocked",
			zap.String("room", n.graph.Room(n.current).Name),
			zap.Stringer("direction", d),
		)
		return n.println(render.Yellow, NoDoorText(d))
	}

	n.logger.Debug("moved",
		zap.String("from", n.graph.Room(n.current).Name),
		zap.String("to", n.graph.Room(target).Name),
		zap.Stringer("direction", d),
	)
	n.current = target
	n.moves++
	return n.enter(target)
}

// enter prints the entrance text of id and runs the entry hook.
func (n *Navigator) enter(id world.RoomID) error {
	room := n.graph.Room(id)
	if err := n.println(render.BrightWhite, room.Description); err != nil {
		return err
	}
	if err := n.println(render.Cyan, DoorPhrase(room.Doors())); err != nil {
		return err
	}

	if n.hook == nil {
		return nil
	}
	text, err := n.hook.OnEnter(room.Name, room.Description)
	if err != nil {
		n.logger.Warn("entry hook failed", zap.String("room", room.Name), zap.Error(err))
		return nil
	}
	if text == "" {
		return nil
	}
	return n.println(render.Green, text)
}

func (n *Navigator) println(color, text string) error {
	if _, err := fmt.Fprintln(n.out, n.style.Style(color, text)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
