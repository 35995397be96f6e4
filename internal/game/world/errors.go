package world

import (
	"errors"
	"fmt"
)

// Sentinel errors. A *ParseError matches the sentinel for its Kind via errors.Is.
var (
	ErrIO               = errors.New("i/o error")
	ErrMalformedRow     = errors.New("malformed row")
	ErrUnknownRoomName  = errors.New("unknown room name")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownRowType   = errors.New("unknown row type")
	ErrEmptyGraph       = errors.New("graph contains no rooms")
	ErrDuplicateRoom    = errors.New("duplicate room name")
	ErrDoorOccupied     = errors.New("door already linked")

	// ErrBuilderFinished is returned by Builder methods called after Finish.
	ErrBuilderFinished = errors.New("builder already finished")
	// ErrInvalidRoom is returned when a RoomID does not belong to the builder.
	ErrInvalidRoom = errors.New("invalid room id")
)

// ErrorKind classifies room-file failures.
type ErrorKind int

// Room-file failure kinds.
const (
	KindIO ErrorKind = iota + 1
	KindMalformedRow
	KindUnknownRoomName
	KindUnknownDirection
	KindUnknownRowType
	KindEmptyGraph
	KindDuplicateRoom
	KindDoorOccupied
)

var kindSentinels = map[ErrorKind]error{
	KindIO:               ErrIO,
	KindMalformedRow:     ErrMalformedRow,
	KindUnknownRoomName:  ErrUnknownRoomName,
	KindUnknownDirection: ErrUnknownDirection,
	KindUnknownRowType:   ErrUnknownRowType,
	KindEmptyGraph:       ErrEmptyGraph,
	KindDuplicateRoom:    ErrDuplicateRoom,
	KindDoorOccupied:     ErrDoorOccupied,
}

// String returns the kind's sentinel message.
func (k ErrorKind) String() string {
	if s, ok := kindSentinels[k]; ok {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is the single structured error returned when a room file cannot be
// turned into a graph.
type ParseError struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Line is the 1-based line of the offending row; 0 when not tied to a row.
	Line int
	// Value is the offending field value (room name, direction, row type, path).
	Value string
	// Err is the underlying cause, if any.
	Err error
}

// Error formats the failure as "line N: <kind> \"value\": <cause>".
func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil && !errors.Is(e.Err, kindSentinels[e.Kind]) {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *ParseError) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && target == s
}

// kindOf maps builder sentinels onto parse error kinds.
func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrEmptyGraph):
		return KindEmptyGraph
	case errors.Is(err, ErrDuplicateRoom):
		return KindDuplicateRoom
	case errors.Is(err, ErrDoorOccupied):
		return KindDoorOccupied
	default:
		return KindMalformedRow
	}
}
