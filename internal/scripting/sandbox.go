// Package scripting runs room-entry hooks in a sandboxed GopherLua VM.
// Hooks receive plain strings, so the package does not import the world model.
package scripting

import (
	"context"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit caps the opcodes one hook call may execute when no
// limit is configured.
const DefaultInstructionLimit = 100_000

// safeLibs are the only standard libraries opened in a sandboxed state.
var safeLibs = []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString, lua.OpenMath}

// unsafeGlobals are removed after OpenBase.
var unsafeGlobals = []string{"dofile", "loadfile", "load", "collectgarbage", "require"}

// opBudget is a context whose Done is polled by the VM once per opcode.
// It cancels itself when the budget runs out.
type opBudget struct {
	context.Context
	cancel context.CancelFunc
	left   int64
}

func (b *opBudget) Done() <-chan struct{} {
	b.left--
	if b.left <= 0 {
		b.cancel()
	}
	return b.Context.Done()
}

// armBudget installs a fresh budget of limit opcodes on L.
//
// Precondition: limit > 0.
// Postcondition: The returned cancel func releases the budget's context.
func armBudget(L *lua.LState, limit int) context.CancelFunc {
	base, cancel := context.WithCancel(context.Background())
	L.SetContext(&opBudget{Context: base, cancel: cancel, left: int64(limit)})
	return cancel
}

// effectiveLimit maps a configured limit to the one enforced.
func effectiveLimit(instLimit int) int {
	if instLimit <= 0 {
		return DefaultInstructionLimit
	}
	return instLimit
}

// NewSandboxedState returns an LState with only base, table, string and math
// opened, the file/loader globals removed, and a budget of instLimit opcodes
// armed for loading the script. Hooks re-arms the budget per call.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: The caller must call L.Close().
func NewSandboxedState(instLimit int) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range safeLibs {
		open(L)
	}
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	armBudget(L, effectiveLimit(instLimit)) //nolint:govet // cancel fires when the budget runs out
	return L
}
