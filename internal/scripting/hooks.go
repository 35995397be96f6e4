package scripting

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// EnterHook is the Lua global called when the player enters a room:
//
//	function on_enter(name, description) return "extra text" end
const EnterHook = "on_enter"

// Hooks owns one sandboxed LState loaded from a single script file.
type Hooks struct {
	mu     sync.Mutex
	L      *lua.LState
	limit  int
	path   string
	logger *zap.Logger
}

// LoadHooks creates a sandboxed VM, registers the engine module and runs the
// script at path.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns loaded Hooks, or an error on read or Lua failure.
func LoadHooks(path string, instLimit int, logger *zap.Logger) (*Hooks, error) {
	L := NewSandboxedState(instLimit)
	RegisterModules(L, logger)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("scripting: loading %q: %w", path, err)
	}

	logger.Debug("scripting: hooks loaded",
		zap.String("path", path),
		zap.Bool("on_enter", L.GetGlobal(EnterHook).Type() == lua.LTFunction),
	)
	return &Hooks{L: L, limit: effectiveLimit(instLimit), path: path, logger: logger}, nil
}

// OnEnter calls on_enter(name, description) with a fresh instruction budget.
// A missing hook, nil or false yields "". Strings and numbers are returned as text.
//
// Postcondition: Returns the hook's text, or an error on a Lua runtime failure.
func (h *Hooks) OnEnter(name, description string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fn := h.L.GetGlobal(EnterHook)
	if fn.Type() != lua.LTFunction {
		return "", nil
	}

	cancel := armBudget(h.L, h.limit)
	defer cancel()

	if err := h.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(name), lua.LString(description)); err != nil {
		return "", fmt.Errorf("scripting: %s in %q: %w", EnterHook, h.path, err)
	}

	ret := h.L.Get(-1)
	h.L.Pop(1)
	return lua.LVAsString(ret), nil
}

// Close releases the Lua state.
func (h *Hooks) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.L.Close()
}
