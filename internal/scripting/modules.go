package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the engine global: engine.log.{debug,info,warn,error}(msg).
//
// Precondition: L must be from NewSandboxedState; logger must be non-nil.
// Postcondition: engine global is defined in L.
func RegisterModules(L *lua.LState, logger *zap.Logger) {
	engine := L.NewTable()
	logTable := L.NewTable()

	levels := map[string]func(string, ...zap.Field){
		"debug": logger.Debug,
		"info":  logger.Info,
		"warn":  logger.Warn,
		"error": logger.Error,
	}
	for name, fn := range levels {
		fn := fn
		L.SetField(logTable, name, L.NewFunction(func(L *lua.LState) int {
			fn(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}

	L.SetField(engine, "log", logTable)
	L.SetGlobal("engine", engine)
}
