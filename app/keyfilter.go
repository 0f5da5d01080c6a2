package app

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// KeyEnv is the environment a key filter expression is evaluated against.
type KeyEnv struct {
	Code      string `expr:"code"`
	Name      string `expr:"name"`
	Modifiers int    `expr:"modifiers"`
}

// KeyFilter is a compiled boolean expression deciding whether a key badge may
// be shown, e.g. `name != "SPACE" || modifiers > 0`.
type KeyFilter struct {
	source  string
	program *vm.Program
}

func CompileKeyFilter(source string) (*KeyFilter, error) {
	program, err := expr.Compile(source, expr.Env(KeyEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile key filter %q: %w", source, err)
	}
	return &KeyFilter{source: source, program: program}, nil
}

// Allow evaluates the filter. A failing evaluation allows the key.
func (f *KeyFilter) Allow(code string, modifiers int) bool {
	env := KeyEnv{
		Code:      code,
		Name:      strings.TrimPrefix(code, "KEY_"),
		Modifiers: modifiers,
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		logger.Warnf("key filter %q: %v", f.source, err)
		return true
	}
	allow, _ := out.(bool)
	return allow
}
