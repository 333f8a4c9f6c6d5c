package runtime

import (
	"fmt"

	"github.com/cwbudde/jlox/internal/errsink"
	"github.com/cwbudde/jlox/pkg/token"
)

func undefinedVariableError(name token.Token) error {
	return errsink.NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}

// UndefinedPropertyError reports a missing field or method access.
func UndefinedPropertyError(name token.Token) error {
	return errsink.NewRuntimeError(name, fmt.Sprintf("Undefined property '%s'.", name.Lexeme))
}
