package runtime

import "github.com/cwbudde/jlox/pkg/token"

// Environment is one frame of name→value bindings plus an optional link
// to its enclosing frame. Frames are created on entering a block,
// function call, or method binding, and are released when that scope
// exits — except for frames a closure still references, which the Go
// garbage collector keeps alive through the closure's pointer.
//
// Bindings live in a plain map[string]Value: Lox identifiers are
// case-sensitive, and the resolver's distance side table lets
// GetAt/AssignAt skip the chain walk entirely for resolved locals.
type Environment struct {
	values map[string]Value
	outer  *Environment
}

// NewEnvironment creates the root (global) environment, with no outer
// link.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosed creates a new environment nested inside outer.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{values: make(map[string]Value), outer: outer}
}

// Define binds name to value in the current frame, always succeeding —
// it overwrites any existing binding for name in this frame.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get searches the current frame, then each enclosing frame in turn, for
// an undistanced (global-bound-at-runtime) lookup.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, undefinedVariableError(name)
}

// Assign updates the nearest existing binding for name along the chain.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return undefinedVariableError(name)
}

// ancestor walks exactly distance enclosing links.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.outer
	}
	return env
}

// GetAt reads name directly out of the frame distance links up, with no
// search — the resolver guarantees the binding is there.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name directly into the frame distance links up.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).values[name] = value
}
