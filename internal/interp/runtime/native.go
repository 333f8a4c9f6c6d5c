package runtime

// Native wraps a Go function as a zero-overhead Lox builtin, registered
// directly into the root environment — Lox only needs a handful, so they
// live here rather than in their own package.
type Native struct {
	Fn       func(args []Value) (Value, error)
	NameHint string
	Arg      int
}

func (n *Native) Arity() int { return n.Arg }

func (n *Native) Call(_ Interpreter, args []Value) (Value, error) {
	return n.Fn(args)
}

func (n *Native) String() string { return "<native fn>" }
