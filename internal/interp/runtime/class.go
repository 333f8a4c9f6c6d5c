package runtime

// Class is a Lox class: a name, an optional superclass link, and the
// methods declared directly on it. Lox has single inheritance, so method
// lookup walks exactly one chain.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod looks up name on the class itself, then its superclass
// chain, returning (nil, false) if no class in the chain declares it.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

func (c *Class) String() string { return c.Name }

// Arity is the arity of the class's init method, or 0 if it has none —
// instantiating a class with no initializer takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: a class is itself callable, producing a
// fresh Instance and, if an init method exists, immediately invoking it
// bound to that instance.
func (c *Class) Call(interp Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
