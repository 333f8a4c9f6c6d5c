package runtime

import "github.com/cwbudde/jlox/pkg/token"

// Instance is a runtime object created from a Class: an identity plus a
// bag of fields, which shadow methods of the same name.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

// Get resolves a property access: fields take priority over methods, and
// a matched method is bound to this instance before it's returned so a
// later call sees the right `this`.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, UndefinedPropertyError(name)
}

// Set assigns a field, creating it if it doesn't already exist — Lox
// instances are open bags of fields, not fixed-layout records.
func (i *Instance) Set(name token.Token, value Value) {
	i.Fields[name.Lexeme] = value
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
