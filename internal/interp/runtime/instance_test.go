package runtime

import (
	"testing"

	"github.com/cwbudde/jlox/pkg/ast"
	"github.com/cwbudde/jlox/pkg/token"
)

func TestInstanceFieldTakesPriorityOverMethod(t *testing.T) {
	method := &Function{Declaration: &ast.Function{Name: token.New(token.IDENTIFIER, "name", nil, 1)}}
	class := &Class{Name: "Thing", Methods: map[string]*Function{"name": method}}
	instance := NewInstance(class)
	instance.Fields["name"] = "overridden"

	v, err := instance.Get(token.New(token.IDENTIFIER, "name", nil, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "overridden" {
		t.Fatalf("got %v, want field value to win over method", v)
	}
}

func TestInstanceMethodIsBound(t *testing.T) {
	method := &Function{
		Declaration: &ast.Function{Name: token.New(token.IDENTIFIER, "greet", nil, 1)},
		Closure:     NewEnvironment(),
	}
	class := &Class{Name: "Thing", Methods: map[string]*Function{"greet": method}}
	instance := NewInstance(class)

	v, err := instance.Get(token.New(token.IDENTIFIER, "greet", nil, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bound, ok := v.(*Function)
	if !ok {
		t.Fatalf("expected *Function, got %T", v)
	}
	this, _ := bound.Closure.Get(token.New(token.IDENTIFIER, "this", nil, 1))
	if this != instance {
		t.Fatal("bound method's closure should bind this to the instance")
	}
}

func TestInstanceGetUndefinedProperty(t *testing.T) {
	class := &Class{Name: "Thing", Methods: map[string]*Function{}}
	instance := NewInstance(class)

	if _, err := instance.Get(token.New(token.IDENTIFIER, "missing", nil, 1)); err == nil {
		t.Fatal("expected an error for an undefined property")
	}
}

func TestInstanceSetCreatesField(t *testing.T) {
	class := &Class{Name: "Thing", Methods: map[string]*Function{}}
	instance := NewInstance(class)

	instance.Set(token.New(token.IDENTIFIER, "color", nil, 1), "red")

	v, err := instance.Get(token.New(token.IDENTIFIER, "color", nil, 1))
	if err != nil || v != "red" {
		t.Fatalf("got (%v, %v), want (red, nil)", v, err)
	}
}

func TestInstanceString(t *testing.T) {
	class := &Class{Name: "Bagel", Methods: map[string]*Function{}}
	instance := NewInstance(class)
	if instance.String() != "Bagel instance" {
		t.Fatalf("got %q", instance.String())
	}
}
