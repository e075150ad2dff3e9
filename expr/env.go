package expr

import "fmt"

// Environment binds variable names to values during evaluation. Each
// function body evaluates in a fresh environment holding only its
// parameters and temporaries.
type Environment struct {
	bindings map[string]Value
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Value)}
}

// Bind associates a variable with a value, replacing any previous
// binding.
func (e *Environment) Bind(v *Variable, val Value) {
	e.bindings[v.Name] = val
}

// Lookup returns the value bound to a variable. Looking up an unbound
// variable is a programming error.
func (e *Environment) Lookup(v *Variable) Value {
	val, ok := e.bindings[v.Name]
	if !ok {
		panic(fmt.Sprintf("unbound variable %q", v.Name))
	}
	return val
}
