package expr

// Func models a built-in function over interval values. An
// implementation must be sound: the value returned by Apply contains
// every result a conforming implementation may produce for any choice of
// concrete arguments within the argument values.
type Func interface {
	// Name returns the shading-language name of the function.
	Name() string

	// Arity returns the number of parameters.
	Arity() int

	// Apply computes a sound output value for the given arguments.
	Apply(ctx *EvalContext, args []Value) Value
}

// OutParamFunc is implemented by functions that write through one of
// their parameters in addition to returning a value. The evaluator
// requires the argument in that slot to be a variable and rebinds it
// with the out value after application.
type OutParamFunc interface {
	Func

	// OutParamIndex returns the parameter slot written through.
	OutParamIndex() int

	// ApplyOut computes the return value and the out-parameter value.
	ApplyOut(ctx *EvalContext, args []Value) (ret, out Value)
}

// CallPrinter is implemented by functions with bespoke call syntax, such
// as infix operators and the ternary selector.
type CallPrinter interface {
	// PrintCall renders an application given the rendered arguments.
	PrintCall(args []string) string
}

// Expander is implemented by functions whose semantics are defined by
// expansion into a body of further applications. Body gives access to
// the memoized expansion for printing and inspection.
type Expander interface {
	Func

	// Body returns the parameter variables, the statements and the
	// result expression of the expansion.
	Body() (params []*Variable, stmts []Statement, ret Expr)
}
