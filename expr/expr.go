package expr

// Expr is a node in an expression tree. Trees are immutable once built;
// sharing subtrees between programs is safe.
type Expr interface {
	exprNode()
}

// Variable references a named binding in the environment.
type Variable struct {
	Name string
	Type Type
}

func (*Variable) exprNode() {}

// NewVariable returns a variable expression with the given name and
// type.
func NewVariable(name string, t Type) *Variable {
	return &Variable{Name: name, Type: t}
}

// Constant is a literal interval value.
type Constant struct {
	Val Value
}

func (*Constant) exprNode() {}

// Apply applies a function model to argument expressions.
type Apply struct {
	Fn   Func
	Args []Expr
}

func (*Apply) exprNode() {}

// ApplyScalar applies a scalar function model componentwise across
// vector or matrix arguments. Scalar arguments broadcast to every
// component.
type ApplyScalar struct {
	Fn   Func
	Args []Expr
}

func (*ApplyScalar) exprNode() {}

// VectorComponent extracts one component of a vector expression.
type VectorComponent struct {
	Base  Expr
	Index int
}

func (*VectorComponent) exprNode() {}

// MatrixComponent extracts one element of a matrix expression.
type MatrixComponent struct {
	Base Expr
	Row  int
	Col  int
}

func (*MatrixComponent) exprNode() {}

// Statement is one step of a straight-line program.
type Statement interface {
	stmtNode()
}

// VariableStatement introduces a variable with an initializer.
type VariableStatement struct {
	Var  *Variable
	Init Expr
}

func (*VariableStatement) stmtNode() {}
