package expr

import (
	"fmt"
	"math"
)

// Func evaluates a bound expression at one value of its parameter.
type Func func(float64) (float64, error)

type evalFn func(x float64) (float64, error)

var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
	"phi": math.Phi,
}

// Bind compiles the expression into a Func of the named parameter. Every identifier must be the
// parameter or a known constant, and every call must name a builtin with a valid argument count.
func (e *Expr) Bind(param string) (Func, error) {
	fn, err := compile(e.root, param)
	if err != nil {
		return nil, err
	}
	return Func(fn), nil
}

// Eval binds the expression to "x" and evaluates it once.
func (e *Expr) Eval(x float64) (float64, error) {
	f, err := e.Bind("x")
	if err != nil {
		return 0, err
	}
	return f(x)
}

func compile(n node, param string) (evalFn, error) {
	switch n := n.(type) {
	case nodeNumber:
		v := n.v
		return func(float64) (float64, error) { return v, nil }, nil

	case nodeIdent:
		if n.name == param {
			return func(x float64) (float64, error) { return x, nil }, nil
		}
		if v, ok := constants[n.name]; ok {
			return func(float64) (float64, error) { return v, nil }, nil
		}
		if _, ok := builtins[n.name]; ok {
			return nil, fmt.Errorf("%w: %s is a function", ErrBind, n.name)
		}
		return nil, fmt.Errorf("%w: unknown identifier %q", ErrBind, n.name)

	case nodeUnary:
		x, err := compile(n.x, param)
		if err != nil {
			return nil, err
		}
		if n.op == '+' {
			return x, nil
		}
		return func(v float64) (float64, error) {
			a, err := x(v)
			return -a, err
		}, nil

	case nodeBinary:
		left, err := compile(n.left, param)
		if err != nil {
			return nil, err
		}
		right, err := compile(n.right, param)
		if err != nil {
			return nil, err
		}
		op, ok := binaryOps[n.op]
		if !ok {
			return nil, fmt.Errorf("%w: unknown operator %q", ErrBind, n.op)
		}
		return func(v float64) (float64, error) {
			a, err := left(v)
			if err != nil {
				return 0, err
			}
			b, err := right(v)
			if err != nil {
				return 0, err
			}
			return op(a, b)
		}, nil

	case nodeCall:
		spec, ok := builtins[n.name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown function %q", ErrBind, n.name)
		}
		if err := spec.checkArity(n.name, len(n.args)); err != nil {
			return nil, err
		}
		args := make([]evalFn, len(n.args))
		for i, a := range n.args {
			fn, err := compile(a, param)
			if err != nil {
				return nil, err
			}
			args[i] = fn
		}
		return func(v float64) (float64, error) {
			vals := make([]float64, len(args))
			for i, a := range args {
				x, err := a(v)
				if err != nil {
					return 0, err
				}
				vals[i] = x
			}
			return spec.fn(vals)
		}, nil
	}
	return nil, fmt.Errorf("%w: unsupported node %T", ErrBind, n)
}

var binaryOps = map[byte]func(a, b float64) (float64, error){
	'+': func(a, b float64) (float64, error) { return a + b, nil },
	'-': func(a, b float64) (float64, error) { return a - b, nil },
	'*': func(a, b float64) (float64, error) { return a * b, nil },
	'/': func(a, b float64) (float64, error) { return a / b, nil },
	'%': mod,
	'^': func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
}

func mod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: mod by zero", ErrEval)
	}
	return math.Mod(a, b), nil
}
