package expr

import (
	"fmt"
	"math"
	"sort"
)

type builtinSpec struct {
	minArgs int
	maxArgs int // -1 for variadic
	fn      func(args []float64) (float64, error)
}

func (s builtinSpec) checkArity(name string, n int) error {
	if n >= s.minArgs && (s.maxArgs < 0 || n <= s.maxArgs) {
		return nil
	}
	if s.maxArgs < 0 {
		return fmt.Errorf("%w: %s expects >= %d argument(s), got %d", ErrBind, name, s.minArgs, n)
	}
	return fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrBind, name, s.minArgs, n)
}

var unaryBuiltins = map[string]func(float64) float64{
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"exp":   math.Exp,
	"exp2":  math.Exp2,
	"ln":    math.Log,
	"log":   math.Log,
	"log2":  math.Log2,
	"log10": math.Log10,
	"abs":   math.Abs,

	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,

	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"asinh": math.Asinh,
	"acosh": math.Acosh,
	"atanh": math.Atanh,

	"floor":  math.Floor,
	"ceil":   math.Ceil,
	"round":  math.Round,
	"trunc":  math.Trunc,
	"sign":   sign,
	"signum": sign,
}

var builtins = func() map[string]builtinSpec {
	m := make(map[string]builtinSpec, len(unaryBuiltins)+6)
	for name, f := range unaryBuiltins {
		f := f
		m[name] = builtinSpec{minArgs: 1, maxArgs: 1, fn: func(a []float64) (float64, error) { return f(a[0]), nil }}
	}
	binary := func(f func(a, b float64) float64) builtinSpec {
		return builtinSpec{minArgs: 2, maxArgs: 2, fn: func(a []float64) (float64, error) { return f(a[0], a[1]), nil }}
	}
	m["atan2"] = binary(math.Atan2)
	m["pow"] = binary(math.Pow)
	m["hypot"] = binary(math.Hypot)
	m["mod"] = builtinSpec{minArgs: 2, maxArgs: 2, fn: func(a []float64) (float64, error) { return mod(a[0], a[1]) }}
	m["min"] = builtinSpec{minArgs: 1, maxArgs: -1, fn: fold(math.Min)}
	m["max"] = builtinSpec{minArgs: 1, maxArgs: -1, fn: fold(math.Max)}
	return m
}()

func fold(f func(a, b float64) float64) func([]float64) (float64, error) {
	return func(a []float64) (float64, error) {
		out := a[0]
		for _, v := range a[1:] {
			out = f(out, v)
		}
		return out, nil
	}
}

func sign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Names returns the sorted builtin function and constant names.
func Names() []string {
	out := make([]string, 0, len(builtins)+len(constants))
	for name := range builtins {
		out = append(out, name)
	}
	for name := range constants {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
