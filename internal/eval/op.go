package eval

import (
	"fmt"
	"strings"

	"github.com/xraph/measure/si"
)

// Op is an arithmetic operator.
type Op string

// Supported operators.
const (
	Add Op = "+"
	Sub Op = "-"
	Mul Op = "*"
	Div Op = "/"
)

// ParseOp accepts + - * / and the spellings x, × and ÷.
func ParseOp(s string) (Op, error) {
	switch strings.TrimSpace(s) {
	case "+":
		return Add, nil
	case "-":
		return Sub, nil
	case "*", "x", "X", "×":
		return Mul, nil
	case "/", "÷":
		return Div, nil
	}
	return "", fmt.Errorf("eval: %w: operator %q", si.ErrUnsupportedOperation, s)
}

// Signature names one supported operation by operand dimensions.
type Signature struct {
	LHS si.Dimension `json:"lhs"    yaml:"lhs"`
	Op  Op           `json:"op"     yaml:"op"`
	RHS si.Dimension `json:"rhs"    yaml:"rhs"`
	Out si.Dimension `json:"result" yaml:"result"`
}

func (s Signature) String() string {
	return fmt.Sprintf("%s %s %s = %s", s.LHS, s.Op, s.RHS, s.Out)
}

type operator func(a, b Quantity) (Quantity, bool)

type key struct {
	lhs si.Dimension
	op  Op
	rhs si.Dimension
}

type entry struct {
	sig Signature
	fn  operator
}

// binary lifts a typed two-operand function into an operator.
func binary[A si.Unit[A], B si.Unit[B], R si.Unit[R]](
	op Op, f func(si.Quantity[A], si.Quantity[B]) si.Quantity[R],
) entry {
	var a A
	var b B
	var r R
	return entry{
		sig: Signature{LHS: a.Dimension(), Op: op, RHS: b.Dimension(), Out: r.Dimension()},
		fn: func(x, y Quantity) (Quantity, bool) {
			lhs, ok := x.(si.Quantity[A])
			if !ok {
				return nil, false
			}
			rhs, ok := y.(si.Quantity[B])
			if !ok {
				return nil, false
			}
			return f(lhs, rhs), true
		},
	}
}

func additive[U si.Unit[U]]() []entry {
	return []entry{
		binary(Add, si.Quantity[U].Add),
		binary(Sub, si.Quantity[U].Sub),
	}
}

var table = func() []entry {
	var entries []entry
	entries = append(entries, additive[si.LengthUnit]()...)
	entries = append(entries, additive[si.AreaUnit]()...)
	entries = append(entries, additive[si.VolumeUnit]()...)
	entries = append(entries, additive[si.MassUnit]()...)
	entries = append(entries, additive[si.TimeUnit]()...)
	entries = append(entries, additive[si.VelocityUnit]()...)

	return append(entries,
		binary(Mul, si.MulLengthLength),
		binary(Mul, si.MulLengthArea),
		binary(Mul, si.MulAreaLength),
		binary(Div, si.DivAreaLength),
		binary(Div, si.DivVolumeLength),
		binary(Div, si.DivVolumeArea),
		binary(Div, si.DivLengthTime),
		binary(Div, si.DivLengthVelocity),
		binary(Mul, si.MulVelocityTime),
	)
}()

var operators = func() map[key]operator {
	m := make(map[key]operator, len(table))
	for _, e := range table {
		m[key{e.sig.LHS, e.sig.Op, e.sig.RHS}] = e.fn
	}
	return m
}()

// Apply evaluates lhs op rhs. Addition and subtraction need operands of one
// dimension; multiplication and division are limited to the fixed set of
// Signatures. Any other pairing is rejected with
// si.ErrUnsupportedOperation. Results are in the base unit of their
// dimension.
func Apply(lhs Quantity, op Op, rhs Quantity) (Quantity, error) {
	if fn, ok := operators[key{lhs.Dimension(), op, rhs.Dimension()}]; ok {
		if out, ok := fn(lhs, rhs); ok {
			return out, nil
		}
	}
	return nil, fmt.Errorf("eval: %w: %s %s %s", si.ErrUnsupportedOperation, lhs.Dimension(), op, rhs.Dimension())
}

// Signatures lists every operation Apply accepts.
func Signatures() []Signature {
	out := make([]Signature, len(table))
	for i, e := range table {
		out[i] = e.sig
	}
	return out
}
