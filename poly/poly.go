package poly

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Polynomial is a polynomial with complex coefficients. Index i holds the
// coefficient of xⁱ, so the degree is len−1.
//
// A nil or empty Polynomial behaves like the zero polynomial. Arithmetic
// always allocates a new Polynomial; Clean, Normalize, Simplify and Divide
// modify the receiver in place.
type Polynomial []Complex

type number interface {
	constraints.Integer | constraints.Float
}

// New returns a polynomial with a copy of the given coefficients, constant
// term first.
func New(coeffs ...Complex) Polynomial {
	if len(coeffs) == 0 {
		return Polynomial{{}}
	}
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)
	return p
}

// FromReals returns a polynomial with real coefficients, constant term first.
func FromReals[T number](coeffs ...T) Polynomial {
	if len(coeffs) == 0 {
		return Polynomial{{}}
	}
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i] = Real(float64(c))
	}
	return p
}

// FromRoots returns the monic polynomial ∏(x − rᵢ).
func FromRoots(roots ...Complex) Polynomial {
	p := Polynomial{Real(1)}
	for _, r := range roots {
		p = p.Mul(Polynomial{r.Neg(), Real(1)})
	}
	return p
}

func (p Polynomial) coeff(i int) Complex {
	if i < len(p) {
		return p[i]
	}
	return Complex{}
}

// Degree returns len(p)−1. The degree of an uncleaned polynomial counts
// trailing zero coefficients.
func (p Polynomial) Degree() int {
	return max(len(p)-1, 0)
}

// Lead returns the highest-index coefficient.
func (p Polynomial) Lead() Complex {
	if len(p) == 0 {
		return Complex{}
	}
	return p[len(p)-1]
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Clone returns a copy of p.
func (p Polynomial) Clone() Polynomial {
	return New(p...)
}

func (p Polynomial) Add(o Polynomial) Polynomial {
	out := make(Polynomial, max(len(p), len(o), 1))
	for i := range out {
		out[i] = p.coeff(i).Add(o.coeff(i))
	}
	return out
}

func (p Polynomial) Sub(o Polynomial) Polynomial {
	out := make(Polynomial, max(len(p), len(o), 1))
	for i := range out {
		out[i] = p.coeff(i).Sub(o.coeff(i))
	}
	return out
}

// Neg returns −p.
func (p Polynomial) Neg() Polynomial {
	return p.MulScalar(Real(-1))
}

// MulScalar multiplies every coefficient by c.
func (p Polynomial) MulScalar(c Complex) Polynomial {
	if len(p) == 0 {
		return Polynomial{{}}
	}
	out := make(Polynomial, len(p))
	for i, a := range p {
		out[i] = a.Mul(c)
	}
	return out
}

// Mul returns the product of p and o, computed by convolution.
func (p Polynomial) Mul(o Polynomial) Polynomial {
	if len(p) == 0 || len(o) == 0 {
		return Polynomial{{}}
	}
	out := make(Polynomial, len(p)+len(o)-1)
	for i, a := range p {
		for j, b := range o {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return out
}

// Pow returns pⁿ by repeated multiplication. It panics if n is negative.
func (p Polynomial) Pow(n int) Polynomial {
	if n < 0 {
		panic(fmt.Sprintf("poly: negative exponent %d", n))
	}
	out := Polynomial{Real(1)}
	for range n {
		out = out.Mul(p)
	}
	return out
}

// DivMod divides p by d using long division and returns the quotient and
// remainder. It panics if d is the zero polynomial.
func (p Polynomial) DivMod(d Polynomial) (quo, rem Polynomial) {
	d = d.Clone()
	d.Clean()
	if d.IsZero() {
		panic("poly: division by zero polynomial")
	}
	rem = p.Clone()
	rem.Clean()
	if len(rem) < len(d) {
		return Polynomial{{}}, rem
	}
	quo = make(Polynomial, len(rem)-len(d)+1)
	lead := d.Lead()
	for k := len(quo) - 1; k >= 0; k-- {
		q := rem[k+len(d)-1].Div(lead)
		quo[k] = q
		for j, c := range d {
			rem[k+j] = rem[k+j].Sub(q.Mul(c))
		}
	}
	rem = rem[:len(d)-1]
	if len(rem) == 0 {
		rem = Polynomial{{}}
	}
	rem.Clean()
	return quo, rem
}

// Eval evaluates p at z using Horner's scheme.
func (p Polynomial) Eval(z Complex) Complex {
	var acc Complex
	for k := len(p) - 1; k >= 0; k-- {
		acc = acc.Mul(z).Add(p[k])
	}
	return acc
}

// Evaluate is an alias for Eval.
func (p Polynomial) Evaluate(z Complex) Complex {
	return p.Eval(z)
}

// EvalReal evaluates the real parts of p's coefficients at x using Horner's
// scheme. It is meant for polynomials with real coefficients.
func (p Polynomial) EvalReal(x float64) float64 {
	var acc float64
	for k := len(p) - 1; k >= 0; k-- {
		acc = acc*x + p[k].Re
	}
	return acc
}

// Differentiate returns the derivative of p.
func (p Polynomial) Differentiate() Polynomial {
	if len(p) <= 1 {
		return Polynomial{{}}
	}
	out := make(Polynomial, len(p)-1)
	for i := range out {
		out[i] = p[i+1].Scale(float64(i + 1))
	}
	return out
}

// Integrate returns the antiderivative of p whose constant term is c.
func (p Polynomial) Integrate(c Complex) Polynomial {
	out := make(Polynomial, len(p)+1)
	out[0] = c
	for i := 1; i < len(out); i++ {
		a := p[i-1]
		out[i] = Complex{Re: a.Re / float64(i), Im: a.Im / float64(i)}
	}
	return out
}

// Integral returns the definite integral of p from a to b.
func (p Polynomial) Integral(a, b Complex) Complex {
	f := p.Integrate(Complex{})
	return f.Eval(b).Sub(f.Eval(a))
}

// Clean strips trailing zero coefficients, keeping at least the constant term.
func (p *Polynomial) Clean() {
	q := *p
	n := len(q)
	for n > 1 && q[n-1].IsZero() {
		n--
	}
	if n == 0 {
		*p = Polynomial{{}}
		return
	}
	*p = q[:n]
}

// Normalize cleans p and divides it by its leading coefficient, making p
// monic. The zero polynomial is left unchanged.
func (p *Polynomial) Normalize() {
	p.Clean()
	lead := p.Lead()
	if lead.IsZero() {
		return
	}
	q := *p
	for i := range q[:len(q)-1] {
		q[i] = q[i].Div(lead)
	}
	q[len(q)-1] = Real(1)
}

// Simplify zeroes every real or imaginary part whose magnitude is below eps
// and then cleans p.
func (p *Polynomial) Simplify(eps float64) {
	q := *p
	for i, c := range q {
		if math.Abs(c.Re) < eps {
			c.Re = 0
		}
		if math.Abs(c.Im) < eps {
			c.Im = 0
		}
		q[i] = c
	}
	p.Clean()
}

// Divide divides every coefficient of p by c.
func (p *Polynomial) Divide(c Complex) {
	q := *p
	for i := range q {
		q[i] = q[i].Div(c)
	}
}

// Equal reports whether p and o have identical coefficients, ignoring
// trailing zeros.
func (p Polynomial) Equal(o Polynomial) bool {
	for i := range max(len(p), len(o)) {
		if !p.coeff(i).Equal(o.coeff(i)) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether all coefficients of p and o differ by at most
// eps in each component, ignoring trailing zeros.
func (p Polynomial) ApproxEqual(o Polynomial, eps float64) bool {
	for i := range max(len(p), len(o)) {
		if !p.coeff(i).ApproxEqual(o.coeff(i), eps) {
			return false
		}
	}
	return true
}

// String formats p from the highest power down, for example
// "x^2 + (-3)x + 2". Negative and complex coefficients are parenthesized.
func (p Polynomial) String() string {
	var sb strings.Builder
	for k := len(p) - 1; k >= 0; k-- {
		c := p[k]
		if c.IsZero() && !(k == 0 && sb.Len() == 0) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		switch {
		case c.Im != 0:
			sb.WriteString(c.String())
		case c.Re == 1 && k > 0:
		case c.Re < 0:
			fmt.Fprintf(&sb, "(%g)", c.Re)
		default:
			fmt.Fprintf(&sb, "%g", c.Re)
		}
		switch k {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			fmt.Fprintf(&sb, "x^%d", k)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// roundTo rounds v to the given number of decimal digits.
func roundTo[T constraints.Float](v T, digits int) T {
	scale := math.Pow10(digits)
	return T(math.Round(float64(v)*scale) / scale)
}
