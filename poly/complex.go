package poly

import (
	"fmt"
	"math"
)

// Complex is a complex number with float64 components.
//
// The zero value is 0+0i. Complex values are immutable; every operation
// returns a new value.
type Complex struct {
	Re float64
	Im float64
}

// C returns the complex number re + im·i.
func C(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns the complex number x + 0i.
func Real(x float64) Complex {
	return Complex{Re: x}
}

func (z Complex) String() string {
	if z.Im < 0 || (z.Im == 0 && math.Signbit(z.Im)) {
		return fmt.Sprintf("(%g-%gi)", z.Re, -z.Im)
	}
	return fmt.Sprintf("(%g+%gi)", z.Re, z.Im)
}

func (z Complex) Add(o Complex) Complex {
	return Complex{Re: z.Re + o.Re, Im: z.Im + o.Im}
}

func (z Complex) Sub(o Complex) Complex {
	return Complex{Re: z.Re - o.Re, Im: z.Im - o.Im}
}

func (z Complex) Mul(o Complex) Complex {
	return Complex{
		Re: z.Re*o.Re - z.Im*o.Im,
		Im: z.Re*o.Im + z.Im*o.Re,
	}
}

// Div computes z / o as z·conj(o) / |o|².
//
// Dividing by zero produces non-finite components.
func (z Complex) Div(o Complex) Complex {
	d := o.Re*o.Re + o.Im*o.Im
	n := z.Mul(o.Conj())
	return Complex{Re: n.Re / d, Im: n.Im / d}
}

// Scale multiplies both components by f.
func (z Complex) Scale(f float64) Complex {
	return Complex{Re: z.Re * f, Im: z.Im * f}
}

// Neg returns −z.
func (z Complex) Neg() Complex {
	return Complex{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// Abs returns the magnitude √(re² + im²).
func (z Complex) Abs() float64 {
	return math.Sqrt(z.Re*z.Re + z.Im*z.Im)
}

// Arg returns the argument of z in (−π, π].
func (z Complex) Arg() float64 {
	switch {
	case z.Re > 0:
		return math.Atan(z.Im / z.Re)
	case z.Re < 0:
		if z.Im < 0 {
			return math.Atan(z.Im/z.Re) - math.Pi
		}
		return math.Atan(z.Im/z.Re) + math.Pi
	case z.Im > 0:
		return math.Pi / 2
	case z.Im < 0:
		return -math.Pi / 2
	default:
		return 0
	}
}

// IsZero reports whether both components are zero.
func (z Complex) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// Equal reports whether z and o are componentwise identical.
func (z Complex) Equal(o Complex) bool {
	return z.Re == o.Re && z.Im == o.Im
}

// ApproxEqual reports whether both components of z and o differ by at most
// eps.
func (z Complex) ApproxEqual(o Complex, eps float64) bool {
	return math.Abs(z.Re-o.Re) <= eps && math.Abs(z.Im-o.Im) <= eps
}

func (z Complex) IsNaN() bool {
	return math.IsNaN(z.Re) || math.IsNaN(z.Im)
}

func (z Complex) IsInf() bool {
	return math.IsInf(z.Re, 0) || math.IsInf(z.Im, 0)
}

// Exp returns e^z = e^re·(cos im + i·sin im).
func Exp(z Complex) Complex {
	m := math.Exp(z.Re)
	s, c := math.Sincos(z.Im)
	return Complex{Re: m * c, Im: m * s}
}

// Log returns the principal natural logarithm (ln|z|, Arg z).
func Log(z Complex) Complex {
	return Complex{Re: math.Log(z.Abs()), Im: z.Arg()}
}

// Pow returns a^b = Exp(b·Log(a)).
//
// 0^0 is 1 and 0^b is 0 for any other b.
func Pow(a, b Complex) Complex {
	if a.IsZero() {
		if b.IsZero() {
			return Real(1)
		}
		return Complex{}
	}
	return Exp(b.Mul(Log(a)))
}

var (
	unitI = Complex{Im: 1}
	twoI  = Complex{Im: 2}
)

// Sin returns (e^{iz} − e^{−iz}) / 2i.
func Sin(z Complex) Complex {
	iz := unitI.Mul(z)
	return Exp(iz).Sub(Exp(iz.Neg())).Div(twoI)
}

// Cos returns (e^{iz} + e^{−iz}) / 2.
func Cos(z Complex) Complex {
	iz := unitI.Mul(z)
	return Exp(iz).Add(Exp(iz.Neg())).Scale(0.5)
}

func Tan(z Complex) Complex {
	return Sin(z).Div(Cos(z))
}

// Sinh returns (e^z − e^{−z}) / 2.
func Sinh(z Complex) Complex {
	return Exp(z).Sub(Exp(z.Neg())).Scale(0.5)
}

// Cosh returns (e^z + e^{−z}) / 2.
func Cosh(z Complex) Complex {
	return Exp(z).Add(Exp(z.Neg())).Scale(0.5)
}

func Tanh(z Complex) Complex {
	return Sinh(z).Div(Cosh(z))
}
