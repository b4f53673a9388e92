// Package mathutil provides arbitrary-precision kernels for the power-function transform.
package mathutil

import (
	"math"
	"math/big"
)

// newFloat returns a zero *big.Float with the given precision.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// NewFloat converts x to a *big.Float with the given precision.
func NewFloat(x float64, prec uint) *big.Float {
	return newFloat(prec).SetFloat64(x)
}

// belowEpsilon reports whether |x| < 2^-prec. Zero counts as below.
func belowEpsilon(x *big.Float, prec uint) bool {
	if x.Sign() == 0 {
		return true
	}
	return x.MantExp(nil) < -int(prec)
}

// atanInverse computes atan(1/x) by its Taylor series:
//
//	atan(1/x) = Σ (-1)^k / ((2k+1)·x^(2k+1))
//
// The series converges quickly for the Machin arguments (x = 5, 239).
func atanInverse(x int64, prec uint) *big.Float {
	xf := newFloat(prec).SetInt64(x)
	x2 := newFloat(prec).Mul(xf, xf)

	power := newFloat(prec).Quo(newFloat(prec).SetInt64(1), xf)
	sum := newFloat(prec).Set(power)
	term := newFloat(prec)
	divisor := newFloat(prec)

	for k := int64(1); ; k++ {
		power.Quo(power, x2)
		divisor.SetInt64(2*k + 1)
		term.Quo(power, divisor)
		if belowEpsilon(term, prec) {
			break
		}
		if k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
	return sum
}

// Pi returns π rounded to prec bits using Machin's formula.
func Pi(prec uint) *big.Float {
	p := prec + guardBits

	a := atanInverse(machinSmallInverse, p)
	a.Mul(a, newFloat(p).SetInt64(machinSmallFactor))

	b := atanInverse(machinLargeInverse, p)
	b.Mul(b, newFloat(p).SetInt64(machinLargeFactor))

	return newFloat(prec).Sub(a, b)
}

// SinCos returns sin(x) and cos(x) rounded to prec bits.
//
// The argument is reduced modulo 2π with enough extra bits to cover the
// integer part of x/2π, then both series are summed on the reduced value:
//
//	sin r = Σ (-1)^k r^(2k+1)/(2k+1)!
//	cos r = Σ (-1)^k r^(2k)/(2k)!
func SinCos(x *big.Float, prec uint) (sin, cos *big.Float) {
	p := prec + guardBits
	if exp := x.MantExp(nil); exp > 0 {
		p += uint(exp)
	}

	negative := x.Sign() < 0
	r := newFloat(p).Abs(x)

	// r -= round(r/2π)·2π, leaving r in [-π, π].
	twoPi := Pi(p)
	twoPi.Mul(twoPi, newFloat(p).SetInt64(twoFactor))
	q := newFloat(p).Quo(r, twoPi)
	q.Add(q, newFloat(p).SetFloat64(1/halfDivisor))
	turns, _ := q.Int(nil)
	r.Sub(r, newFloat(p).Mul(newFloat(p).SetInt(turns), twoPi))

	r2 := newFloat(p).Mul(r, r)
	s := newFloat(p).Set(r)
	c := newFloat(p).SetInt64(1)

	sinTerm := newFloat(p).Set(r)
	cosTerm := newFloat(p).SetInt64(1)
	denom := newFloat(p)

	for j := int64(1); ; j++ {
		// cos term j: multiply previous by -r²/((2j-1)(2j))
		denom.SetInt64((2*j - 1) * (2 * j))
		cosTerm.Mul(cosTerm, r2)
		cosTerm.Quo(cosTerm, denom)
		cosTerm.Neg(cosTerm)
		c.Add(c, cosTerm)

		// sin term j: multiply previous by -r²/((2j)(2j+1))
		denom.SetInt64((2 * j) * (2*j + 1))
		sinTerm.Mul(sinTerm, r2)
		sinTerm.Quo(sinTerm, denom)
		sinTerm.Neg(sinTerm)
		s.Add(s, sinTerm)

		if belowEpsilon(cosTerm, p) && belowEpsilon(sinTerm, p) {
			break
		}
	}

	if negative {
		s.Neg(s)
	}
	return newFloat(prec).Set(s), newFloat(prec).Set(c)
}

// IntPow returns x^n for n >= 0 at precision prec.
func IntPow(x *big.Float, n int, prec uint) *big.Float {
	result := newFloat(prec).SetInt64(1)
	base := newFloat(prec).Set(x)
	for e := n; e > 0; e >>= 1 {
		if e&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
	}
	return result
}

// recurrenceGuardBits estimates the bits lost by the upward moment
// recurrence when |a|·W is small compared with the exponent m: every step
// divides by a, so roughly (m+1)·log2(m/(|a|·W)) bits cancel.
func recurrenceGuardBits(m int, aw float64) uint {
	if m == 0 || aw == 0 || aw >= float64(m) {
		return 0
	}
	lost := float64(m+1) * math.Log2(float64(m)/aw)
	if math.IsInf(lost, 0) || math.IsNaN(lost) {
		return 0
	}
	return uint(math.Ceil(lost))
}
