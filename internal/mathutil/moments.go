package mathutil

import (
	"math/big"
)

// PowerTrigMoments computes the symmetric-window trigonometric moments
//
//	C_m(a) = ∫_{-W}^{W} t^m cos(a·t) dt
//	S_m(a) = ∫_{-W}^{W} t^m sin(a·t) dt
//
// in closed form at the requested precision.
//
// For a ≠ 0 the moments follow from integration by parts:
//
//	C_0 = 2·sin(aW)/a,                          S_0 = 0
//	C_j = 2·W^j·sin(aW)/a·[j even] − (j/a)·S_{j−1}
//	S_j = −2·W^j·cos(aW)/a·[j odd] + (j/a)·C_{j−1}
//
// For a = 0 only the even moments survive: C_m = 2·W^(m+1)/(m+1).
//
// The upward recurrence loses bits when |a|·W is small relative to m;
// those are added to the working precision before the final rounding.
func PowerTrigMoments(m int, a, halfWidth *big.Float, prec uint) (c, s *big.Float) {
	if a.Sign() == 0 {
		c = newFloat(prec)
		s = newFloat(prec)
		if m%2 == 0 {
			p := prec + guardBits
			c.Set(zeroFrequencyMoment(m, halfWidth, p))
		}
		return c, s
	}

	aw := newFloat(prec).Mul(a, halfWidth)
	awf, _ := aw.Float64()
	if awf < 0 {
		awf = -awf
	}
	p := prec + guardBits + recurrenceGuardBits(m, awf)

	aw.SetPrec(p).Mul(a, halfWidth)
	sinAW, cosAW := SinCos(aw, p)

	invA := newFloat(p).Quo(newFloat(p).SetInt64(1), a)
	two := newFloat(p).SetInt64(twoFactor)

	// Boundary factors 2·sin(aW)/a and 2·cos(aW)/a.
	sinBoundary := newFloat(p).Mul(two, sinAW)
	sinBoundary.Mul(sinBoundary, invA)
	cosBoundary := newFloat(p).Mul(two, cosAW)
	cosBoundary.Mul(cosBoundary, invA)

	cPrev := newFloat(p).Set(sinBoundary)
	sPrev := newFloat(p)
	wPow := newFloat(p).SetInt64(1)

	jOverA := newFloat(p)
	boundary := newFloat(p)

	for j := 1; j <= m; j++ {
		wPow.Mul(wPow, halfWidth)
		jOverA.Mul(newFloat(p).SetInt64(int64(j)), invA)

		cNext := newFloat(p).Mul(jOverA, sPrev)
		cNext.Neg(cNext)
		sNext := newFloat(p).Mul(jOverA, cPrev)

		if j%2 == 0 {
			boundary.Mul(wPow, sinBoundary)
			cNext.Add(cNext, boundary)
		} else {
			boundary.Mul(wPow, cosBoundary)
			sNext.Sub(sNext, boundary)
		}
		cPrev, sPrev = cNext, sNext
	}

	return newFloat(prec).Set(cPrev), newFloat(prec).Set(sPrev)
}

// zeroFrequencyMoment returns 2·W^(m+1)/(m+1).
func zeroFrequencyMoment(m int, halfWidth *big.Float, prec uint) *big.Float {
	result := IntPow(halfWidth, m+1, prec)
	result.Mul(result, newFloat(prec).SetInt64(twoFactor))
	return result.Quo(result, newFloat(prec).SetInt64(int64(m+1)))
}
