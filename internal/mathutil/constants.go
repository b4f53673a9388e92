package mathutil

// Arbitrary-precision evaluation constants
const (
	// Extra mantissa bits carried through intermediate results so that the
	// final rounding to the requested precision is correct.
	guardBits = 64

	// Minimum working precision in bits (float64 mantissa).
	MinPrecision = 53

	// Default precision in bits for closed-form evaluation (~77 decimal digits).
	DefaultPrecision = 256
)

// Machin's formula: π = 16·atan(1/5) − 4·atan(1/239)
const (
	machinSmallInverse = 5
	machinLargeInverse = 239
	machinSmallFactor  = 16
	machinLargeFactor  = 4
)

// Common numeric constants
const (
	halfDivisor = 2.0 // Division by 2
	twoFactor   = 2   // Boundary terms of symmetric integrals carry a factor 2
)
