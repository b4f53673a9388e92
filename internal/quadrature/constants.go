package quadrature

// Gauss-Legendre panel constants
const (
	// Nodes per panel. A 16-point rule integrates polynomials up to degree
	// 31 exactly, which covers t^(2n) for n <= 15 at zero frequency.
	DefaultOrder = 16

	// Panels per half period of the trigonometric factor.
	DefaultPanelsPerHalfPeriod = 1

	// Panels used when the trigonometric factor does not oscillate.
	DefaultMinPanels = 8

	// Upper bound on panels per integral. Rates that would need more are
	// rejected instead of being under-resolved.
	MaxPanels = 1 << 24

	// Smallest accepted rule order.
	minOrder = 2
)

// Reference interval for the precomputed rule.
const (
	referenceMin = -1.0
	referenceMax = 1.0

	halfDivisor = 2.0 // Division by 2
)
