package pipeline

// Pipeline construction constants
const (
	// Number of stages in the reference figure pipeline
	defaultStageCapacity = 5

	// Directory permissions for the figure output directory
	outputDirPerm = 0o755
)

// Figure file base names, one per stage type
const (
	nameRealGrid         = "real_grid"
	nameAmplitudeGrid    = "amplitude_grid"
	nameRealOverlay      = "real_overlay"
	nameAmplitudeOverlay = "amplitude_overlay"
	nameBaseFunction     = "base_function"
)
