// Package pipeline implements the figure pipeline of the transform experiment.
// Each stage performs its own sweep over the configured periods and
// harmonics and renders one figure.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-power-spectrum/internal/config"
	"github.com/tphakala/go-power-spectrum/internal/plotting"
	"github.com/tphakala/go-power-spectrum/internal/transform"
)

// ErrUnknownStage is returned for stage names that do not map to a figure.
var ErrUnknownStage = errors.New("unknown pipeline stage")

// StageType identifies the figure produced by a stage.
type StageType int

const (
	// StageRealGrid renders Re(F(w_k)) as a stem grid, one panel per period.
	StageRealGrid StageType = iota

	// StageAmplitudeGrid renders |F(w_k)| as a stem grid.
	StageAmplitudeGrid

	// StageRealOverlay renders Re(F(w_k)) for all periods on shared axes.
	StageRealOverlay

	// StageAmplitudeOverlay renders |F(w_k)| for all periods on shared axes.
	StageAmplitudeOverlay

	// StageBaseFunction renders t^(2n) on the base sample grid.
	StageBaseFunction
)

var stageNames = map[StageType]string{
	StageRealGrid:         nameRealGrid,
	StageAmplitudeGrid:    nameAmplitudeGrid,
	StageRealOverlay:      nameRealOverlay,
	StageAmplitudeOverlay: nameAmplitudeOverlay,
	StageBaseFunction:     nameBaseFunction,
}

// String returns the stage name, which is also the figure file base name.
func (s StageType) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// ParseStage maps a stage name back to its type.
func ParseStage(name string) (StageType, error) {
	for t, n := range stageNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStage, name)
}

// DefaultStages returns the stages of the reference experiment, in order.
func DefaultStages() []StageType {
	stages := make([]StageType, 0, defaultStageCapacity)
	return append(stages,
		StageRealGrid,
		StageAmplitudeGrid,
		StageRealOverlay,
		StageAmplitudeOverlay,
		StageBaseFunction,
	)
}

// Pipeline runs figure stages sequentially against one evaluator.
type Pipeline struct {
	cfg    *config.Config
	eval   transform.Evaluator
	logger logrus.FieldLogger
	stages []StageType
}

// BuildPipeline constructs a pipeline for the given configuration.
// With no stages, the default stages are used.
func BuildPipeline(cfg *config.Config, eval transform.Evaluator, logger logrus.FieldLogger, stages ...StageType) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if eval == nil {
		return nil, fmt.Errorf("%w: nil evaluator", config.ErrInvalidConfig)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	for _, s := range stages {
		if _, ok := stageNames[s]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownStage, s)
		}
	}

	return &Pipeline{
		cfg:    cfg,
		eval:   eval,
		logger: logger,
		stages: append([]StageType(nil), stages...),
	}, nil
}

// GetStages returns the pipeline stages in execution order.
func (p *Pipeline) GetStages() []StageType {
	return p.stages
}

// Run executes every stage and returns the paths of the written figures.
// The first failing stage stops the pipeline.
func (p *Pipeline) Run() ([]string, error) {
	if err := os.MkdirAll(p.cfg.OutputDir, outputDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(p.stages))
	for _, stage := range p.stages {
		start := time.Now()
		log := p.logger.WithField("figure", stage.String())
		log.Info("Rendering figure")

		fig, err := p.buildFigure(stage)
		if err != nil {
			return paths, fmt.Errorf("stage %s: %w", stage, err)
		}

		path := p.figurePath(stage)
		if err := fig.Save(path); err != nil {
			return paths, fmt.Errorf("stage %s: %w", stage, err)
		}

		log.WithFields(logrus.Fields{
			"path":    path,
			"elapsed": time.Since(start).Round(time.Millisecond),
		}).Info("Figure written")
		paths = append(paths, path)
	}
	return paths, nil
}

// Sweep evaluates F over the configured periods and harmonics.
func (p *Pipeline) Sweep() ([]transform.Series, error) {
	return transform.Sweep(p.eval, p.cfg.Periods, p.cfg.Harmonics(), p.logger)
}

func (p *Pipeline) figurePath(stage StageType) string {
	return filepath.Join(p.cfg.OutputDir, stage.String()+"."+string(p.cfg.Format))
}

func (p *Pipeline) buildFigure(stage StageType) (plotting.Figure, error) {
	if stage == StageBaseFunction {
		return plotting.BaseFunction(p.cfg.Degree, p.cfg.BaseGrid())
	}

	series, err := p.Sweep()
	if err != nil {
		return nil, err
	}

	switch stage {
	case StageRealGrid:
		return plotting.StemGrid(series, plotting.RealPart)
	case StageAmplitudeGrid:
		return plotting.StemGrid(series, plotting.AmplitudeSpectrum)
	case StageRealOverlay:
		return plotting.Overlay(series, plotting.RealPart)
	case StageAmplitudeOverlay:
		return plotting.Overlay(series, plotting.AmplitudeSpectrum)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStage, stage)
	}
}
