package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pipesmith/pipesmith/pkg/generate"
	"github.com/pipesmith/pipesmith/pkg/observability"
	"github.com/pipesmith/pipesmith/pkg/requirements"
)

// Runner encapsulates pipeline execution. Both CLI and API use this to
// avoid duplicating stage orchestration.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the package default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete extract → finalize → generate pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1+2: Extract and finalize
	observability.Pipeline().OnExtractStart(ctx)
	extractStart := time.Now()
	model := r.Extract(opts)
	model = r.Finalize(model, opts)
	result.Model = model
	result.Stats.ExtractTime = time.Since(extractStart)
	observability.Pipeline().OnExtractComplete(ctx, model.Language, model.Platform, result.Stats.ExtractTime)

	r.Logger.Info("extracted requirements",
		"project", model.Name,
		"language", model.Language,
		"platform", model.Platform,
		"environments", model.Environments,
		"duration", result.Stats.ExtractTime)

	// Stage 3: Generate
	observability.Pipeline().OnGenerateStart(ctx, model.Language, model.Platform)
	generateStart := time.Now()
	files, err := r.Generate(model)
	observability.Pipeline().OnGenerateComplete(ctx, len(files), time.Since(generateStart), err)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Files = files
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.FileCount = len(files)

	r.Logger.Info("generated artifacts",
		"files", result.Stats.FileCount,
		"duration", result.Stats.GenerateTime)

	return result, nil
}

// Extract scans the description and returns the raw extracted model,
// before overrides and defaults.
func (r *Runner) Extract(opts Options) requirements.Requirements {
	return requirements.Extract(opts.Description)
}

// Finalize applies explicit overrides to an extracted model and derives
// the language defaults. Overrides land before derivation so a language
// switch also refreshes version, port, and commands.
func (r *Runner) Finalize(model requirements.Requirements, opts Options) requirements.Requirements {
	if opts.Language != "" {
		model.Language = opts.Language
	}
	if opts.Platform != "" {
		model.Platform = opts.Platform
	}
	if opts.Name != "" {
		model.Name = opts.Name
	}
	if opts.Docker {
		model.Docker = true
	}
	if len(opts.Environments) > 0 {
		envs := slices.Clone(opts.Environments)
		if !slices.Contains(envs, "production") {
			envs = append(envs, "production")
		}
		model.Environments = envs
	}
	return requirements.ApplyDefaults(model)
}

// Generate renders all artifacts from a finalized model.
func (r *Runner) Generate(model requirements.Requirements) (generate.Files, error) {
	return generate.All(model)
}
