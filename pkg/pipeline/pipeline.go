// Package pipeline provides the core configuration pipeline for Pipesmith.
//
// This package implements the complete extract → finalize → generate
// pipeline that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Extract: Scan the free-form project description for requirement signals
//  2. Finalize: Apply explicit overrides and fill language-derived defaults
//  3. Generate: Render the CI/CD artifacts from the finalized model
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Description: "A Node.js API called shop-api deployed to Heroku with postgres",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	workflow := result.Files[generate.WorkflowPath]
//
// Run individual stages:
//
//	// Extract only
//	model := runner.Extract(opts)
//
//	// Finalize with explicit overrides
//	model = runner.Finalize(model, opts)
//
//	// Generate with an existing model
//	files, err := runner.Generate(model)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/pipesmith/pipesmith/pkg/errors"
	"github.com/pipesmith/pipesmith/pkg/generate"
	"github.com/pipesmith/pipesmith/pkg/requirements"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the configuration pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Description is the free-form project description to extract
	// requirements from.
	Description string `json:"description"`

	// Explicit overrides. When set, they replace the extracted value
	// before defaults are derived.
	Language string `json:"language,omitempty"`
	Platform string `json:"platform,omitempty"`
	Name     string `json:"name,omitempty"`

	// Docker forces Docker artifact generation on regardless of what the
	// description implies.
	Docker bool `json:"docker,omitempty"`

	// Environments replaces the extracted environment chain when non-empty.
	// Production is appended if the override omits it.
	Environments []string `json:"environments,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether Validate has been called.
	validated bool `json:"-"`
}

// Validate checks required fields and override values. It is idempotent.
func (o *Options) Validate() error {
	if o.validated {
		return nil
	}
	if o.Description == "" {
		return errors.New(errors.ErrCodeInvalidInput, "description is required")
	}
	if o.Language != "" && !requirements.ValidLanguage(o.Language) {
		return errors.New(errors.ErrCodeInvalidLanguage,
			"invalid language: %q (must be one of: nodejs, python, go, java)", o.Language)
	}
	if o.Platform != "" && !requirements.ValidPlatform(o.Platform) {
		return errors.New(errors.ErrCodeInvalidPlatform,
			"invalid platform: %q (must be one of: heroku, aws, gcp, azure)", o.Platform)
	}
	o.validated = true
	return nil
}

// HasOverrides reports whether any explicit override is set.
func (o *Options) HasOverrides() bool {
	return o.Language != "" || o.Platform != "" || o.Name != "" ||
		o.Docker || len(o.Environments) > 0
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Model is the finalized requirements model the artifacts were
	// generated from.
	Model requirements.Requirements

	// Files contains the generated artifacts keyed by output path.
	Files generate.Files

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FileCount    int
	ExtractTime  time.Duration
	GenerateTime time.Duration
}
