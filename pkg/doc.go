// Package pkg provides the core libraries for Pipesmith CI/CD generation.
//
// # Overview
//
// Pipesmith turns a plain-language project description into production-ready
// CI/CD configuration: a GitHub Actions workflow, deployment manifests,
// Docker files, and documentation. The pkg directory is organized into
// three main areas:
//
//  1. Requirements - Extract a structured model from free-form text
//  2. Generation - Render deterministic artifacts from the model
//  3. Infrastructure - Pipeline orchestration, result storage, HTTP helpers
//
// # Architecture
//
// The typical data flow through Pipesmith:
//
//	Project description (free text)
//	         ↓
//	    [requirements] package (extract + defaults)
//	         ↓
//	    [pipeline] package (overrides + orchestration)
//	         ↓
//	    [generate] package (workflow, Heroku, Docker, docs)
//	         ↓
//	    Files on disk / API response
//
// # Quick Start
//
// Run the full pipeline:
//
//	import (
//	    "context"
//	    "github.com/pipesmith/pipesmith/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Description: "Node.js Express API with postgres, deploy to Heroku",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for path, content := range result.Files {
//	    fmt.Println(path, len(content))
//	}
//
// # Main Packages
//
// ## Requirements
//
// [requirements] - The requirements model and keyword extraction. Scans a
// description for language, framework, databases, services, platform, and
// environments, then derives language defaults (version, port, commands).
//
// ## Generation
//
// [generate] - Deterministic artifact generators: the GitHub Actions
// workflow, Heroku Procfile and app.json, Dockerfile and .dockerignore,
// and documentation (pipeline README, .env.example).
//
// [template] - Minimal placeholder substitution used by all generators.
// Substituted values are never rescanned, so generated content cannot
// inject further placeholders.
//
// [dot] - Pipeline stage graph rendering (DOT and SVG via Graphviz).
//
// ## Infrastructure
//
// [pipeline] - Complete extract → finalize → generate pipeline shared by
// CLI and API. Ensures consistent behavior across all entry points.
//
// [session] - Generation result storage with memory, Redis, and file
// backends. The CLI keeps its latest result on disk; the API stores
// uuid-keyed results with a TTL.
//
// [httputil] - JSON request/response helpers for the HTTP API, including
// the error-code to HTTP-status mapping.
//
// [observability] - Optional instrumentation hooks for pipeline execution
// and result store operations.
//
// [errors] - Coded errors shared across packages.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Common Workflows
//
// Extract without generating:
//
//	model := requirements.Extract("Python FastAPI service with redis")
//	model = requirements.ApplyDefaults(model)
//
// Generate a single artifact family:
//
//	files, err := generate.Workflow(model)
//
// Render the stage graph:
//
//	src := dot.ToDOT(model, dot.Options{Services: true})
//	svg, err := dot.RenderSVG(src)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/generate/...    # Specific package
//	go test -run Example          # Examples only
//
// [requirements]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/requirements
// [generate]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/generate
// [template]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/template
// [dot]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/dot
// [pipeline]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/pipeline
// [session]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/session
// [httputil]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/observability
// [errors]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/pipesmith/pipesmith/pkg/buildinfo
package pkg
