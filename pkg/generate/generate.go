// Package generate turns a resolved requirements model into the concrete
// pipeline artifacts: a GitHub Actions workflow, platform configuration
// (Heroku Procfile and app.json), Docker build files, and documentation.
//
// Every generator is a pure function from requirements to a file map.
// Generators never mutate the model and never touch the filesystem; the
// caller decides where (and whether) the files land. Platform- and
// feature-gated generators return an empty map instead of an error when
// their gate is closed, so the full set is always the union of whatever
// applies.
package generate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pipesmith/pipesmith/pkg/requirements"
)

// =============================================================================
// File map
// =============================================================================

// Files maps repository-relative output paths to rendered file contents.
type Files map[string]string

// Paths returns the output paths in sorted order.
func (f Files) Paths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// merge copies src into f. Later writers win on path collisions.
func (f Files) merge(src Files) {
	for path, content := range src {
		f[path] = content
	}
}

// =============================================================================
// Top-level generation
// =============================================================================

// generator is one artifact family keyed by requirements.
type generator func(requirements.Requirements) (Files, error)

// All runs every generator in a fixed order (workflow, platform config,
// Docker, documentation) and merges the results into a single file map.
// The first generator error aborts the run; no partial set is returned.
func All(req requirements.Requirements) (Files, error) {
	files := Files{}
	for _, gen := range []generator{Workflow, Heroku, Docker, Docs} {
		out, err := gen(req)
		if err != nil {
			return nil, err
		}
		files.merge(out)
	}
	return files, nil
}

// Summary describes the resolved model and the files a run would produce,
// formatted for terminal display.
func Summary(req requirements.Requirements, files Files) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", req.Name)
	fmt.Fprintf(&b, "Language: %s\n", titleCase(req.Language))
	if req.Framework != "" {
		fmt.Fprintf(&b, "Framework: %s\n", titleCase(req.Framework))
	}
	fmt.Fprintf(&b, "Deploy to: %s\n", titleCase(req.Platform))
	fmt.Fprintf(&b, "Environments: %s\n", titleList(req.Environments))
	if len(req.Databases) > 0 {
		fmt.Fprintf(&b, "Databases: %s\n", titleList(req.Databases))
	}
	if len(req.Services) > 0 {
		fmt.Fprintf(&b, "Services: %s\n", titleList(req.Services))
	}

	b.WriteString("\nFiles to generate:\n")
	for _, path := range files.Paths() {
		fmt.Fprintf(&b, "  - %s\n", path)
	}
	return strings.TrimRight(b.String(), "\n")
}

func titleList(items []string) string {
	titled := make([]string, len(items))
	for i, item := range items {
		titled[i] = titleCase(item)
	}
	return strings.Join(titled, ", ")
}
