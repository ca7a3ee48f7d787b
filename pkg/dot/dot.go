// Package dot renders a requirements model as a Graphviz diagram of its
// pipeline: the test and build stages, the deploy chain, and the backing
// services the test stage depends on.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/pipesmith/pipesmith/pkg/requirements"
)

// Options configures pipeline diagram rendering.
type Options struct {
	// Services includes database and service nodes attached to the test
	// stage.
	Services bool
}

// ToDOT converts a requirements model to Graphviz DOT format. The stages
// form a linear chain (test, build, then one deploy node per environment
// in order); service nodes are rendered with dashed outlines.
func ToDOT(req requirements.Requirements, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pipeline {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q];\n", "test", "Test\n"+req.TestCommand)
	fmt.Fprintf(&buf, "  %q [label=%q];\n", "build", "Build\n"+req.BuildCommand)
	for _, env := range req.Environments {
		id := "deploy-" + env
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, fmt.Sprintf("Deploy %s\n(%s)", env, req.Platform))
	}

	if opts.Services {
		for _, db := range req.Databases {
			fmt.Fprintf(&buf, "  %q [style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", db)
		}
		for _, svc := range req.Services {
			fmt.Fprintf(&buf, "  %q [style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", svc)
		}
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  %q -> %q;\n", "test", "build")
	prev := "build"
	for _, env := range req.Environments {
		id := "deploy-" + env
		fmt.Fprintf(&buf, "  %q -> %q;\n", prev, id)
		prev = id
	}

	if opts.Services {
		for _, db := range req.Databases {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", db, "test")
		}
		for _, svc := range req.Services {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", svc, "test")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
