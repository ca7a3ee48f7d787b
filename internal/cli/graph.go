package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pipesmith/pipesmith/pkg/dot"
	"github.com/pipesmith/pipesmith/pkg/pipeline"
	"github.com/pipesmith/pipesmith/pkg/requirements"
	"github.com/pipesmith/pipesmith/pkg/session"
)

// graphCommand creates the graph command for rendering the pipeline DAG.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		format   string
		services bool
	)

	cmd := &cobra.Command{
		Use:   "graph [description]",
		Short: "Render the pipeline stage graph",
		Long: `Render the CI/CD pipeline stage graph (test → build → deploy chain).

With a description argument the model is extracted fresh. Without one,
the most recent result saved by 'generate' is reused.`,
		Example: `  # Print DOT for a fresh description
  pipesmith graph "Python FastAPI app on AWS with staging"

  # Render the last generated pipeline to SVG
  pipesmith graph -f svg -o pipeline.svg

  # Include database and service nodes
  pipesmith graph --services "Express API with postgres and redis"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args, output, format, services)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot (default), svg")
	cmd.Flags().BoolVar(&services, "services", false, "include database and service nodes")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, args []string, output, format string, services bool) error {
	model, err := c.graphModel(cmd, args)
	if err != nil {
		return err
	}

	source := dot.ToDOT(model, dot.Options{Services: services})

	var data []byte
	switch format {
	case "dot":
		data = []byte(source)
	case "svg":
		data, err = dot.RenderSVG(source)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (must be dot or svg)", format)
	}

	if output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Wrote %s", output)
	return nil
}

// graphModel extracts a model from the argument description, or falls
// back to the last result saved by generate.
func (c *CLI) graphModel(cmd *cobra.Command, args []string) (requirements.Requirements, error) {
	if len(args) > 0 {
		opts := pipeline.Options{Description: strings.Join(args, " ")}
		if err := opts.Validate(); err != nil {
			return requirements.Requirements{}, err
		}
		runner := c.newRunner()
		return runner.Finalize(runner.Extract(opts), opts), nil
	}

	store, err := session.NewCLIStore()
	if err != nil {
		return requirements.Requirements{}, err
	}
	res, err := store.Latest(cmd.Context())
	if err != nil {
		return requirements.Requirements{}, err
	}
	if res == nil {
		return requirements.Requirements{}, fmt.Errorf("no saved result (run 'pipesmith generate' first or pass a description)")
	}
	return res.Model, nil
}
