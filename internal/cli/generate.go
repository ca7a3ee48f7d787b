package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pipesmith/pipesmith/pkg/generate"
	"github.com/pipesmith/pipesmith/pkg/pipeline"
	"github.com/pipesmith/pipesmith/pkg/requirements"
	"github.com/pipesmith/pipesmith/pkg/session"
)

// generateFlags holds the flag values for the generate command.
type generateFlags struct {
	input          string
	output         string
	preview        bool
	nonInteractive bool
	quick          bool
	lang           string
	platform       string
	name           string
	config         string
	here           bool
}

func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [description]",
		Short: "Generate CI/CD configuration from a project description",
		Long: `Generate CI/CD configuration files from a plain-language project description.

The description is analyzed for language, framework, databases, services,
deployment platform, and environments. Detected values can be corrected
interactively before the files are written.`,
		Example: `  # Describe the project inline
  pipesmith generate "Node.js Express API with PostgreSQL, deploy to Heroku"

  # Read the description from a file
  pipesmith generate --input project.txt --out ./ci

  # Skip all prompts and accept detected values
  pipesmith generate -q "Python FastAPI service with Redis"

  # Preview without writing files
  pipesmith generate -p "Next.js app deployed to AWS"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "read the project description from a file")
	cmd.Flags().StringVarP(&flags.output, "out", "o", "./pipeline-config", "output directory for generated files")
	cmd.Flags().BoolVarP(&flags.preview, "preview", "p", false, "print generated files instead of writing them")
	cmd.Flags().BoolVar(&flags.nonInteractive, "non-interactive", false, "never prompt, fail if the description is missing")
	cmd.Flags().BoolVarP(&flags.quick, "quick", "q", false, "accept detected values without confirmation")
	cmd.Flags().StringVarP(&flags.lang, "lang", "l", "", "override the detected language (nodejs, python, go, java)")
	cmd.Flags().StringVarP(&flags.platform, "platform", "P", "", "override the detected platform (heroku, aws, gcp, azure)")
	cmd.Flags().StringVar(&flags.name, "name", "", "override the detected project name")
	cmd.Flags().StringVar(&flags.config, "config", "", "preset file with default overrides (TOML)")
	cmd.Flags().BoolVar(&flags.here, "here", false, "write files into the current directory")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string, flags generateFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	interactive := !flags.quick && !flags.nonInteractive && isatty.IsTerminal(os.Stdin.Fd())

	description, err := resolveDescription(args, flags, interactive)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Description: description,
		Language:    flags.lang,
		Platform:    flags.platform,
		Name:        flags.name,
		Logger:      logger,
	}

	preset, err := loadPreset(flags.config)
	if err != nil {
		return err
	}
	preset.apply(&opts)

	output := flags.output
	if flags.here {
		output = "."
	} else if output == "./pipeline-config" && preset.Output != "" {
		output = preset.Output
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	runner := c.newRunner()

	model := runner.Extract(opts)

	if interactive {
		model, err = refine(model)
		if errors.Is(err, errRefineAborted) {
			printWarning("Aborted, no files written")
			return nil
		}
		if err != nil {
			return err
		}
	}

	model = runner.Finalize(model, opts)

	files, err := runner.Generate(model)
	if err != nil {
		return err
	}

	printNewline()
	fmt.Println(generate.Summary(model, files))
	printNewline()

	if flags.preview {
		previewFiles(files)
		return nil
	}

	track := newProgress(logger)
	if err := writeFiles(output, files); err != nil {
		return err
	}
	track.done(fmt.Sprintf("Wrote %d files", len(files)))

	saveLatest(ctx, logger, model, files)
	printNextSteps(output, model)
	return nil
}

// resolveDescription picks the project description from args, --input, or
// an interactive prompt, in that order.
func resolveDescription(args []string, flags generateFlags, interactive bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if flags.input != "" {
		data, err := os.ReadFile(flags.input)
		if err != nil {
			return "", fmt.Errorf("reading description file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if !interactive {
		return "", errors.New("no description given (pass one as an argument or via --input)")
	}

	printInfo("Describe your project (language, frameworks, databases, deployment target):")
	fmt.Print(StyleHighlight.Render("> "))
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading description: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// saveLatest stores the result so `pipesmith graph` can reuse it. Failure
// is logged, not fatal.
func saveLatest(ctx context.Context, logger *log.Logger, model requirements.Requirements, files generate.Files) {
	store, err := session.NewCLIStore()
	if err != nil {
		logger.Debug("could not open result store", "error", err)
		return
	}
	res := session.NewResult(model, files, session.DefaultTTL)
	if err := store.SaveLatest(ctx, res); err != nil {
		logger.Debug("could not save result", "error", err)
	}
}

// printNextSteps prints the post-generation checklist.
func printNextSteps(output string, model requirements.Requirements) {
	printNewline()
	printSuccess("Configuration generated in %s", output)
	printNewline()
	printInfo("Next steps:")
	printDetail("Review the generated files")
	printNextStep("Move the workflow into your repository", "cp "+output+"/.github/workflows/*.yml .github/workflows/")
	if model.Platform == requirements.PlatformHeroku {
		printNextStep("Create the Heroku apps", "heroku apps:create "+model.Name)
	}
	printDetail("Add the listed secrets to your GitHub repository settings")
	printNextStep("Commit and push to trigger the pipeline", "git push origin "+model.MainBranch)
	printNewline()
}
