package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/fm/analysis"
	"mercator-hq/callisto/pkg/fm/parser"
)

var validateFlags struct {
	selection []string
	format    string
}

// errInvalidSelection signals a non-zero exit for an invalid selection after
// the diagnostics have already been printed.
var errInvalidSelection = errors.New("selection is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate <model.xml>",
	Short: "Validate a feature selection",
	Long: `Check whether a candidate feature selection is consistent with a model.

Features named with --select are treated as selected; every other feature is
deselected. The command reports each violated rule: missing mandatory
features, group cardinality violations, and broken cross-tree constraints.

Examples:
  # Validate a selection
  callisto validate model.xml --select Phone,Screen,Basic

  # Flags may repeat
  callisto validate model.xml --select Phone --select Screen

  # JSON output
  callisto validate model.xml --select Phone --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringSliceVarP(&validateFlags.selection, "select", "s", nil, "selected features (comma-separated, may repeat)")
	validateCmd.Flags().StringVarP(&validateFlags.format, "format", "f", "text", "output format: text, json")
}

// validateResult is the validate command output.
type validateResult struct {
	Source   string   `json:"source"`
	Selected []string `json:"selectedFeatures"`
	IsValid  bool     `json:"isValid"`
	Messages []string `json:"messages"`
}

// Text renders the validation verdict for terminals.
func (r validateResult) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Selection: %s\n", strings.Join(r.Selected, ", "))
	if r.IsValid {
		fmt.Fprintf(&b, "Result: valid\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Result: invalid\n")
	for _, m := range r.Messages {
		fmt.Fprintf(&b, "  - %s\n", m)
	}
	return b.String()
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	model, err := parser.New().Parse(args[0])
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	ctx := context.Background()
	if cfg.Analysis.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Analysis.SolveTimeout)
		defer cancel()
	}

	analyzer := analysis.New(model, analysis.Options{
		MaxProducts: cfg.Analysis.MaxProducts,
		DebugChecks: cfg.Analysis.DebugChecks,
		Logger:      logger,
	})

	result, err := analyzer.Validate(ctx, validateFlags.selection)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	messages := result.Messages
	if messages == nil {
		messages = []string{}
	}
	out := validateResult{
		Source:   args[0],
		Selected: validateFlags.selection,
		IsValid:  result.Valid,
		Messages: messages,
	}

	formatter := cli.NewFormatter(cli.OutputFormat(validateFlags.format))
	if err := formatter.FormatTo(os.Stdout, out); err != nil {
		return err
	}

	// Returning an error rather than exiting keeps deferred cleanup and
	// cobra's error path intact while still yielding a non-zero exit.
	if !result.Valid {
		return errInvalidSelection
	}
	return nil
}
