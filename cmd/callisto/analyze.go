package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/fm/analysis"
	"mercator-hq/callisto/pkg/fm/parser"
	"mercator-hq/callisto/pkg/watch"
)

var analyzeFlags struct {
	format      string
	maxProducts int
	timeout     time.Duration
	watchMode   bool
	debugChecks bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <model.xml>",
	Short: "Analyze a feature model",
	Long: `Parse a feature model document, compile it to propositional logic, and
enumerate all minimal valid products.

The output lists the compiled logic rules alongside the products, so every
rule can be traced back to the tree edge or constraint that produced it.

Examples:
  # Analyze a model
  callisto analyze model.xml

  # JSON output
  callisto analyze model.xml --format json

  # Stop after 50 products
  callisto analyze model.xml --max-products 50

  # Re-analyze on every save
  callisto analyze model.xml --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFlags.format, "format", "f", "text", "output format: text, json")
	analyzeCmd.Flags().IntVar(&analyzeFlags.maxProducts, "max-products", 0, "product enumeration ceiling (0 uses config)")
	analyzeCmd.Flags().DurationVar(&analyzeFlags.timeout, "timeout", 0, "solve timeout (0 uses config)")
	analyzeCmd.Flags().BoolVarP(&analyzeFlags.watchMode, "watch", "w", false, "re-analyze when the file changes")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.debugChecks, "debug-checks", false, "verify every product against the tree")
}

// analyzeResult is the analyze command output.
type analyzeResult struct {
	Model      string     `json:"model,omitempty"`
	Source     string     `json:"source"`
	Features   int        `json:"features"`
	LogicRules []string   `json:"logicRules"`
	Products   [][]string `json:"products"`
	Warnings   []string   `json:"warnings,omitempty"`
	Truncated  bool       `json:"truncated,omitempty"`
}

// Text renders the analysis for terminals.
func (r analyzeResult) Text() string {
	var b strings.Builder

	name := r.Model
	if name == "" {
		name = r.Source
	}
	fmt.Fprintf(&b, "Model: %s (%d features)\n", name, r.Features)

	fmt.Fprintf(&b, "\nLogic rules (%d):\n", len(r.LogicRules))
	for _, rule := range r.LogicRules {
		fmt.Fprintf(&b, "  %s\n", rule)
	}

	fmt.Fprintf(&b, "\nMinimal products (%d):\n", len(r.Products))
	for i, p := range r.Products {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, strings.Join(p, ", "))
	}
	if r.Truncated {
		fmt.Fprintf(&b, "  (enumeration truncated at the product ceiling)\n")
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "\nWarnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  %s\n", w)
		}
	}

	return b.String()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	path := args[0]
	formatter := cli.NewFormatter(cli.OutputFormat(analyzeFlags.format))

	if err := analyzeOnce(cfg, logger, path, formatter); err != nil {
		if !analyzeFlags.watchMode {
			return cli.NewCommandError("analyze", err)
		}
		// Watch mode keeps going: the document may become valid on the
		// next save.
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
	}

	if !analyzeFlags.watchMode {
		return nil
	}

	fw, err := watch.NewFileWatcher(path, logger)
	if err != nil {
		return cli.NewCommandError("analyze", err)
	}

	ctx := cli.SetupSignalHandler()
	return fw.Watch(ctx, func() error {
		return analyzeOnce(cfg, logger, path, formatter)
	})
}

func analyzeOnce(cfg *config.Config, logger *slog.Logger, path string, formatter cli.Formatter) error {
	model, err := parser.New().Parse(path)
	if err != nil {
		return err
	}

	maxProducts := analyzeFlags.maxProducts
	if maxProducts == 0 {
		maxProducts = cfg.Analysis.MaxProducts
	}
	timeout := analyzeFlags.timeout
	if timeout == 0 {
		timeout = cfg.Analysis.SolveTimeout
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	analyzer := analysis.New(model, analysis.Options{
		MaxProducts: maxProducts,
		DebugChecks: analyzeFlags.debugChecks || cfg.Analysis.DebugChecks,
		Logger:      logger,
	})

	start := time.Now()
	enum, err := analyzer.Enumerate(ctx)
	if err != nil {
		return err
	}
	logger.Debug("analysis complete",
		"file", path,
		"features", model.FeatureCount(),
		"products", len(enum.Products),
		"duration", time.Since(start))

	products := make([][]string, 0, len(enum.Products))
	for _, p := range enum.Products {
		products = append(products, p)
	}

	return formatter.FormatTo(os.Stdout, analyzeResult{
		Model:      model.Name,
		Source:     path,
		Features:   model.FeatureCount(),
		LogicRules: enum.Compiled.Rules,
		Products:   products,
		Warnings:   enum.Compiled.Warnings,
		Truncated:  enum.Truncated,
	})
}
