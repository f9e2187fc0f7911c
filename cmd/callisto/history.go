package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/cli"
	"mercator-hq/callisto/pkg/store"
)

var historyFlags struct {
	limit  int
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent analysis history",
	Long: `List recent analysis runs recorded in the history database.

The store must be enabled in the configuration; runs performed by the serve
command are recorded automatically.

Examples:
  # Show the 20 most recent runs
  callisto history --limit 20

  # JSON output
  callisto history --format json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 20, "maximum entries to show")
	historyCmd.Flags().StringVarP(&historyFlags.format, "format", "f", "text", "output format: text, json")
}

// historyEntry is one analysis run in command output.
type historyEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	ModelName string    `json:"modelName,omitempty"`
	Source    string    `json:"source"`
	Features  int       `json:"features"`
	Products  int       `json:"products,omitempty"`
	Valid     bool      `json:"valid,omitempty"`
	Truncated bool      `json:"truncated,omitempty"`
	Duration  string    `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}

// historyResult is the history command output.
type historyResult struct {
	Entries []historyEntry `json:"entries"`
}

// Text renders the history as one line per run.
func (r historyResult) Text() string {
	if len(r.Entries) == 0 {
		return "No analysis history recorded.\n"
	}

	var b strings.Builder
	for _, e := range r.Entries {
		name := e.ModelName
		if name == "" {
			name = e.Source
		}
		fmt.Fprintf(&b, "%s  %-11s  %-20s  %d features",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Kind, name, e.Features)
		switch e.Kind {
		case string(store.KindEnumeration):
			fmt.Fprintf(&b, "  %d products", e.Products)
			if e.Truncated {
				fmt.Fprintf(&b, " (truncated)")
			}
		case string(store.KindValidation):
			if e.Valid {
				fmt.Fprintf(&b, "  valid")
			} else {
				fmt.Fprintf(&b, "  invalid")
			}
		}
		fmt.Fprintf(&b, "  %s\n", e.Duration)
	}
	return b.String()
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if _, err := setupLogger(cfg); err != nil {
		return err
	}

	if !cfg.Store.Enabled {
		return cli.NewConfigError("store.enabled", "analysis history store is disabled")
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer st.Close()

	records, err := st.List(context.Background(), historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	result := historyResult{Entries: make([]historyEntry, 0, len(records))}
	for _, rec := range records {
		result.Entries = append(result.Entries, historyEntry{
			ID:        rec.ID,
			Kind:      string(rec.Kind),
			ModelName: rec.ModelName,
			Source:    rec.Source,
			Features:  rec.Features,
			Products:  rec.Products,
			Valid:     rec.Valid,
			Truncated: rec.Truncated,
			Duration:  rec.Duration.Round(time.Millisecond).String(),
			CreatedAt: rec.CreatedAt,
		})
	}

	formatter := cli.NewFormatter(cli.OutputFormat(historyFlags.format))
	return formatter.FormatTo(os.Stdout, result)
}
