package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/fomc-dots/internal/logger"
	"github.com/pfrederiksen/fomc-dots/internal/projection"
	"github.com/pfrederiksen/fomc-dots/internal/report"
	"github.com/pfrederiksen/fomc-dots/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Flag combinations rejected before anything is fetched.
var (
	ErrConflictingShapes = errors.New("--expand, --wide and --beeswarm are mutually exclusive")
	ErrAllMeetingsScope  = errors.New("--all-meetings requires --beeswarm")
)

var (
	flagExpand      bool
	flagWide        bool
	flagBeeswarm    bool
	flagAllMeetings bool
	flagFormat      string
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fomc-dots",
		Short: "Export FOMC dot-plot rate projections as CSV",
		Long: `Fetches the FOMC "dot plot" rate projections published on
federalreserve.gov and writes them to stdout as CSV, JSON or Markdown.

Each run discovers every projection release from the public meeting calendar,
parses the appropriate-monetary-policy table on each release page, and emits
one row per (meeting, year, rate midpoint) with the number of participants
whose projection sits at that midpoint. Diagnostics go to stderr, so output
can be piped or redirected directly:

  fomc-dots > dots.csv
  fomc-dots --expand --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExport,
	}

	// Define flags
	cmd.Flags().BoolVar(&flagExpand, "expand", false, "One row per participant dot instead of per-midpoint counts")
	cmd.Flags().BoolVar(&flagWide, "wide", false, "Published table shape: one row per midpoint, one column per year")
	cmd.Flags().BoolVar(&flagBeeswarm, "beeswarm", false, "Per-dot rows ordered and labelled for the dot-plot chart")
	cmd.Flags().BoolVar(&flagAllMeetings, "all-meetings", false, "With --beeswarm, include every meeting instead of the last year")
	cmd.Flags().StringVar(&flagFormat, "format", "csv", "Output format: csv, json or markdown")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// runExport is the main command logic: fetch every projection release, parse
// it, reshape per the flags and write the dataset to stdout in one piece.
func runExport(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	if err := validateShapeFlags(); err != nil {
		return err
	}

	level := logger.LevelWarn
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	sc := scraper.New()

	logger.Debug("fetching meeting calendar", logger.Fields{"url": scraper.CalendarURL})
	sources, err := sc.FetchSources()
	if err != nil {
		return fmt.Errorf("discovering projection pages: %w", err)
	}
	logger.Debug("discovered projection pages", logger.Fields{"count": len(sources)})

	tables := make([]*projection.Table, 0, len(sources))
	for _, src := range sources {
		start := time.Now()
		tbl, err := sc.FetchTable(src)
		if err != nil {
			return fmt.Errorf("fetching projections: %w", err)
		}
		logger.Debug("parsed projection table", logger.Fields{
			"url":         src.URL,
			"meeting":     src.Date.Format("2006-01-02"),
			"rows":        len(tbl.Rows),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		tables = append(tables, tbl)
	}

	if err := report.Write(cmd.OutOrStdout(), buildDataset(tables), format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// validateShapeFlags rejects contradictory shape selections.
func validateShapeFlags() error {
	selected := 0
	for _, flag := range []bool{flagExpand, flagWide, flagBeeswarm} {
		if flag {
			selected++
		}
	}
	if selected > 1 {
		return ErrConflictingShapes
	}
	if flagAllMeetings && !flagBeeswarm {
		return ErrAllMeetingsScope
	}
	return nil
}

// buildDataset reshapes parsed tables into the dataset the shape flags
// select.
func buildDataset(tables []*projection.Table) *report.Dataset {
	if flagWide {
		return report.Wide(tables)
	}

	recs := projection.Longify(tables)
	switch {
	case flagBeeswarm:
		dots := projection.Expand(recs)
		if !flagAllMeetings {
			dots = projection.FilterRecentMeetings(dots)
		}
		projection.SortBeeswarm(dots)
		return report.Beeswarm(dots)
	case flagExpand:
		return report.Expanded(projection.Expand(recs))
	default:
		return report.Long(recs)
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
