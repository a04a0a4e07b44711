package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/skillgap-analyzer/internal/analytics"
	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/observability"
	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var (
	statsDepartment   string
	statsAcademicYear string
	statsJSON         bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the analytics snapshot",
	Long:  `Aggregate the recorded skill gap analyses and print the dashboard snapshot to stdout.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsDepartment, "department", "", "Filter by department")
	statsCmd.Flags().StringVar(&statsAcademicYear, "academic-year", "", "Filter by academic year")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the raw snapshot as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	snapshot := analytics.NewAggregator(database).Aggregate(ctx, types.SnapshotFilter{
		Department:   statsDepartment,
		AcademicYear: statsAcademicYear,
	})

	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}

	observability.NewPrinter(os.Stdout).PrintSnapshot(snapshot)
	return nil
}
