package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yeonwoo/jobscout/internal/db"
	"github.com/yeonwoo/jobscout/internal/observability"
	"github.com/yeonwoo/jobscout/internal/stats"
)

var reportLimit int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a summary of stored postings and recommendations",
	Long:  "Print aggregate statistics, the most recent postings, and the top recommended postings as formatted terminal output.",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVarP(&reportLimit, "limit", "l", 10, "Number of recent and recommended postings to show")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	recent := database.RecentPostings(ctx, reportLimit)
	recommended := database.RecommendedPostings(ctx, reportLimit)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintStatistics(stats.Build(recent))
	printer.PrintRecentPostings(recent)
	printer.PrintRecommendations(recommended)

	return nil
}
