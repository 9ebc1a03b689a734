package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yeonwoo/jobscout/internal/db"
	"github.com/yeonwoo/jobscout/internal/ingestion"
)

var ingestFile string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a batch of scraped postings from a JSON file",
	Long:  "Validate a scraper output file against the batch schema, clean each posting, skip URLs already stored, and save the rest to the database.",
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to scraped postings JSON file (required)")
	ingestCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
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

	data, err := os.ReadFile(ingestFile)
	if err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	batch, err := ingestion.DecodeBatch(data)
	if err != nil {
		return fmt.Errorf("failed to decode batch: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	batchID := uuid.NewString()
	log.Info("ingesting batch",
		zap.String("batchId", batchID),
		zap.String("file", ingestFile),
		zap.Int("postings", len(batch)))

	// Normalize URLs up front so dedup uses the same keys as storage.
	urls := make([]string, 0, len(batch))
	for i := range batch {
		normalized, err := ingestion.NormalizeURL(batch[i].URL)
		if err != nil {
			batch[i].URL = ""
			continue
		}
		batch[i].URL = normalized
		urls = append(urls, normalized)
	}
	existing := database.ExistingURLs(ctx, urls)

	var saved, skipped, failed int
	seen := make(map[string]bool)
	for i := range batch {
		p := &batch[i]

		if err := p.Validate(); err != nil {
			log.Warn("skipping invalid posting",
				zap.String("batchId", batchID),
				zap.Int("index", i),
				zap.Error(err))
			failed++
			continue
		}
		if p.URL == "" {
			log.Warn("skipping posting without a usable URL",
				zap.String("batchId", batchID),
				zap.String("company", p.CompanyName),
				zap.String("title", p.JobTitle))
			failed++
			continue
		}
		if existing[p.URL] || seen[p.URL] {
			skipped++
			continue
		}
		seen[p.URL] = true

		p.JobDescription = ingestion.CleanDescription(p.JobDescription)

		if _, err := database.SavePosting(ctx, p); err != nil {
			failed++
			continue
		}
		saved++
	}

	log.Info("batch ingested",
		zap.String("batchId", batchID),
		zap.Int("saved", saved),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed))

	fmt.Fprintf(os.Stdout, "Ingested %d postings (%d duplicates skipped, %d failed)\n", saved, skipped, failed)
	return nil
}
