package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yeonwoo/jobscout/internal/db"
	"github.com/yeonwoo/jobscout/internal/format"
	"github.com/yeonwoo/jobscout/internal/matching"
	"github.com/yeonwoo/jobscout/internal/types"
)

var (
	scoreLimit       int
	scoreConcurrency int
	scoreOutput      string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score unevaluated postings against the candidate profile",
	Long:  "Evaluate every stored posting not yet scored, persist the verdicts, and emit the results as a JSON array.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().IntVarP(&scoreLimit, "limit", "l", 0, "Max postings to score in one run (0 uses the configured default)")
	scoreCmd.Flags().IntVarP(&scoreConcurrency, "concurrency", "c", 0, "Parallel evaluations (0 uses the configured default)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "", "Write the JSON results to a file instead of stdout")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if scoreLimit > 0 {
		cfg.ScoreLimit = scoreLimit
	}
	if scoreConcurrency > 0 {
		cfg.Concurrency = scoreConcurrency
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

	pending := database.PendingPostings(ctx, cfg.ScoreLimit)
	if len(pending) == 0 {
		log.Info("no pending postings to score")
		return writeResults(nil)
	}

	log.Info("scoring postings",
		zap.Int("count", len(pending)),
		zap.Int("concurrency", cfg.Concurrency))

	profile := types.DefaultProfile()
	results := make([]*format.Record, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i := range pending {
		i := i
		g.Go(func() error {
			p := &pending[i]

			ev, err := matching.Evaluate(p, profile)
			if err != nil {
				log.Warn("skipping unevaluable posting",
					zap.Int64("id", p.ID),
					zap.Error(err))
				return nil
			}

			if ok := database.RecordMatchResult(gctx, p.ID, ev.Score, ev.Reason, ev.Apply, &ev.Strength, &ev.Weakness); !ok {
				return nil
			}

			record := format.FromEvaluation(p.ID, ev)
			results[i] = &record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	records := make([]format.Record, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}

	log.Info("scoring complete",
		zap.Int("scored", len(records)),
		zap.Int("skipped", len(pending)-len(records)))

	return writeResults(records)
}

// writeResults emits the JSON array on stdout, or to --output when set.
// Logs go to stderr so stdout stays machine readable.
func writeResults(records []format.Record) error {
	out, err := format.MarshalBatch(records)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if scoreOutput != "" {
		if err := os.WriteFile(scoreOutput, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
