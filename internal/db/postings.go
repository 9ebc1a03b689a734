package db

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yeonwoo/jobscout/internal/logger"
	"github.com/yeonwoo/jobscout/internal/types"
)

const (
	defaultListLimit = 10

	// recommendScoreFloor filters recommendations a second time on score,
	// so a stored apply_yn=true row below the threshold never surfaces.
	recommendScoreFloor = 70

	// descriptionLogLimit keeps job descriptions short in audit entries.
	descriptionLogLimit = 80
)

// postingColumns is the uniform read shape: optional columns come back as
// empty strings, never NULL.
const postingColumns = `id, company_name, job_title,
	COALESCE(job_location, ''), COALESCE(job_type, ''), COALESCE(job_salary, ''),
	COALESCE(deadline, ''), COALESCE(employment_type, ''), COALESCE(job_url, ''),
	COALESCE(company_type, ''), COALESCE(job_description, ''), scraped_at`

// SavePosting inserts a new posting with is_applied and is_gpt_checked
// defaulting to false, returning the assigned id. Constraint violations
// (duplicate job_url) are logged and returned as a *PersistenceError so the
// caller can skip the item; callers should pre-filter with ExistingURLs.
func (db *DB) SavePosting(ctx context.Context, p *types.ScrapedPosting) (int64, error) {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	scrapedAt := time.Now()
	if p.ScrapedAt != "" {
		if t, err := time.Parse(time.RFC3339, p.ScrapedAt); err == nil {
			scrapedAt = t
		}
	}

	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (company_name, job_title, job_location, job_type,
		                           job_salary, deadline, employment_type, job_url,
		                           company_type, job_description, scraped_at,
		                           is_applied, is_gpt_checked)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, false, false)
		 RETURNING id`,
		p.CompanyName, p.JobTitle, p.JobLocation, p.JobType,
		p.JobSalary, p.Deadline, p.EmploymentType, p.URL,
		p.CompanyType, p.JobDescription, scrapedAt,
	).Scan(&id)
	if err != nil {
		db.log.Error("failed to save posting",
			zap.String("company", p.CompanyName),
			zap.String("title", p.JobTitle),
			zap.String("url", p.URL),
			zap.Error(err),
		)
		return 0, &PersistenceError{Op: "save", Cause: err}
	}

	db.log.Debug("posting saved",
		zap.Int64("id", id),
		zap.String("company", p.CompanyName),
		zap.String("title", p.JobTitle),
		zap.String("description", logger.TruncateForLog(p.JobDescription, descriptionLogLimit)),
	)
	return id, nil
}

// ExistingURLs returns the subset of urls already stored. Empty input
// returns an empty set without touching the database. Query failures are
// logged and degrade to an empty set.
func (db *DB) ExistingURLs(ctx context.Context, urls []string) map[string]bool {
	existing := make(map[string]bool)
	if len(urls) == 0 {
		return existing
	}

	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx,
		`SELECT job_url FROM job_postings WHERE job_url = ANY($1)`,
		urls,
	)
	if err != nil {
		db.log.Error("failed to check existing urls", zap.Int("count", len(urls)), zap.Error(err))
		return existing
	}
	defer rows.Close()

	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			db.log.Error("failed to scan url", zap.Error(err))
			return map[string]bool{}
		}
		existing[url] = true
	}
	return existing
}

// RecentPostings retrieves postings newest-first by scrape time. Failures
// are logged and degrade to nil.
func (db *DB) RecentPostings(ctx context.Context, limit int) []types.Posting {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return db.listPostings(ctx, "recent",
		`SELECT `+postingColumns+`
		 FROM job_postings ORDER BY scraped_at DESC LIMIT $1`, limit)
}

// PendingPostings retrieves postings not yet scored, oldest scrape first so
// a backlog drains in arrival order.
func (db *DB) PendingPostings(ctx context.Context, limit int) []types.Posting {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return db.listPostings(ctx, "pending",
		`SELECT `+postingColumns+`
		 FROM job_postings WHERE is_gpt_checked = false
		 ORDER BY scraped_at ASC LIMIT $1`, limit)
}

func (db *DB) listPostings(ctx context.Context, op, query string, limit int) []types.Posting {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx, query, limit)
	if err != nil {
		db.log.Error("failed to list postings", zap.String("op", op), zap.Error(err))
		return nil
	}
	defer rows.Close()

	var postings []types.Posting
	for rows.Next() {
		var p types.Posting
		if err := rows.Scan(&p.ID, &p.CompanyName, &p.JobTitle,
			&p.JobLocation, &p.JobType, &p.JobSalary,
			&p.Deadline, &p.EmploymentType, &p.URL,
			&p.CompanyType, &p.JobDescription, &p.ScrapedAt); err != nil {
			db.log.Error("failed to scan posting", zap.String("op", op), zap.Error(err))
			return nil
		}
		postings = append(postings, p)
	}
	return postings
}

// RecordMatchResult writes scoring output onto a posting: overwrites
// match_score, match_reason and is_recommended, marks it checked, and
// updates strength/weakness only when provided (nil leaves the stored
// value untouched). Returns false when the id does not exist or the update
// fails; both outcomes are logged and non-fatal.
func (db *DB) RecordMatchResult(ctx context.Context, id int64, score int, reason string, recommended bool, strength, weakness *string) bool {
	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	tag, err := db.pool.Exec(ctx,
		`UPDATE job_postings
		 SET match_score = $2,
		     match_reason = $3,
		     is_recommended = $4,
		     is_gpt_checked = true,
		     strength = COALESCE($5, strength),
		     weakness = COALESCE($6, weakness)
		 WHERE id = $1`,
		id, score, reason, recommended, strength, weakness,
	)
	if err != nil {
		db.log.Error("failed to record match result", zap.Int64("id", id), zap.Error(err))
		return false
	}
	if tag.RowsAffected() == 0 {
		db.log.Warn("no posting found for match result", zap.Int64("id", id))
		return false
	}

	db.log.Debug("match result recorded",
		zap.Int64("id", id),
		zap.Int("score", score),
		zap.Bool("recommended", recommended),
	)
	return true
}

// RecommendedPostings retrieves scored postings marked recommended with a
// score of at least 70, best first. Failures degrade to nil.
func (db *DB) RecommendedPostings(ctx context.Context, limit int) []RecommendedPosting {
	if limit <= 0 {
		limit = defaultListLimit
	}

	ctx, cancel := db.opCtx(ctx)
	defer cancel()

	rows, err := db.pool.Query(ctx,
		`SELECT id, match_score, COALESCE(match_reason, ''), COALESCE(strength, ''),
		        COALESCE(weakness, ''), is_recommended,
		        company_name, job_title, COALESCE(job_location, ''),
		        COALESCE(company_type, ''), COALESCE(job_url, '')
		 FROM job_postings
		 WHERE is_gpt_checked = true AND is_recommended = true AND match_score >= $1
		 ORDER BY match_score DESC
		 LIMIT $2`,
		recommendScoreFloor, limit,
	)
	if err != nil {
		db.log.Error("failed to list recommended postings", zap.Error(err))
		return nil
	}
	defer rows.Close()

	var recs []RecommendedPosting
	for rows.Next() {
		var r RecommendedPosting
		if err := rows.Scan(&r.ID, &r.Score, &r.Reason, &r.Strength,
			&r.Weakness, &r.ApplyYN,
			&r.CompanyName, &r.JobTitle, &r.JobLocation,
			&r.CompanyType, &r.URL); err != nil {
			db.log.Error("failed to scan recommended posting", zap.Error(err))
			return nil
		}
		recs = append(recs, r)
	}
	return recs
}
