package ingestion

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/yeonwoo/jobscout/internal/schemas"
	"github.com/yeonwoo/jobscout/internal/types"
)

// batchSchema is the repo-relative JSON Schema for scraper batches.
var batchSchema = filepath.Join("schemas", "scraped_postings.schema.json")

// DecodeBatch parses a scraper batch: a bare JSON array of posting records.
// When the batch schema can be located it is applied first, so malformed
// batches fail with field-level errors instead of half-decoding.
func DecodeBatch(data []byte) ([]types.ScrapedPosting, error) {
	if schemaPath := schemas.ResolveSchemaPath(batchSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, err
		}
	}

	var batch []types.ScrapedPosting
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch JSON: %w", err)
	}
	return batch, nil
}
