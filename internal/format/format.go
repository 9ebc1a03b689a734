// Package format shapes evaluator output into the record consumed by
// external tooling.
package format

import (
	"encoding/json"

	"github.com/yeonwoo/jobscout/internal/types"
)

// Record is the externally-consumed result shape. The JSON keys are a wire
// contract and must not change.
type Record struct {
	ID       int64  `json:"id"`
	Score    int    `json:"score"`
	Reason   string `json:"reason"`
	Strength string `json:"strength"`
	Weakness string `json:"weakness"`
	ApplyYN  bool   `json:"apply_yn"`
}

// FromEvaluation maps an evaluation onto the external record for the given
// posting id.
func FromEvaluation(id int64, ev *types.Evaluation) Record {
	return Record{
		ID:       id,
		Score:    ev.Score,
		Reason:   ev.Reason,
		Strength: ev.Strength,
		Weakness: ev.Weakness,
		ApplyYN:  ev.Apply,
	}
}

// MarshalBatch serializes records as a bare JSON array with no surrounding
// prose. An empty batch serializes as [].
func MarshalBatch(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}
