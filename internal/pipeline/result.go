package pipeline

import (
	"github.com/google/uuid"

	"github.com/tkaraca/icra-analiz/constants"
	"github.com/tkaraca/icra-analiz/internal/deadline"
	"github.com/tkaraca/icra-analiz/internal/extract"
	"github.com/tkaraca/icra-analiz/internal/garnishee"
	"github.com/tkaraca/icra-analiz/internal/notice"
)

// DocumentResult pairs a document with its category and, for 89/x answers,
// the parsed response.
type DocumentResult struct {
	Document extract.Document    `json:"document"`
	Category constants.Category  `json:"category"`
	Response *garnishee.Response `json:"response,omitempty"`
}

// BatchResult is everything one batch run derived. A plain value: it can be
// discarded and rebuilt from the same inputs, serialized losslessly, and
// merged from partial runs.
type BatchResult struct {
	BatchID   uuid.UUID         `json:"batch_id"`
	Documents []DocumentResult  `json:"documents"`
	Skipped   []extract.Skipped `json:"skipped"`
	Stats     extract.ScanStats `json:"stats"`
	Notices   notice.Summary    `json:"notices"`
	Deadlines deadline.Report   `json:"deadlines"`
}

// Responses returns every parsed garnishee response in document order.
func (b *BatchResult) Responses() []garnishee.Response {
	var out []garnishee.Response
	for _, dr := range b.Documents {
		if dr.Response != nil {
			out = append(out, *dr.Response)
		}
	}
	return out
}

// CategoryCounts buckets the batch's documents per category.
func (b *BatchResult) CategoryCounts() map[constants.Category]int {
	counts := make(map[constants.Category]int)
	for _, dr := range b.Documents {
		counts[dr.Category]++
	}
	return counts
}
