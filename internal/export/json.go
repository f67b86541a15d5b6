package export

import (
	"encoding/json"
	"fmt"

	"github.com/tkaraca/icra-analiz/internal/pipeline"
)

// WriteJSON returns the batch result as indented JSON. Everything in the
// result is a plain value, so the dump round-trips without loss.
func (s *Service) WriteJSON(batch *pipeline.BatchResult) ([]byte, error) {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	s.logger.Info("export.json.ok", "batch_id", batch.BatchID.String(), "bytes", len(data))
	return data, nil
}
