package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shivani7798/JobSpy/internal/models"
)

// WriteJSON serializes the result set as one top-level array of records in
// original row order. Every record carries the full canonical field set:
// absent values are written as explicit nulls, not omitted keys, so each
// record has the same schema regardless of which fields the source board
// happened to fill in.
func WriteJSON(path string, rs models.ResultSet) error {
	if rs == nil {
		rs = models.ResultSet{}
	}
	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal listings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadJSON loads a result set previously written by WriteJSON (or any file
// in the same shape). Nulls come back as nil fields, numbers stay numbers.
func ReadJSON(path string) (models.ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var rs models.ResultSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rs, nil
}
