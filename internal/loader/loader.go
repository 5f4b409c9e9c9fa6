package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"teaching-export/internal/domain"
)

// LoadRecords reads the course history export at path: a JSON array of objects.
func LoadRecords(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open input: %w", err)
	}
	defer f.Close()

	recs, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return recs, nil
}

func DecodeRecords(r io.Reader) ([]domain.RawRecord, error) {
	var recs []domain.RawRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return recs, nil
}
