package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"tokenscan/pkg/models"
)

// Sink persists the final record set.
type Sink interface {
	Save(tokens []models.Token) error
}

// JSONSink writes the result as a single indent-formatted JSON array,
// overwriting the destination file. Nothing is written until the whole
// pipeline has finished, so a failed run never leaves a partial file.
type JSONSink struct {
	Path string
}

func (s JSONSink) Save(tokens []models.Token) error {
	if tokens == nil {
		// A run with zero valid records still produces "[]".
		tokens = []models.Token{}
	}

	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tokens: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}
