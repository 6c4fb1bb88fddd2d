package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dosetrack/internal/codec"
	"dosetrack/internal/domain"
)

// Export renders the current state as a document and names the file it
// should be saved as.
func (t *Tracker) Export() ([]byte, string, error) {
	b, err := codec.Encode(t.Snapshot())
	if err != nil {
		return nil, "", err
	}
	return b, codec.ExportFilename(t.now()), nil
}

// Import replaces the state with an exported document. Missing lists become
// empty while a missing schedule or calculator keeps the current value. The
// names of fields that were not taken from the document are returned.
func (t *Tracker) Import(ctx context.Context, data []byte) ([]string, error) {
	var defaulted []string
	_, err := t.update(ctx, func(s *domain.Snapshot) (bool, error) {
		fallback := s.Clone()
		fallback.InjectionLogs = []domain.InjectionLog{}
		fallback.WeightEntries = []domain.WeightEntry{}

		next, fields, err := codec.Decode(data, fallback)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrImportFormat, err)
		}
		*s = next
		defaulted = fields
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if len(defaulted) > 0 {
		log.Printf("import: defaulted fields: %s", strings.Join(defaulted, ", "))
	}
	return defaulted, nil
}
