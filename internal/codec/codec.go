// Package codec converts snapshots to and from the JSON document used for
// persistence and for file import/export.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dosetrack/internal/domain"
)

// ExportPrefix is the file name prefix of exported documents.
const ExportPrefix = "retatrutide-data"

// Top-level document keys.
const (
	FieldInjectionLogs   = "injectionLogs"
	FieldWeightEntries   = "weightEntries"
	FieldSchedule        = "schedule"
	FieldLastCalculation = "lastCalculation"
)

// ErrMalformed means the document is not a JSON object at all.
var ErrMalformed = errors.New("malformed snapshot document")

// Encode renders the snapshot as indented UTF-8 JSON.
func Encode(s domain.Snapshot) ([]byte, error) {
	b, err := json.MarshalIndent(s.Clone(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Decode parses a snapshot document. Each top-level field is taken from
// the document only if it is present and valid; otherwise the value from
// fallback is kept. Log and entry records without an id or a parsable
// date are skipped and the rest of the list is kept. The names of fields
// that fell back or lost records are returned.
//
// Only a document that is not a JSON object yields an error.
func Decode(data []byte, fallback domain.Snapshot) (domain.Snapshot, []string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.Snapshot{}, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if fields == nil {
		return domain.Snapshot{}, nil, fmt.Errorf("%w: document is null", ErrMalformed)
	}

	out := fallback.Clone()
	var defaulted []string

	if logs, ok := decodeLogs(fields[FieldInjectionLogs]); logs != nil {
		out.InjectionLogs = logs
		if !ok {
			defaulted = append(defaulted, FieldInjectionLogs)
		}
	} else {
		defaulted = append(defaulted, FieldInjectionLogs)
	}
	if entries, ok := decodeEntries(fields[FieldWeightEntries]); entries != nil {
		out.WeightEntries = entries
		if !ok {
			defaulted = append(defaulted, FieldWeightEntries)
		}
	} else {
		defaulted = append(defaulted, FieldWeightEntries)
	}
	if sched, ok := decodeSchedule(fields[FieldSchedule]); ok {
		out.Schedule = sched
	} else {
		defaulted = append(defaulted, FieldSchedule)
	}
	if calc, ok := decodeCalculator(fields[FieldLastCalculation]); ok {
		out.LastCalculation = calc
	} else {
		defaulted = append(defaulted, FieldLastCalculation)
	}
	return out, defaulted, nil
}

// ExportFilename is the download name for a document exported at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("%s-%s.json", ExportPrefix, now.Format(domain.DayLayout))
}

func absent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeLogs(raw json.RawMessage) ([]domain.InjectionLog, bool) {
	if absent(raw) {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	logs := make([]domain.InjectionLog, 0, len(items))
	for _, item := range items {
		var l domain.InjectionLog
		if err := json.Unmarshal(item, &l); err != nil || l.ID == "" || l.Date.IsZero() {
			continue
		}
		logs = append(logs, l)
	}
	domain.SortLogsDesc(logs)
	return logs, len(logs) == len(items)
}

func decodeEntries(raw json.RawMessage) ([]domain.WeightEntry, bool) {
	if absent(raw) {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	entries := make([]domain.WeightEntry, 0, len(items))
	for _, item := range items {
		var e domain.WeightEntry
		if err := json.Unmarshal(item, &e); err != nil || e.ID == "" || e.Date.IsZero() {
			continue
		}
		entries = append(entries, e)
	}
	domain.SortEntriesAsc(entries)
	return entries, len(entries) == len(items)
}

func decodeSchedule(raw json.RawMessage) (domain.ScheduleConfig, bool) {
	if absent(raw) {
		return domain.ScheduleConfig{}, false
	}
	var sched domain.ScheduleConfig
	if err := json.Unmarshal(raw, &sched); err != nil {
		return domain.ScheduleConfig{}, false
	}
	if err := sched.Validate(); err != nil {
		return domain.ScheduleConfig{}, false
	}
	return sched.Canonical(), true
}

func decodeCalculator(raw json.RawMessage) (domain.CalculatorInputs, bool) {
	if absent(raw) {
		return domain.CalculatorInputs{}, false
	}
	var calc domain.CalculatorInputs
	if err := json.Unmarshal(raw, &calc); err != nil {
		return domain.CalculatorInputs{}, false
	}
	return calc, true
}
