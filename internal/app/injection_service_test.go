package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dosetrack/internal/app"
)

func TestLogInjection_Today(t *testing.T) {
	store := newMockStore()
	tr := newTracker(t, store)

	entry, logged, err := tr.LogInjection(context.Background(), "", "abdomen-lower-left", 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !logged {
		t.Fatal("expected logged=true")
	}
	if entry.ID != "id-1" || !entry.Date.Equal(now) || entry.Dose != 2.5 {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Time != "12:00:00 PM" {
		t.Errorf("expected display time, got %q", entry.Time)
	}
	if saved := store.saved(t); len(saved.InjectionLogs) != 1 {
		t.Errorf("expected log persisted, got %v", saved.InjectionLogs)
	}
}

func TestLogInjection_PastDayKeepsTimeOfDay(t *testing.T) {
	tr := newTracker(t, newMockStore())

	entry, _, err := tr.LogInjection(context.Background(), "2026-03-10", "abdomen-upper-right", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if !entry.Date.Equal(want) {
		t.Errorf("date = %v; want %v", entry.Date, want)
	}
}

func TestLogInjection_NoOp(t *testing.T) {
	tests := []struct {
		name string
		site string
		dose float64
	}{
		{"no site", "", 2},
		{"unknown site", "thigh-left", 2},
		{"zero dose", "abdomen-upper-right", 0},
		{"negative dose", "abdomen-upper-right", -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMockStore()
			tr := newTracker(t, store)
			_, logged, err := tr.LogInjection(context.Background(), "", tc.site, tc.dose)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if logged {
				t.Fatal("expected logged=false")
			}
			if store.puts != 0 {
				t.Errorf("expected no save, got %d", store.puts)
			}
		})
	}
}

func TestLogInjection_InvalidDate(t *testing.T) {
	tr := newTracker(t, newMockStore())
	_, _, err := tr.LogInjection(context.Background(), "03/10/2026", "abdomen-upper-right", 2)
	if !errors.Is(err, app.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestInjections_MostRecentFirst(t *testing.T) {
	tr := newTracker(t, newMockStore())
	ctx := context.Background()
	for _, day := range []string{"2026-03-12", "2026-03-15", "2026-03-09"} {
		if _, _, err := tr.LogInjection(ctx, day, "abdomen-upper-right", 2); err != nil {
			t.Fatalf("LogInjection: %v", err)
		}
	}

	logs := tr.Injections()
	var days []string
	for _, l := range logs {
		days = append(days, l.Date.Format("2006-01-02"))
	}
	want := []string{"2026-03-15", "2026-03-12", "2026-03-09"}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("order = %v; want %v", days, want)
		}
	}
}

func TestDeleteInjection(t *testing.T) {
	store := newMockStore()
	tr := newTracker(t, store)
	ctx := context.Background()
	entry, _, _ := tr.LogInjection(ctx, "", "abdomen-upper-right", 2)

	deleted, err := tr.DeleteInjection(ctx, "missing")
	if err != nil || deleted {
		t.Fatalf("expected no-op for unknown id, got deleted=%v err=%v", deleted, err)
	}
	puts := store.puts

	deleted, err = tr.DeleteInjection(ctx, entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected deleted=true")
	}
	if len(tr.Injections()) != 0 {
		t.Error("expected no logs left")
	}
	if store.puts != puts+1 {
		t.Errorf("expected one save for the delete, got %d", store.puts-puts)
	}
}
