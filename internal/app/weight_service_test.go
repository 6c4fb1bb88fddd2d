package app_test

import (
	"context"
	"errors"
	"testing"

	"dosetrack/internal/app"
)

func TestAddWeight_Validation(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"zero value", 0},
		{"negative value", -5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMockStore()
			tr := newTracker(t, store)
			_, added, err := tr.AddWeight(context.Background(), "", tc.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if added || store.puts != 0 {
				t.Fatalf("expected no-op, added=%v puts=%d", added, store.puts)
			}
		})
	}
}

func TestAddWeight_DefaultsToToday(t *testing.T) {
	tr := newTracker(t, newMockStore())
	entry, added, err := tr.AddWeight(context.Background(), "", 201.4)
	if err != nil || !added {
		t.Fatalf("expected added, got added=%v err=%v", added, err)
	}
	if entry.Date.String() != "2026-03-16" {
		t.Errorf("expected today, got %s", entry.Date)
	}
}

func TestAddWeight_InvalidDate(t *testing.T) {
	tr := newTracker(t, newMockStore())
	_, _, err := tr.AddWeight(context.Background(), "yesterday", 180)
	if !errors.Is(err, app.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestWeights_SortedWithStableTies(t *testing.T) {
	tr := newTracker(t, newMockStore())
	ctx := context.Background()
	adds := []struct {
		day    string
		weight float64
	}{
		{"2026-03-10", 200},
		{"2026-03-01", 205},
		{"2026-03-10", 199},
	}
	for _, a := range adds {
		if _, _, err := tr.AddWeight(ctx, a.day, a.weight); err != nil {
			t.Fatalf("AddWeight: %v", err)
		}
	}

	got := tr.Weights()
	want := []float64{205, 200, 199}
	for i := range want {
		if got[i].Weight != want[i] {
			t.Fatalf("weights = %v; want order %v", got, want)
		}
	}
}

func TestDeleteWeight(t *testing.T) {
	tr := newTracker(t, newMockStore())
	ctx := context.Background()
	entry, _, _ := tr.AddWeight(ctx, "", 190)

	deleted, err := tr.DeleteWeight(ctx, entry.ID)
	if err != nil || !deleted {
		t.Fatalf("expected deleted, got %v %v", deleted, err)
	}
	deleted, err = tr.DeleteWeight(ctx, entry.ID)
	if err != nil || deleted {
		t.Fatalf("expected no-op on second delete, got %v %v", deleted, err)
	}
}
