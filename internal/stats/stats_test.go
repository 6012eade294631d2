package stats

import (
	"testing"
	"time"

	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

func session(t *testing.T, night string, durationSecs int64) store.Session {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", night, time.Local)
	if err != nil {
		t.Fatalf("parse night %q: %v", night, err)
	}
	start := day.Add(20 * time.Hour) // 8 PM, safely inside the night
	return store.NewSession(start, start.Add(time.Duration(durationSecs)*time.Second))
}

func TestAggregateEmpty(t *testing.T) {
	r := Aggregate(nil)
	if !r.Empty() {
		t.Fatal("empty input should produce an empty report")
	}
	if r.TotalSessions != 0 || r.TotalSeconds != 0 || r.AvgPerNight != 0 {
		t.Fatalf("empty report has non-zero fields: %+v", r)
	}
	if len(r.Nights) != 0 {
		t.Fatal("empty report should have no nights")
	}
}

func TestAggregateTotalsAndAverages(t *testing.T) {
	sessions := []store.Session{
		session(t, "2024-01-01", 3600),
		session(t, "2024-01-01", 1800),
		session(t, "2024-01-02", 900),
	}

	r := Aggregate(sessions)

	if r.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", r.TotalSessions)
	}
	if r.TotalSeconds != 6300 {
		t.Errorf("TotalSeconds = %d, want 6300", r.TotalSeconds)
	}
	if len(r.Nights) != 2 {
		t.Fatalf("expected 2 nights, got %d", len(r.Nights))
	}

	// Reverse-chronological by night key.
	if r.Nights[0].Key != "2024-01-02" || r.Nights[1].Key != "2024-01-01" {
		t.Fatalf("nights not sorted descending: %+v", r.Nights)
	}

	jan1 := r.Nights[1]
	if jan1.TotalSeconds != 5400 {
		t.Errorf("night 2024-01-01 total = %d, want 5400", jan1.TotalSeconds)
	}
	if jan1.Sessions != 2 {
		t.Errorf("night 2024-01-01 sessions = %d, want 2", jan1.Sessions)
	}
	if jan1.AvgSeconds != 2700 {
		t.Errorf("night 2024-01-01 avg = %v, want 2700", jan1.AvgSeconds)
	}

	if r.AvgPerNight != 3150 {
		t.Errorf("AvgPerNight = %v, want 3150", r.AvgPerNight)
	}
}

func TestAggregateSingleNight(t *testing.T) {
	r := Aggregate([]store.Session{session(t, "2024-05-10", 600)})
	if len(r.Nights) != 1 {
		t.Fatalf("expected 1 night, got %d", len(r.Nights))
	}
	if r.AvgPerNight != 600 {
		t.Errorf("AvgPerNight = %v, want 600", r.AvgPerNight)
	}
	if r.TotalHours != 600.0/3600 {
		t.Errorf("TotalHours = %v", r.TotalHours)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	sessions := []store.Session{
		session(t, "2024-01-02", 900),
		session(t, "2024-01-01", 3600),
	}
	before := make([]store.Session, len(sessions))
	copy(before, sessions)

	Aggregate(sessions)

	for i := range sessions {
		if sessions[i] != before[i] {
			t.Fatalf("input mutated at %d: %+v != %+v", i, sessions[i], before[i])
		}
	}
}
