// Package stats computes aggregate and per-night statistics from the
// session log. Aggregation is read-only and safe to run at any time.
package stats

import (
	"sort"

	"github.com/Tannerbraithwaite/nightlog/internal/store"
)

// Night is one night bucket of the report.
type Night struct {
	Key          string
	TotalSeconds int64
	Sessions     int
	AvgSeconds   float64
}

// Report is the aggregated view of the whole session log.
type Report struct {
	TotalSessions int
	TotalSeconds  int64
	TotalHours    float64
	Nights        []Night // reverse-chronological by night key
	AvgPerNight   float64 // seconds; 0 when no nights
}

// Empty reports whether there is any data to show.
func (r Report) Empty() bool {
	return r.TotalSessions == 0
}

// Aggregate builds a Report from the session log. The input is never
// mutated. An empty log yields a zero Report; no ratios are computed.
func Aggregate(sessions []store.Session) Report {
	var r Report
	if len(sessions) == 0 {
		return r
	}

	buckets := make(map[string][]int64)
	for _, s := range sessions {
		r.TotalSeconds += s.DurationSeconds
		buckets[s.Night] = append(buckets[s.Night], s.DurationSeconds)
	}
	r.TotalSessions = len(sessions)
	r.TotalHours = float64(r.TotalSeconds) / 3600

	for key, durations := range buckets {
		var total int64
		for _, d := range durations {
			total += d
		}
		r.Nights = append(r.Nights, Night{
			Key:          key,
			TotalSeconds: total,
			Sessions:     len(durations),
			AvgSeconds:   float64(total) / float64(len(durations)),
		})
	}

	sort.Slice(r.Nights, func(i, j int) bool {
		return r.Nights[i].Key > r.Nights[j].Key
	})

	r.AvgPerNight = float64(r.TotalSeconds) / float64(len(r.Nights))
	return r
}
