package stats

import (
	"math"
	"sort"
	"time"

	"github.com/mfinn/pulse/pkg/habit"
)

// TodayProgress returns the amount logged against a habit today, 0 if none.
func TodayProgress(h habit.Habit, today time.Time) float64 {
	c, ok := FindCompletion(h, DayKey(today))
	if !ok {
		return 0
	}
	return c.Value
}

// CompletionRateToday returns the percentage of habits whose target is met
// today, rounded to the nearest integer. 0 for an empty collection.
func CompletionRateToday(habits []habit.Habit, today time.Time) int {
	if len(habits) == 0 {
		return 0
	}
	key := DayKey(today)
	completed := 0
	for _, h := range habits {
		if met(h, key) {
			completed++
		}
	}
	return roundPercent(float64(completed), float64(len(habits)))
}

// CategoryRate is the fraction of a category's habits whose target is met
// today.
type CategoryRate struct {
	Met   int     `json:"met"`
	Total int     `json:"total"`
	Rate  float64 `json:"rate"`
}

// CategoryRates groups habits by category label. Only categories present in
// the collection appear as keys.
func CategoryRates(habits []habit.Habit, today time.Time) map[string]CategoryRate {
	key := DayKey(today)
	out := map[string]CategoryRate{}
	for _, h := range habits {
		r := out[h.Category]
		r.Total++
		if met(h, key) {
			r.Met++
		}
		out[h.Category] = r
	}
	for cat, r := range out {
		r.Rate = float64(r.Met) / float64(r.Total)
		out[cat] = r
	}
	return out
}

// CategoryLoad is the value-weighted counterpart of CategoryRate: capped
// completion value over summed targets, for habits sharing a category.
type CategoryLoad struct {
	Completed float64 `json:"completed"`
	Target    int     `json:"target"`
	Percent   int     `json:"percent"`
}

// CategoryLoads weighs each habit by its target rather than counting habits
// equally, so a 10-rep habit moves its category more than a 1-rep one.
func CategoryLoads(habits []habit.Habit, today time.Time) map[string]CategoryLoad {
	key := DayKey(today)
	out := map[string]CategoryLoad{}
	for _, h := range habits {
		l := out[h.Category]
		l.Target += h.Target
		if c, ok := FindCompletion(h, key); ok {
			l.Completed += math.Min(c.Value, float64(h.Target))
		}
		out[h.Category] = l
	}
	for cat, l := range out {
		if l.Target > 0 {
			l.Percent = roundPercent(l.Completed, float64(l.Target))
		}
		out[cat] = l
	}
	return out
}

// OverallStats is the dashboard headline block.
type OverallStats struct {
	TotalHabits    int `json:"total_habits"`
	CompletedToday int `json:"completed_today"`
	CompletionRate int `json:"completion_rate"`
	AverageStreak  int `json:"average_streak"`
	LongestStreak  int `json:"longest_streak"`
}

// Overall aggregates today's met count, completion rate, and streak figures
// across the whole collection.
func Overall(habits []habit.Habit, today time.Time) OverallStats {
	key := DayKey(today)
	s := OverallStats{TotalHabits: len(habits)}
	totalStreaks := 0
	for _, h := range habits {
		if met(h, key) {
			s.CompletedToday++
		}
		streak := Streak(h, today)
		totalStreaks += streak
		s.LongestStreak = max(s.LongestStreak, streak)
	}
	if s.TotalHabits > 0 {
		s.CompletionRate = roundPercent(float64(s.CompletedToday), float64(s.TotalHabits))
		s.AverageStreak = int(math.Round(float64(totalStreaks) / float64(s.TotalHabits)))
	}
	return s
}

// sortedCategories gives a stable iteration order over a rate map.
func sortedCategories[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func roundPercent(part, whole float64) int {
	return int(math.Round(part / whole * 100))
}
