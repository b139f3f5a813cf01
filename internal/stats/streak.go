package stats

import (
	"time"

	"github.com/mfinn/pulse/pkg/habit"
)

// streakLookbackDays bounds the backward walk; streaks longer than this are
// reported as the window size.
const streakLookbackDays = 30

// FindCompletion returns the completion recorded for the given day, if any.
// Linear scan: per-habit histories stay small in practice.
func FindCompletion(h habit.Habit, dayKey string) (habit.Completion, bool) {
	for _, c := range h.Completions {
		if c.Date == dayKey {
			return c, true
		}
	}
	return habit.Completion{}, false
}

func met(h habit.Habit, dayKey string) bool {
	c, ok := FindCompletion(h, dayKey)
	return ok && c.Value >= float64(h.Target)
}

// Streak computes the current consecutive-day streak for a habit, walking
// backward from today. An unmet today does not break the chain (the day is
// still in progress); any unmet earlier day ends it.
func Streak(h habit.Habit, today time.Time) int {
	if len(h.Completions) == 0 {
		return 0
	}

	streak := 0
	for i := 0; i < streakLookbackDays; i++ {
		key := DayKey(DaysBefore(today, i))
		switch {
		case met(h, key):
			streak++
		case i == 0:
			// today is in progress, keep checking older days
		default:
			return streak
		}
	}
	return streak
}
