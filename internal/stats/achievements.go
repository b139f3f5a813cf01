package stats

import (
	"math"
	"time"

	"github.com/mfinn/pulse/pkg/habit"
)

// Achievement is one milestone with its unlock state and, where it has a
// measurable target, the current progress toward it.
type Achievement struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unlocked    bool    `json:"unlocked"`
	Progress    float64 `json:"progress,omitempty"`
	Target      float64 `json:"target,omitempty"`
}

// AchievementSet splits the milestone table into what is already earned and
// the next few still ahead.
type AchievementSet struct {
	Unlocked []Achievement `json:"unlocked"`
	Upcoming []Achievement `json:"upcoming"`
}

const upcomingLimit = 3

// milestoneTotals are the aggregate figures the milestone table keys off.
type milestoneTotals struct {
	habits        int
	longestStreak int
	completions   float64
}

type milestone struct {
	id          string
	name        string
	description string
	unlocked    func(milestoneTotals) bool
	progress    func(milestoneTotals) float64
	target      float64
}

// milestones is ordered: Upcoming preserves this order.
var milestones = []milestone{
	{
		id:          "first-habit",
		name:        "Getting Started",
		description: "Create your first habit",
		unlocked:    func(t milestoneTotals) bool { return t.habits >= 1 },
	},
	{
		id:          "habit-collector",
		name:        "Habit Collector",
		description: "Create 5 different habits",
		unlocked:    func(t milestoneTotals) bool { return t.habits >= 5 },
		progress:    func(t milestoneTotals) float64 { return float64(t.habits) },
		target:      5,
	},
	{
		id:          "week-warrior",
		name:        "Week Warrior",
		description: "Maintain a 7-day streak",
		unlocked:    func(t milestoneTotals) bool { return t.longestStreak >= 7 },
		progress:    func(t milestoneTotals) float64 { return math.Min(float64(t.longestStreak), 7) },
		target:      7,
	},
	{
		id:          "consistency-king",
		name:        "Consistency King",
		description: "Maintain a 30-day streak",
		unlocked:    func(t milestoneTotals) bool { return t.longestStreak >= 30 },
		progress:    func(t milestoneTotals) float64 { return math.Min(float64(t.longestStreak), 30) },
		target:      30,
	},
	{
		id:          "centurion",
		name:        "Centurion",
		description: "Complete 100 habit actions",
		unlocked:    func(t milestoneTotals) bool { return t.completions >= 100 },
		progress:    func(t milestoneTotals) float64 { return math.Min(t.completions, 100) },
		target:      100,
	},
}

func tally(habits []habit.Habit, today time.Time) milestoneTotals {
	t := milestoneTotals{habits: len(habits)}
	for _, h := range habits {
		t.longestStreak = max(t.longestStreak, Streak(h, today))
		for _, c := range h.Completions {
			t.completions += c.Value
		}
	}
	return t
}

// Evaluate walks the milestone table against the collection's aggregate
// figures. Streaks are evaluated as of today.
func Evaluate(habits []habit.Habit, today time.Time) AchievementSet {
	totals := tally(habits, today)

	set := AchievementSet{
		Unlocked: []Achievement{},
		Upcoming: []Achievement{},
	}
	for _, m := range milestones {
		a := Achievement{
			ID:          m.id,
			Name:        m.name,
			Description: m.description,
			Unlocked:    m.unlocked(totals),
			Target:      m.target,
		}
		if m.progress != nil {
			a.Progress = m.progress(totals)
		}
		if a.Unlocked {
			set.Unlocked = append(set.Unlocked, a)
		} else if len(set.Upcoming) < upcomingLimit {
			set.Upcoming = append(set.Upcoming, a)
		}
	}
	return set
}
