package habit

import "time"

// Habit is a user-defined recurring goal. The ID is assigned on creation and
// never changes; edits only touch the descriptive fields.
type Habit struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Target      int          `json:"target"`
	Frequency   string       `json:"frequency"`
	Color       string       `json:"color"`
	CreatedAt   time.Time    `json:"created_at"`
	Completions []Completion `json:"completions"`
}

// Completion records the cumulative amount logged against a habit on one
// calendar day. There is at most one Completion per (habit, date).
type Completion struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Frequency values accepted on a Habit.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Reminder is a stored notification schedule for a habit. Days holds weekday
// codes ("mon".."sun").
type Reminder struct {
	ID      string   `json:"id"`
	HabitID string   `json:"habitId"`
	Time    string   `json:"time"`
	Enabled bool     `json:"enabled"`
	Days    []string `json:"days"`
}
