package server

import (
	"github.com/mfinn/pulse/internal/stats"
	"github.com/mfinn/pulse/pkg/habit"
)

// HabitView is a habit decorated with its derived per-habit figures, the
// shape the card grid renders from.
type HabitView struct {
	habit.Habit
	Streak        int     `json:"streak"`
	TodayProgress float64 `json:"today_progress"`
	Completed     bool    `json:"completed"`
}

type HabitListResponse struct {
	Habits []HabitView `json:"habits"`
}

type CategoryStatsResponse struct {
	Rates map[string]stats.CategoryRate `json:"rates"`
	Loads map[string]stats.CategoryLoad `json:"loads"`
}

type ReminderListResponse struct {
	Reminders []habit.Reminder `json:"reminders"`
}
