package storage

import "github.com/mfinn/pulse/pkg/habit"

// Store persists the two independent application records: the habit
// collection and the reminder configs. Loads on a fresh or unreadable store
// return empty collections, never an error the engine has to handle.
type Store interface {
	SaveHabits(habits []habit.Habit) error
	LoadHabits() ([]habit.Habit, error)
	SaveReminders(reminders []habit.Reminder) error
	LoadReminders() ([]habit.Reminder, error)
	Close() error
}
