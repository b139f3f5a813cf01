package tracker

import (
	"github.com/google/uuid"
	"github.com/mfinn/pulse/pkg/habit"
)

// ReminderInput carries the user-editable fields of a reminder config.
// Enabled is a pointer so an update that omits it leaves the stored flag
// alone instead of silently disabling the reminder.
type ReminderInput struct {
	HabitID string   `json:"habitId"`
	Time    string   `json:"time"`
	Enabled *bool    `json:"enabled"`
	Days    []string `json:"days"`
}

func (t *Tracker) Reminders() []habit.Reminder {
	return append([]habit.Reminder(nil), t.reminders...)
}

func (t *Tracker) AddReminder(in ReminderInput) (habit.Reminder, error) {
	if _, err := t.Habit(in.HabitID); err != nil {
		return habit.Reminder{}, err
	}

	r := habit.Reminder{
		ID:      uuid.NewString(),
		HabitID: in.HabitID,
		Time:    in.Time,
		Enabled: true,
		Days:    in.Days,
	}
	next := append(t.Reminders(), r)
	if err := t.commitReminders(next); err != nil {
		return habit.Reminder{}, err
	}
	return r, nil
}

func (t *Tracker) UpdateReminder(id string, in ReminderInput) (habit.Reminder, error) {
	next := t.Reminders()
	for i, r := range next {
		if r.ID != id {
			continue
		}
		if in.HabitID != "" {
			r.HabitID = in.HabitID
		}
		if in.Time != "" {
			r.Time = in.Time
		}
		if in.Days != nil {
			r.Days = in.Days
		}
		if in.Enabled != nil {
			r.Enabled = *in.Enabled
		}
		next[i] = r
		if err := t.commitReminders(next); err != nil {
			return habit.Reminder{}, err
		}
		return r, nil
	}
	return habit.Reminder{}, ErrNotFound
}

func (t *Tracker) DeleteReminder(id string) error {
	next := make([]habit.Reminder, 0, len(t.reminders))
	found := false
	for _, r := range t.reminders {
		if r.ID == id {
			found = true
			continue
		}
		next = append(next, r)
	}
	if !found {
		return ErrNotFound
	}
	return t.commitReminders(next)
}
