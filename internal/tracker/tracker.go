package tracker

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mfinn/pulse/internal/stats"
	"github.com/mfinn/pulse/internal/storage"
	"github.com/mfinn/pulse/pkg/habit"
)

var ErrNotFound = errors.New("not found")

// Tracker is the single owner of the habit and reminder collections. Every
// mutation builds a replacement slice, swaps it in, then commits it to the
// store, so readers always observe a fully-formed state and persistence is
// an explicit step rather than a hidden side effect.
type Tracker struct {
	store storage.Store

	// Now is the clock used for creation timestamps and completion day
	// keys. Overridable in tests.
	Now func() time.Time

	habits    []habit.Habit
	reminders []habit.Reminder
}

// HabitInput carries the user-editable fields of a habit. Identity,
// creation time, and completion history are owned by the tracker.
type HabitInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Target      int    `json:"target"`
	Frequency   string `json:"frequency"`
	Color       string `json:"color"`
}

// Load builds a tracker from the store's current contents.
func Load(store storage.Store) (*Tracker, error) {
	habits, err := store.LoadHabits()
	if err != nil {
		return nil, err
	}
	reminders, err := store.LoadReminders()
	if err != nil {
		return nil, err
	}
	return &Tracker{
		store:     store,
		Now:       time.Now,
		habits:    habits,
		reminders: reminders,
	}, nil
}

// Habits returns a fresh copy of the collection; callers never share the
// tracker's backing slice.
func (t *Tracker) Habits() []habit.Habit {
	return append([]habit.Habit(nil), t.habits...)
}

func (t *Tracker) Habit(id string) (habit.Habit, error) {
	for _, h := range t.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return habit.Habit{}, ErrNotFound
}

func (t *Tracker) AddHabit(in HabitInput) (habit.Habit, error) {
	h := habit.Habit{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Target:      in.Target,
		Frequency:   in.Frequency,
		Color:       in.Color,
		CreatedAt:   t.Now(),
	}

	next := append(t.Habits(), h)
	if err := t.commitHabits(next); err != nil {
		return habit.Habit{}, err
	}
	return h, nil
}

// UpdateHabit replaces the descriptive fields of an existing habit. ID,
// CreatedAt, and Completions survive the edit.
func (t *Tracker) UpdateHabit(id string, in HabitInput) (habit.Habit, error) {
	next := t.Habits()
	for i, h := range next {
		if h.ID != id {
			continue
		}
		h.Name = in.Name
		h.Description = in.Description
		h.Category = in.Category
		h.Target = in.Target
		h.Frequency = in.Frequency
		h.Color = in.Color
		next[i] = h
		if err := t.commitHabits(next); err != nil {
			return habit.Habit{}, err
		}
		return h, nil
	}
	return habit.Habit{}, ErrNotFound
}

// DeleteHabit removes a habit along with its completion history and any
// reminders pointing at it.
func (t *Tracker) DeleteHabit(id string) error {
	next := make([]habit.Habit, 0, len(t.habits))
	found := false
	for _, h := range t.habits {
		if h.ID == id {
			found = true
			continue
		}
		next = append(next, h)
	}
	if !found {
		return ErrNotFound
	}
	if err := t.commitHabits(next); err != nil {
		return err
	}

	remaining := make([]habit.Reminder, 0, len(t.reminders))
	for _, r := range t.reminders {
		if r.HabitID != id {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) != len(t.reminders) {
		return t.commitReminders(remaining)
	}
	return nil
}

// RecordCompletion logs amount against the habit's record for today. A
// repeat on the same day accumulates into the existing record, keeping at
// most one completion per day.
func (t *Tracker) RecordCompletion(id string, amount float64) (habit.Habit, error) {
	key := stats.DayKey(t.Now())

	next := t.Habits()
	for i, h := range next {
		if h.ID != id {
			continue
		}

		completions := append([]habit.Completion(nil), h.Completions...)
		merged := false
		for j, c := range completions {
			if c.Date == key {
				completions[j].Value = c.Value + amount
				merged = true
				break
			}
		}
		if !merged {
			completions = append(completions, habit.Completion{Date: key, Value: amount})
		}

		h.Completions = completions
		next[i] = h
		if err := t.commitHabits(next); err != nil {
			return habit.Habit{}, err
		}
		return h, nil
	}
	return habit.Habit{}, ErrNotFound
}

func (t *Tracker) commitHabits(next []habit.Habit) error {
	if err := t.store.SaveHabits(next); err != nil {
		return err
	}
	t.habits = next
	return nil
}

func (t *Tracker) commitReminders(next []habit.Reminder) error {
	if err := t.store.SaveReminders(next); err != nil {
		return err
	}
	t.reminders = next
	return nil
}
