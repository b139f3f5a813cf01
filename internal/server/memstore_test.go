package server

import (
	"sync"

	"github.com/mfinn/pulse/internal/storage"
	"github.com/mfinn/pulse/pkg/habit"
)

type memStore struct {
	mu        sync.RWMutex
	habits    []habit.Habit
	reminders []habit.Reminder
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) SaveHabits(habits []habit.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.habits = habits
	return nil
}

func (m *memStore) LoadHabits() ([]habit.Habit, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]habit.Habit(nil), m.habits...), nil
}

func (m *memStore) SaveReminders(reminders []habit.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reminders = reminders
	return nil
}

func (m *memStore) LoadReminders() ([]habit.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]habit.Reminder(nil), m.reminders...), nil
}

func (m *memStore) Close() error {
	return nil
}

var _ storage.Store = (*memStore)(nil)
