package nudge

import (
	"context"

	"github.com/mfinn/pulse/internal/server"
	"github.com/mfinn/pulse/pkg/habit"
)

type mockClient struct {
	habits    []server.HabitView
	reminders []habit.Reminder
	err       error
}

func (f *mockClient) ListHabits(ctx context.Context) ([]server.HabitView, error) {
	return f.habits, f.err
}

func (f *mockClient) ListReminders(ctx context.Context) ([]habit.Reminder, error) {
	return f.reminders, f.err
}
