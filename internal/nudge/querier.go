package nudge

import (
	"context"

	"github.com/mfinn/pulse/internal/server"
	"github.com/mfinn/pulse/pkg/habit"
)

type Querier interface {
	ListHabits(ctx context.Context) ([]server.HabitView, error)
	ListReminders(ctx context.Context) ([]habit.Reminder, error)
}
