package nudge

import (
	"context"
	"strings"
	"time"

	"github.com/mfinn/pulse/internal/logger"
)

type Notifier interface {
	SendNudge(habits []string) error
}

func weekdayCode(t time.Time) string {
	return strings.ToLower(t.Format("Mon"))
}

// DueHabits returns the names of habits that have an enabled reminder
// scheduled for today's weekday and whose target is not yet met today.
func DueHabits(ctx context.Context, q Querier, now time.Time) ([]string, error) {
	reminders, err := q.ListReminders(ctx)
	if err != nil {
		return nil, err
	}
	habits, err := q.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	today := weekdayCode(now)
	scheduled := map[string]bool{}
	for _, r := range reminders {
		if !r.Enabled {
			continue
		}
		for _, d := range r.Days {
			if d == today {
				scheduled[r.HabitID] = true
				break
			}
		}
	}

	var due []string
	for _, h := range habits {
		if scheduled[h.ID] && !h.Completed {
			due = append(due, h.Name)
		}
	}
	return due, nil
}

// Nudge sends a single notification covering every habit still due today.
// Nothing is sent when everything scheduled is already done.
func Nudge(ctx context.Context, q Querier, n Notifier, now time.Time) error {
	due, err := DueHabits(ctx, q, now)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		logger.Info("No habits due for a nudge")
		return nil
	}
	logger.Info("Sending nudge", "habits", due)
	return n.SendNudge(due)
}
