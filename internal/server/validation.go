package server

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mfinn/pulse/internal/tracker"
	"github.com/mfinn/pulse/pkg/habit"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1024
)

// Invalid input is rejected here; the engine assumes every habit it sees
// has a non-empty name, a positive target, and a non-empty category.
func validateHabitInput(in *tracker.HabitInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if len(in.Name) == 0 || len(in.Name) > maxNameLength {
		return fmt.Errorf("bad habit name: must be 1-%d characters", maxNameLength)
	}
	if len(in.Description) > maxDescriptionLength {
		return fmt.Errorf("bad habit description: must be 0-%d characters", maxDescriptionLength)
	}
	// category labels are free-form but required
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("habit category is required")
	}
	if in.Target < 1 {
		return fmt.Errorf("habit target must be at least 1")
	}
	switch in.Frequency {
	case "":
		in.Frequency = habit.FrequencyDaily
	case habit.FrequencyDaily, habit.FrequencyWeekly:
	default:
		return fmt.Errorf("habit frequency must be %q or %q", habit.FrequencyDaily, habit.FrequencyWeekly)
	}
	return nil
}

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var weekdayCodes = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

func validateReminderInput(in tracker.ReminderInput) error {
	if in.HabitID == "" {
		return fmt.Errorf("reminder habit id is required")
	}
	return validateReminderSchedule(in.Time, in.Days)
}

func validateReminderSchedule(timeOfDay string, days []string) error {
	if !timeOfDayRe.MatchString(timeOfDay) {
		return fmt.Errorf("reminder time must be HH:MM")
	}
	for _, d := range days {
		if !weekdayCodes[d] {
			return fmt.Errorf("unknown weekday code %q", d)
		}
	}
	return nil
}
