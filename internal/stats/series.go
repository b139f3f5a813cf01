package stats

import (
	"math"
	"time"

	"github.com/mfinn/pulse/pkg/habit"
)

const seriesDays = 7

// SeriesPoint is one day of the trailing aggregate completion series.
type SeriesPoint struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// WeeklySeries returns the trailing 7-day aggregate completion percentages,
// oldest first, ending at today. Each habit contributes at most its own
// target per day, so overshooting one habit cannot inflate the aggregate.
func WeeklySeries(habits []habit.Habit, today time.Time) []SeriesPoint {
	out := make([]SeriesPoint, 0, seriesDays)
	for i := seriesDays - 1; i >= 0; i-- {
		day := DaysBefore(today, i)
		key := DayKey(day)

		var completed float64
		totalTarget := 0
		for _, h := range habits {
			totalTarget += h.Target
			if c, ok := FindCompletion(h, key); ok {
				completed += math.Min(c.Value, float64(h.Target))
			}
		}

		p := SeriesPoint{Label: day.Format("Mon")}
		if totalTarget > 0 {
			p.Percent = roundPercent(completed, float64(totalTarget))
		}
		out = append(out, p)
	}
	return out
}
