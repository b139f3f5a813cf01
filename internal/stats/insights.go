package stats

import (
	"fmt"
	"time"

	"github.com/mfinn/pulse/pkg/habit"
)

// Insight is a headline observation about today's performance.
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Pattern is a per-category behavioral observation.
type Pattern struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Recommendation is an actionable tip with a display priority.
type Recommendation struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// InsightReport is everything the insights surface renders for one day.
type InsightReport struct {
	Insights        []Insight        `json:"insights"`
	Patterns        []Pattern        `json:"patterns"`
	Recommendations []Recommendation `json:"recommendations"`
}

const (
	bestCategoryThreshold  = 0.7
	worstCategoryThreshold = 0.3
	championStreakDays     = 7
)

// GenerateInsights applies the fixed rule set over today's statistics. The
// rules run in a fixed order and ties between categories break toward the
// lexicographically smaller label, so output is fully deterministic. An
// empty collection yields an empty report, not zero-filled statistics.
func GenerateInsights(habits []habit.Habit, today time.Time) InsightReport {
	report := InsightReport{
		Insights:        []Insight{},
		Patterns:        []Pattern{},
		Recommendations: []Recommendation{},
	}
	if len(habits) == 0 {
		return report
	}

	rate := CompletionRateToday(habits, today)
	report.Insights = append(report.Insights, performanceInsight(rate))

	rates := CategoryRates(habits, today)
	best, worst := bestWorstCategories(rates)
	if rates[best].Rate > bestCategoryThreshold {
		report.Patterns = append(report.Patterns, Pattern{
			Type:  "success",
			Title: fmt.Sprintf("%s Success", best),
			Description: fmt.Sprintf(
				"You're excelling at %s habits! Consider applying similar strategies to other areas.", best),
		})
	}
	if rates[worst].Rate < worstCategoryThreshold {
		report.Patterns = append(report.Patterns, Pattern{
			Type:  "challenge",
			Title: fmt.Sprintf("%s Challenge", worst),
			Description: fmt.Sprintf(
				"%s habits need attention. Consider breaking them into smaller steps.", worst),
		})
	}

	if champion, streak := bestStreak(habits, today); streak >= championStreakDays {
		report.Insights = append(report.Insights, Insight{
			Type:  "success",
			Title: "Streak Champion!",
			Description: fmt.Sprintf(
				"%s has a %d-day streak. Keep it going!", champion.Name, streak),
		})
	}

	report.Recommendations = recommendations(len(habits), rate)
	return report
}

func performanceInsight(rate int) Insight {
	switch {
	case rate >= 80:
		return Insight{
			Type:  "success",
			Title: "Excellent Performance!",
			Description: fmt.Sprintf(
				"You've completed %d%% of your habits today. You're building strong momentum!", rate),
		}
	case rate >= 50:
		return Insight{
			Type:  "warning",
			Title: "Good Progress",
			Description: fmt.Sprintf(
				"%d%% completion rate today. You're on the right track, but there's room for improvement.", rate),
		}
	default:
		return Insight{
			Type:  "info",
			Title: "Need More Focus",
			Description: fmt.Sprintf(
				"Only %d%% completed today. Consider reviewing your habit priorities and schedules.", rate),
		}
	}
}

// bestWorstCategories picks the highest and lowest rated categories
// independently, breaking ties on label order.
func bestWorstCategories(rates map[string]CategoryRate) (best, worst string) {
	for _, cat := range sortedCategories(rates) {
		if best == "" || rates[cat].Rate > rates[best].Rate {
			best = cat
		}
		if worst == "" || rates[cat].Rate < rates[worst].Rate {
			worst = cat
		}
	}
	return best, worst
}

// bestStreak returns the habit with the longest current streak, first in
// collection order on ties.
func bestStreak(habits []habit.Habit, today time.Time) (habit.Habit, int) {
	var champion habit.Habit
	longest := -1
	for _, h := range habits {
		if s := Streak(h, today); s > longest {
			champion = h
			longest = s
		}
	}
	return champion, longest
}

func recommendations(habitCount, rate int) []Recommendation {
	recs := []Recommendation{{
		Priority:    "high",
		Title:       "Optimize Your Schedule",
		Description: "Track the times you complete habits to identify your most productive periods.",
		Action:      "Add time tracking to your habit completions",
	}}

	if habitCount < 5 {
		recs = append(recs, Recommendation{
			Priority:    "medium",
			Title:       "Gradual Expansion",
			Description: "You have room to add more habits. Start with one new habit that complements your existing ones.",
			Action:      "Add 1-2 more habits in different categories",
		})
	} else if habitCount > 8 {
		recs = append(recs, Recommendation{
			Priority:    "medium",
			Title:       "Focus Strategy",
			Description: "You have many habits. Consider focusing on 3-5 core habits for better consistency.",
			Action:      "Prioritize your most important habits",
		})
	}

	if rate < 60 {
		recs = append(recs, Recommendation{
			Priority:    "high",
			Title:       "Habit Stacking",
			Description: "Link new habits to existing routines to improve completion rates.",
			Action:      "Pair habits with established daily activities",
		})
	}

	recs = append(recs, Recommendation{
		Priority:    "low",
		Title:       "Weekly Review",
		Description: "Schedule a weekly review to analyze patterns and adjust your approach.",
		Action:      "Set a recurring weekly habit review",
	})
	return recs
}
