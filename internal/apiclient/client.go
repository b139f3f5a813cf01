package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mfinn/pulse/internal/quotes"
	"github.com/mfinn/pulse/internal/server"
	"github.com/mfinn/pulse/internal/stats"
	"github.com/mfinn/pulse/internal/tracker"
	"github.com/mfinn/pulse/pkg/habit"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", method, path, res.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) ListHabits(ctx context.Context) ([]server.HabitView, error) {
	var resp server.HabitListResponse
	if err := c.do(ctx, http.MethodGet, "/habits/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Habits, nil
}

func (c *Client) CreateHabit(ctx context.Context, in tracker.HabitInput) (*habit.Habit, error) {
	var out habit.Habit
	if err := c.do(ctx, http.MethodPost, "/habits/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Complete(ctx context.Context, habitID string, value float64) (*habit.Habit, error) {
	var out habit.Habit
	body := map[string]float64{"value": value}
	if err := c.do(ctx, http.MethodPost, "/habits/"+habitID+"/complete", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OverallStats(ctx context.Context) (*stats.OverallStats, error) {
	var out stats.OverallStats
	if err := c.do(ctx, http.MethodGet, "/stats/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) WeeklySeries(ctx context.Context) ([]stats.SeriesPoint, error) {
	var out []stats.SeriesPoint
	if err := c.do(ctx, http.MethodGet, "/stats/weekly", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Insights(ctx context.Context) (*stats.InsightReport, error) {
	var out stats.InsightReport
	if err := c.do(ctx, http.MethodGet, "/insights", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Achievements(ctx context.Context) (*stats.AchievementSet, error) {
	var out stats.AchievementSet
	if err := c.do(ctx, http.MethodGet, "/achievements", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Quote(ctx context.Context) (*quotes.Quote, error) {
	var out quotes.Quote
	if err := c.do(ctx, http.MethodGet, "/quote", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListReminders(ctx context.Context) ([]habit.Reminder, error) {
	var resp server.ReminderListResponse
	if err := c.do(ctx, http.MethodGet, "/reminders/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reminders, nil
}
