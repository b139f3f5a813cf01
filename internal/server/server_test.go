package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mfinn/pulse/internal/stats"
	"github.com/mfinn/pulse/internal/tracker"
	"github.com/mfinn/pulse/pkg/habit"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (http.Handler, *tracker.Tracker) {
	tr, err := tracker.Load(newMemStore())
	if err != nil {
		t.Fatalf("failed to load tracker: %v", err)
	}
	tr.Now = func() time.Time { return testNow }
	return New(tr).Router(), tr
}

func mockRequest(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func TestListHabits_Empty(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/habits/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var resp HabitListResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if len(resp.Habits) != 0 {
		t.Fatalf("len=%d want 0", len(resp.Habits))
	}
}

func TestCreateHabit_Valid(t *testing.T) {
	h, _ := newTestServer(t)

	rr := mockRequest(h, http.MethodPost, "/habits/", tracker.HabitInput{
		Name:     "guitar",
		Category: "Creative",
		Target:   1,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("got %d want 201: %s", rr.Code, rr.Body.String())
	}

	var created habit.Habit
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if created.Frequency != habit.FrequencyDaily {
		t.Fatalf("got %q want daily default", created.Frequency)
	}

	rr = mockRequest(h, http.MethodGet, "/habits/"+created.ID, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
}

func TestCreateHabit_Invalid(t *testing.T) {
	h, _ := newTestServer(t)

	cases := []tracker.HabitInput{
		{Name: "", Category: "X", Target: 1},
		{Name: "ok", Category: "", Target: 1},
		{Name: "ok", Category: "X", Target: 0},
		{Name: "ok", Category: "X", Target: 1, Frequency: "hourly"},
	}
	for i, in := range cases {
		rr := mockRequest(h, http.MethodPost, "/habits/", in)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d: got %d want 400", i, rr.Code)
		}
	}
}

func TestCompleteHabit_MergesSameDay(t *testing.T) {
	h, tr := newTestServer(t)
	created, _ := tr.AddHabit(tracker.HabitInput{Name: "water", Category: "Health & Fitness", Target: 8})

	mockRequest(h, http.MethodPost, "/habits/"+created.ID+"/complete", map[string]float64{"value": 3})
	rr := mockRequest(h, http.MethodPost, "/habits/"+created.ID+"/complete", map[string]float64{"value": 2})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}

	var out habit.Habit
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	if len(out.Completions) != 1 || out.Completions[0].Value != 5 {
		t.Fatalf("got %+v want one completion of 5", out.Completions)
	}
}

func TestCompleteHabit_DefaultValue(t *testing.T) {
	h, tr := newTestServer(t)
	created, _ := tr.AddHabit(tracker.HabitInput{Name: "read", Category: "Learning", Target: 1})

	rr := mockRequest(h, http.MethodPost, "/habits/"+created.ID+"/complete", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200: %s", rr.Code, rr.Body.String())
	}
	var out habit.Habit
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	if len(out.Completions) != 1 || out.Completions[0].Value != 1 {
		t.Fatalf("got %+v want one completion of 1", out.Completions)
	}
}

func TestCompleteHabit_NotFound(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodPost, "/habits/nope/complete", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d want 404", rr.Code)
	}
}

func TestListHabits_DerivedFields(t *testing.T) {
	h, tr := newTestServer(t)
	created, _ := tr.AddHabit(tracker.HabitInput{Name: "read", Category: "Learning", Target: 1})
	tr.RecordCompletion(created.ID, 1)

	rr := mockRequest(h, http.MethodGet, "/habits/", nil)
	var resp HabitListResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	if len(resp.Habits) != 1 {
		t.Fatalf("len=%d want 1", len(resp.Habits))
	}
	v := resp.Habits[0]
	if v.Streak != 1 || v.TodayProgress != 1 || !v.Completed {
		t.Fatalf("got %+v want streak 1, progress 1, completed", v)
	}
}

// Exercises the create path, gauge update included, from many goroutines at
// once; run with -race to verify no handler touches tracker state unlocked.
func TestCreateHabit_Concurrent(t *testing.T) {
	h, tr := newTestServer(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rr := mockRequest(h, http.MethodPost, "/habits/", tracker.HabitInput{
				Name:     fmt.Sprintf("habit-%d", i),
				Category: "X",
				Target:   1,
			})
			if rr.Code != http.StatusCreated {
				t.Errorf("got %d want 201: %s", rr.Code, rr.Body.String())
			}
		}(i)
	}
	wg.Wait()

	if got := len(tr.Habits()); got != n {
		t.Fatalf("got %d habits want %d", got, n)
	}
}

func TestUpdateHabit(t *testing.T) {
	h, tr := newTestServer(t)
	created, _ := tr.AddHabit(tracker.HabitInput{Name: "read", Category: "Learning", Target: 1})

	rr := mockRequest(h, http.MethodPut, "/habits/"+created.ID, tracker.HabitInput{
		Name: "read books", Category: "Learning", Target: 2,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200: %s", rr.Code, rr.Body.String())
	}
	var out habit.Habit
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	if out.Name != "read books" || out.ID != created.ID {
		t.Fatalf("got %+v want renamed habit with same id", out)
	}
}

func TestDeleteHabit(t *testing.T) {
	h, tr := newTestServer(t)
	created, _ := tr.AddHabit(tracker.HabitInput{Name: "read", Category: "Learning", Target: 1})

	rr := mockRequest(h, http.MethodDelete, "/habits/"+created.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("got %d want 204", rr.Code)
	}
	rr = mockRequest(h, http.MethodGet, "/habits/"+created.ID, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("got %d want 404", rr.Code)
	}
}

func TestGetOverallStats(t *testing.T) {
	h, tr := newTestServer(t)
	a, _ := tr.AddHabit(tracker.HabitInput{Name: "a", Category: "X", Target: 1})
	tr.AddHabit(tracker.HabitInput{Name: "b", Category: "Y", Target: 1})
	tr.RecordCompletion(a.ID, 1)

	rr := mockRequest(h, http.MethodGet, "/stats/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var s stats.OverallStats
	_ = json.Unmarshal(rr.Body.Bytes(), &s)
	if s.TotalHabits != 2 || s.CompletedToday != 1 || s.CompletionRate != 50 {
		t.Fatalf("got %+v want 2 habits, 1 completed, rate 50", s)
	}
}

func TestGetWeeklySeries_EmptyCollection(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/stats/weekly", nil)
	var series []stats.SeriesPoint
	_ = json.Unmarshal(rr.Body.Bytes(), &series)
	if len(series) != 7 {
		t.Fatalf("got %d points want 7", len(series))
	}
}

func TestGetInsights_Empty(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/insights", nil)
	var report stats.InsightReport
	_ = json.Unmarshal(rr.Body.Bytes(), &report)
	if len(report.Insights) != 0 || len(report.Recommendations) != 0 {
		t.Fatalf("got %+v want empty report", report)
	}
}

func TestGetAchievements(t *testing.T) {
	h, tr := newTestServer(t)
	tr.AddHabit(tracker.HabitInput{Name: "a", Category: "X", Target: 1})

	rr := mockRequest(h, http.MethodGet, "/achievements", nil)
	var set stats.AchievementSet
	_ = json.Unmarshal(rr.Body.Bytes(), &set)
	if len(set.Unlocked) != 1 || set.Unlocked[0].ID != "first-habit" {
		t.Fatalf("got %+v want first-habit unlocked", set.Unlocked)
	}
}

func TestGetQuote(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/quote", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	var q struct{ Text, Author string }
	_ = json.Unmarshal(rr.Body.Bytes(), &q)
	if q.Text == "" {
		t.Fatal("expected a quote")
	}
}

func TestReminders_CRUD(t *testing.T) {
	h, tr := newTestServer(t)
	created, _ := tr.AddHabit(tracker.HabitInput{Name: "read", Category: "Learning", Target: 1})

	rr := mockRequest(h, http.MethodPost, "/reminders/", tracker.ReminderInput{
		HabitID: created.ID,
		Time:    "09:00",
		Days:    []string{"mon", "wed"},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("got %d want 201: %s", rr.Code, rr.Body.String())
	}
	var rem habit.Reminder
	_ = json.Unmarshal(rr.Body.Bytes(), &rem)
	if !rem.Enabled {
		t.Fatal("new reminders start enabled")
	}

	disabled := false
	rr = mockRequest(h, http.MethodPut, "/reminders/"+rem.ID, tracker.ReminderInput{
		Time: "10:30", Days: []string{"mon"}, Enabled: &disabled,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200: %s", rr.Code, rr.Body.String())
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &rem)
	if rem.Enabled || rem.Time != "10:30" {
		t.Fatalf("got %+v want disabled at 10:30", rem)
	}

	rr = mockRequest(h, http.MethodDelete, "/reminders/"+rem.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("got %d want 204", rr.Code)
	}
}

func TestUpdateReminder_TimeOnlyKeepsEnabled(t *testing.T) {
	h, tr := newTestServer(t)
	created, _ := tr.AddHabit(tracker.HabitInput{Name: "read", Category: "Learning", Target: 1})
	rem, _ := tr.AddReminder(tracker.ReminderInput{
		HabitID: created.ID, Time: "09:00", Days: []string{"mon"},
	})

	// no "enabled" field in the body at all
	rr := mockRequest(h, http.MethodPut, "/reminders/"+rem.ID, map[string]string{"time": "10:30"})
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200: %s", rr.Code, rr.Body.String())
	}
	var out habit.Reminder
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	if !out.Enabled {
		t.Fatal("time-only update must not disable the reminder")
	}
	if out.Time != "10:30" {
		t.Fatalf("got %q want 10:30", out.Time)
	}
}

func TestCreateReminder_Invalid(t *testing.T) {
	h, tr := newTestServer(t)
	created, _ := tr.AddHabit(tracker.HabitInput{Name: "read", Category: "Learning", Target: 1})

	cases := []tracker.ReminderInput{
		{HabitID: "", Time: "09:00"},
		{HabitID: created.ID, Time: "25:00"},
		{HabitID: created.ID, Time: "09:00", Days: []string{"monday"}},
	}
	for i, in := range cases {
		rr := mockRequest(h, http.MethodPost, "/reminders/", in)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d: got %d want 400: %s", i, rr.Code, rr.Body.String())
		}
	}
}

func TestGetVersion(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/version", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestServer(t)
	rr := mockRequest(h, http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("pulse_active_habits_total")) {
		t.Fatal("active habits gauge missing from metrics output")
	}
}
