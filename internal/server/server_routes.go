package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mfinn/pulse/internal/logger"
	"github.com/mfinn/pulse/internal/stats"
	"github.com/mfinn/pulse/internal/tracker"
	"github.com/mfinn/pulse/pkg/versioninfo"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
		http.Error(w, `{"error":"failed to serialize version info"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var in tracker.HabitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.Warn("Invalid JSON in create habit request", "error", err)
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if err := validateHabitInput(&in); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	h, err := s.tracker.AddHabit(in)
	count := len(s.tracker.Habits())
	s.mu.Unlock()
	if err != nil {
		logger.Error("Failed to store habit", "habit_name", in.Name, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Habit created", "habit_id", h.ID, "habit_name", h.Name)
	activeHabits.Set(float64(count))

	if err := writeJSON(w, http.StatusCreated, h); err != nil {
		logger.Error("Failed to serialize create habit response", "habit_id", h.ID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	habits := s.tracker.Habits()
	s.mu.Unlock()
	today := s.now()

	views := make([]HabitView, 0, len(habits))
	for _, h := range habits {
		progress := stats.TodayProgress(h, today)
		views = append(views, HabitView{
			Habit:         h,
			Streak:        stats.Streak(h, today),
			TodayProgress: progress,
			Completed:     progress >= float64(h.Target),
		})
	}

	if err := writeJSON(w, http.StatusOK, HabitListResponse{Habits: views}); err != nil {
		logger.Error("Failed to serialize habit list response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")

	s.mu.Lock()
	h, err := s.tracker.Habit(habitID)
	s.mu.Unlock()
	if errors.Is(err, tracker.ErrNotFound) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}

	today := s.now()
	progress := stats.TodayProgress(h, today)
	view := HabitView{
		Habit:         h,
		Streak:        stats.Streak(h, today),
		TodayProgress: progress,
		Completed:     progress >= float64(h.Target),
	}
	if err := writeJSON(w, http.StatusOK, view); err != nil {
		logger.Error("Failed to serialize get habit response", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) updateHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")

	var in tracker.HabitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.Warn("Invalid JSON in update habit request", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if err := validateHabitInput(&in); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	h, err := s.tracker.UpdateHabit(habitID, in)
	s.mu.Unlock()
	if errors.Is(err, tracker.ErrNotFound) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to update habit", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Habit updated", "habit_id", habitID)

	if err := writeJSON(w, http.StatusOK, h); err != nil {
		logger.Error("Failed to serialize update habit response", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")

	s.mu.Lock()
	err := s.tracker.DeleteHabit(habitID)
	count := len(s.tracker.Habits())
	s.mu.Unlock()
	if errors.Is(err, tracker.ErrNotFound) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to delete habit", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Habit deleted", "habit_id", habitID)
	activeHabits.Set(float64(count))

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) completeHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")

	// amount defaults to 1 when the body is empty or omits it
	body := struct {
		Value float64 `json:"value"`
	}{Value: 1}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
			return
		}
	}
	if body.Value < 0 {
		http.Error(w, `{"error":"value must be non-negative"}`, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	h, err := s.tracker.RecordCompletion(habitID, body.Value)
	s.mu.Unlock()
	if errors.Is(err, tracker.ErrNotFound) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to record completion", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Completion recorded", "habit_id", habitID, "value", body.Value)
	completionsTotal.Inc()

	if err := writeJSON(w, http.StatusOK, h); err != nil {
		logger.Error("Failed to serialize completion response", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}
