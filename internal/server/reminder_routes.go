package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mfinn/pulse/internal/logger"
	"github.com/mfinn/pulse/internal/tracker"

	"github.com/go-chi/chi/v5"
)

func (s *Server) createReminder(w http.ResponseWriter, r *http.Request) {
	var in tracker.ReminderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if err := validateReminderInput(in); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	rem, err := s.tracker.AddReminder(in)
	s.mu.Unlock()
	if errors.Is(err, tracker.ErrNotFound) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to store reminder", "habit_id", in.HabitID, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	logger.Info("Reminder created", "reminder_id", rem.ID, "habit_id", rem.HabitID)

	if err := writeJSON(w, http.StatusCreated, rem); err != nil {
		logger.Error("Failed to serialize create reminder response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) listReminders(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	reminders := s.tracker.Reminders()
	s.mu.Unlock()

	if err := writeJSON(w, http.StatusOK, ReminderListResponse{Reminders: reminders}); err != nil {
		logger.Error("Failed to serialize reminder list response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) updateReminder(w http.ResponseWriter, r *http.Request) {
	reminderID := chi.URLParam(r, "reminder_id")

	var in tracker.ReminderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if in.Time != "" || in.Days != nil {
		if err := validateReminderSchedule(in.Time, in.Days); err != nil {
			http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
			return
		}
	}

	s.mu.Lock()
	rem, err := s.tracker.UpdateReminder(reminderID, in)
	s.mu.Unlock()
	if errors.Is(err, tracker.ErrNotFound) {
		http.Error(w, `{"error":"reminder not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to update reminder", "reminder_id", reminderID, "error", err)
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, rem); err != nil {
		logger.Error("Failed to serialize update reminder response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) deleteReminder(w http.ResponseWriter, r *http.Request) {
	reminderID := chi.URLParam(r, "reminder_id")

	s.mu.Lock()
	err := s.tracker.DeleteReminder(reminderID)
	s.mu.Unlock()
	if errors.Is(err, tracker.ErrNotFound) {
		http.Error(w, `{"error":"reminder not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Failed to delete reminder", "reminder_id", reminderID, "error", err)
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
