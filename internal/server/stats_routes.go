package server

import (
	"net/http"

	"github.com/mfinn/pulse/internal/logger"
	"github.com/mfinn/pulse/internal/quotes"
	"github.com/mfinn/pulse/internal/stats"
)

func (s *Server) getOverallStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	habits := s.tracker.Habits()
	s.mu.Unlock()

	if err := writeJSON(w, http.StatusOK, stats.Overall(habits, s.now())); err != nil {
		logger.Error("Failed to serialize overall stats", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getWeeklySeries(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	habits := s.tracker.Habits()
	s.mu.Unlock()

	if err := writeJSON(w, http.StatusOK, stats.WeeklySeries(habits, s.now())); err != nil {
		logger.Error("Failed to serialize weekly series", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getCategoryStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	habits := s.tracker.Habits()
	s.mu.Unlock()
	today := s.now()

	resp := CategoryStatsResponse{
		Rates: stats.CategoryRates(habits, today),
		Loads: stats.CategoryLoads(habits, today),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize category stats", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getInsights(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	habits := s.tracker.Habits()
	s.mu.Unlock()

	if err := writeJSON(w, http.StatusOK, stats.GenerateInsights(habits, s.now())); err != nil {
		logger.Error("Failed to serialize insights", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getAchievements(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	habits := s.tracker.Habits()
	s.mu.Unlock()

	if err := writeJSON(w, http.StatusOK, stats.Evaluate(habits, s.now())); err != nil {
		logger.Error("Failed to serialize achievements", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getQuote(w http.ResponseWriter, _ *http.Request) {
	if err := writeJSON(w, http.StatusOK, quotes.OfTheDay(s.now())); err != nil {
		logger.Error("Failed to serialize quote", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}
