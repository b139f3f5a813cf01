package server

import (
	"sync"
	"time"

	"github.com/mfinn/pulse/internal/tracker"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the tracker and the statistics engine over HTTP. Handlers
// serialize through mu so every computation sees either the pre- or
// post-mutation collection in full.
type Server struct {
	mu      sync.Mutex
	tracker *tracker.Tracker
}

func New(tr *tracker.Tracker) *Server {
	return &Server{tracker: tr}
}

func (s *Server) now() time.Time {
	return s.tracker.Now()
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/habits", func(r chi.Router) {
		r.Post("/", s.createHabit)
		r.Get("/", s.listHabits)
		r.Get("/{habit_id}", s.getHabit)
		r.Put("/{habit_id}", s.updateHabit)
		r.Delete("/{habit_id}", s.deleteHabit)
		r.Post("/{habit_id}/complete", s.completeHabit)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/", s.getOverallStats)
		r.Get("/weekly", s.getWeeklySeries)
		r.Get("/categories", s.getCategoryStats)
	})

	r.Get("/insights", s.getInsights)
	r.Get("/achievements", s.getAchievements)
	r.Get("/quote", s.getQuote)

	r.Route("/reminders", func(r chi.Router) {
		r.Post("/", s.createReminder)
		r.Get("/", s.listReminders)
		r.Put("/{reminder_id}", s.updateReminder)
		r.Delete("/{reminder_id}", s.deleteReminder)
	})

	return r
}
