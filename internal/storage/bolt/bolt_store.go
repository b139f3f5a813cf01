package bolt

import (
	"encoding/json"

	"github.com/mfinn/pulse/internal/logger"
	"github.com/mfinn/pulse/internal/storage"
	"github.com/mfinn/pulse/pkg/habit"
	"go.etcd.io/bbolt"
)

const rootBucket = "records"

const (
	habitsKey    = "habits"
	remindersKey = "habit-reminders"
)

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(rootBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) put(key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(rootBucket)).Put([]byte(key), val)
	})
}

// get unmarshals the record at key into out. A missing or corrupt record is
// surfaced as "no data": out is left untouched and a warning is logged.
func (s *Store) get(key string, out any) error {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(rootBucket)).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("Discarding unreadable record", "key", key, "error", err)
	}
	return nil
}

func (s *Store) SaveHabits(habits []habit.Habit) error {
	return s.put(habitsKey, habits)
}

func (s *Store) LoadHabits() ([]habit.Habit, error) {
	var out []habit.Habit
	if err := s.get(habitsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) SaveReminders(reminders []habit.Reminder) error {
	return s.put(remindersKey, reminders)
}

func (s *Store) LoadReminders() ([]habit.Reminder, error) {
	var out []habit.Reminder
	if err := s.get(remindersKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ storage.Store = (*Store)(nil)
