package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/nateharris/habitflow/internal/constants"
	"github.com/nateharris/habitflow/internal/models"
)

// fileState is the whole-store blob serialized to disk. The store rewrites
// the entire file on every mutation; at a single user's data scale this is
// simpler and safer than partial updates.
type fileState struct {
	Version int               `json:"version"`
	Habits  []models.Habit    `json:"habits"`
	Logs    []models.HabitLog `json:"logs"`
}

type JSONStore struct {
	path  string
	state *fileState
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.state = &fileState{Version: constants.StorageVersion}
	return s.save()
}

func (s *JSONStore) Load() error {
	if s.state != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitflow init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.state = &fileState{}
	if err := json.Unmarshal(data, s.state); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.state.Habits = append(s.state.Habits, habit)
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}

	for _, h := range s.state.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", id)
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	if err := s.loaded(); err != nil {
		return models.Habit{}, err
	}

	for _, h := range s.state.Habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", name)
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	habits := make([]models.Habit, len(s.state.Habits))
	copy(habits, s.state.Habits)
	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, h := range s.state.Habits {
		if h.ID == habit.ID {
			habit.CreatedAt = h.CreatedAt
			habit.UpdatedAt = time.Now().UnixMilli()
			s.state.Habits[i] = habit
			return s.save()
		}
	}
	return fmt.Errorf("habit not found: %s", habit.ID)
}

func (s *JSONStore) DeleteHabit(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	habits := s.state.Habits[:0:0]
	found := false
	for _, h := range s.state.Habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return fmt.Errorf("habit not found: %s", id)
	}
	s.state.Habits = habits

	// Cascade: drop every log belonging to the deleted habit.
	logs := s.state.Logs[:0:0]
	for _, l := range s.state.Logs {
		if l.HabitID != id {
			logs = append(logs, l)
		}
	}
	s.state.Logs = logs

	return s.save()
}

func (s *JSONStore) AddLog(log models.HabitLog) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.state.Logs = append(s.state.Logs, log)
	return s.save()
}

func (s *JSONStore) GetLog(id string) (models.HabitLog, error) {
	if err := s.loaded(); err != nil {
		return models.HabitLog{}, err
	}

	for _, l := range s.state.Logs {
		if l.ID == id {
			return l, nil
		}
	}
	return models.HabitLog{}, fmt.Errorf("log not found: %s", id)
}

func (s *JSONStore) GetAllLogs() ([]models.HabitLog, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	logs := make([]models.HabitLog, len(s.state.Logs))
	copy(logs, s.state.Logs)
	return logs, nil
}

func (s *JSONStore) GetLogsForHabit(habitID string) ([]models.HabitLog, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	var logs []models.HabitLog
	for _, l := range s.state.Logs {
		if l.HabitID == habitID {
			logs = append(logs, l)
		}
	}
	// Most recent first
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Timestamp > logs[j].Timestamp })
	return logs, nil
}

func (s *JSONStore) DeleteLog(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	logs := s.state.Logs[:0:0]
	found := false
	for _, l := range s.state.Logs {
		if l.ID == id {
			found = true
			continue
		}
		logs = append(logs, l)
	}
	if !found {
		return fmt.Errorf("log not found: %s", id)
	}
	s.state.Logs = logs

	return s.save()
}

func (s *JSONStore) ReplaceAll(habits []models.Habit, logs []models.HabitLog) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.state.Habits = habits
	s.state.Logs = logs
	return s.save()
}

func (s *JSONStore) ClearAll() error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.state.Habits = nil
	s.state.Logs = nil
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
