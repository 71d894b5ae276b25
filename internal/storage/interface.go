// Package storage owns the canonical habit and log collections. Everything
// else in the application reads snapshots from a Provider and computes over
// them; only the provider mutates persisted state.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nateharris/habitflow/internal/models"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	// DeleteHabit removes the habit and cascades to every log referencing
	// it. Referential integrity is maintained only by this cascade, never
	// by a storage-level constraint.
	DeleteHabit(id string) error

	// Logs
	AddLog(models.HabitLog) error
	GetLog(id string) (models.HabitLog, error)
	GetAllLogs() ([]models.HabitLog, error)
	GetLogsForHabit(habitID string) ([]models.HabitLog, error)
	DeleteLog(id string) error

	// Bulk operations used by import and the clear command
	ReplaceAll(habits []models.Habit, logs []models.HabitLog) error
	ClearAll() error

	// Utils
	GetConfigPath() string
}

// New selects a backend by config path extension: ".json" gets the flat-file
// JSON store, everything else the SQLite store.
func New(path string) Provider {
	if strings.HasSuffix(path, ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}

// ExpandPath resolves a leading "~/" against the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
