package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nateharris/habitflow/internal/models"
)

func setupJSONStore(t *testing.T) Provider {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitflow.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init json store: %v", err)
	}
	return store
}

func setupSQLiteStore(t *testing.T) Provider {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitflow.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// Both backends implement the same Provider contract, so every behavior
// test runs against each.
func forEachBackend(t *testing.T, fn func(t *testing.T, store Provider)) {
	t.Run("json", func(t *testing.T) { fn(t, setupJSONStore(t)) })
	t.Run("sqlite", func(t *testing.T) { fn(t, setupSQLiteStore(t)) })
}

func newHabit(name string) models.Habit {
	now := time.Now().UnixMilli()
	return models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Emoji:     "⭐",
		Color:     "#6366F1",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newLog(habitID string, ts int64) models.HabitLog {
	return models.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Timestamp: ts,
	}
}

func TestHabitCRUD(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		habit := newHabit("Morning run")

		if err := store.AddHabit(habit); err != nil {
			t.Fatalf("failed to add habit: %v", err)
		}

		retrieved, err := store.GetHabit(habit.ID)
		if err != nil {
			t.Fatalf("failed to get habit: %v", err)
		}
		if retrieved.Name != habit.Name {
			t.Errorf("expected name %q, got %q", habit.Name, retrieved.Name)
		}

		byName, err := store.GetHabitByName(habit.Name)
		if err != nil {
			t.Fatalf("failed to get habit by name: %v", err)
		}
		if byName.ID != habit.ID {
			t.Errorf("expected ID %q, got %q", habit.ID, byName.ID)
		}

		habit.Name = "Evening run"
		if err := store.UpdateHabit(habit); err != nil {
			t.Fatalf("failed to update habit: %v", err)
		}

		updated, err := store.GetHabit(habit.ID)
		if err != nil {
			t.Fatalf("failed to get updated habit: %v", err)
		}
		if updated.Name != "Evening run" {
			t.Errorf("expected updated name, got %q", updated.Name)
		}
		if updated.UpdatedAt < updated.CreatedAt {
			t.Error("UpdatedAt must not precede CreatedAt after an edit")
		}

		if _, err := store.GetHabit("missing"); err == nil {
			t.Error("expected error for missing habit")
		}
	})
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		habit := newHabit("Stretch")
		habit.CreatedAt = 1000
		habit.UpdatedAt = 1000

		if err := store.AddHabit(habit); err != nil {
			t.Fatalf("failed to add habit: %v", err)
		}
		if err := store.UpdateHabit(habit); err != nil {
			t.Fatalf("failed to update habit: %v", err)
		}

		updated, err := store.GetHabit(habit.ID)
		if err != nil {
			t.Fatalf("failed to get habit: %v", err)
		}
		if updated.UpdatedAt <= 1000 {
			t.Errorf("UpdatedAt = %d, expected refresh past the stored value", updated.UpdatedAt)
		}
		if updated.CreatedAt != 1000 {
			t.Errorf("CreatedAt = %d, must stay immutable", updated.CreatedAt)
		}
	})
}

func TestLogCRUD(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		habit := newHabit("Meditate")
		if err := store.AddHabit(habit); err != nil {
			t.Fatalf("failed to add habit: %v", err)
		}

		now := time.Now().UnixMilli()
		first := newLog(habit.ID, now-5000)
		second := newLog(habit.ID, now)
		for _, l := range []models.HabitLog{first, second} {
			if err := store.AddLog(l); err != nil {
				t.Fatalf("failed to add log: %v", err)
			}
		}

		all, err := store.GetAllLogs()
		if err != nil {
			t.Fatalf("failed to get logs: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 logs, got %d", len(all))
		}

		forHabit, err := store.GetLogsForHabit(habit.ID)
		if err != nil {
			t.Fatalf("failed to get logs for habit: %v", err)
		}
		if len(forHabit) != 2 {
			t.Fatalf("expected 2 logs for habit, got %d", len(forHabit))
		}
		if forHabit[0].ID != second.ID {
			t.Error("expected habit logs ordered most recent first")
		}

		if err := store.DeleteLog(first.ID); err != nil {
			t.Fatalf("failed to delete log: %v", err)
		}
		if _, err := store.GetLog(first.ID); err == nil {
			t.Error("expected error for deleted log")
		}
		if err := store.DeleteLog(first.ID); err == nil {
			t.Error("expected error deleting a log twice")
		}
	})
}

func TestDeleteHabitCascades(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		kept := newHabit("Kept")
		doomed := newHabit("Doomed")
		for _, h := range []models.Habit{kept, doomed} {
			if err := store.AddHabit(h); err != nil {
				t.Fatalf("failed to add habit: %v", err)
			}
		}

		now := time.Now().UnixMilli()
		keptLog := newLog(kept.ID, now)
		for _, l := range []models.HabitLog{keptLog, newLog(doomed.ID, now), newLog(doomed.ID, now-1000)} {
			if err := store.AddLog(l); err != nil {
				t.Fatalf("failed to add log: %v", err)
			}
		}

		if err := store.DeleteHabit(doomed.ID); err != nil {
			t.Fatalf("failed to delete habit: %v", err)
		}

		habits, err := store.GetAllHabits()
		if err != nil {
			t.Fatalf("failed to get habits: %v", err)
		}
		if len(habits) != 1 || habits[0].ID != kept.ID {
			t.Errorf("expected only the kept habit to remain, got %d habits", len(habits))
		}

		logs, err := store.GetAllLogs()
		if err != nil {
			t.Fatalf("failed to get logs: %v", err)
		}
		if len(logs) != 1 || logs[0].ID != keptLog.ID {
			t.Errorf("expected cascade to remove the deleted habit's logs, got %d logs", len(logs))
		}

		if err := store.DeleteHabit(doomed.ID); err == nil {
			t.Error("expected error deleting a habit twice")
		}
	})
}

func TestReplaceAllAndClear(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		habit := newHabit("Old")
		if err := store.AddHabit(habit); err != nil {
			t.Fatalf("failed to add habit: %v", err)
		}

		replacement := newHabit("New")
		repLog := newLog(replacement.ID, time.Now().UnixMilli())
		if err := store.ReplaceAll([]models.Habit{replacement}, []models.HabitLog{repLog}); err != nil {
			t.Fatalf("failed to replace data: %v", err)
		}

		habits, _ := store.GetAllHabits()
		if len(habits) != 1 || habits[0].ID != replacement.ID {
			t.Errorf("expected replacement habit only, got %d habits", len(habits))
		}

		if err := store.ClearAll(); err != nil {
			t.Fatalf("failed to clear: %v", err)
		}
		habits, _ = store.GetAllHabits()
		logs, _ := store.GetAllLogs()
		if len(habits) != 0 || len(logs) != 0 {
			t.Errorf("expected empty store after clear, got %d habits %d logs", len(habits), len(logs))
		}
	})
}

func TestLoadMissingStore(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	if err := NewJSONStore(missing).Load(); err == nil {
		t.Error("expected error loading missing json store")
	}

	missingDB := filepath.Join(t.TempDir(), "nope.db")
	if err := NewSQLiteStore(missingDB).Load(); err == nil {
		t.Error("expected error loading missing sqlite store")
	}
}

func TestJSONStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitflow.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init: %v", err)
	}

	habit := newHabit("Persisted")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	got, err := reopened.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit after reload: %v", err)
	}
	if got.Name != habit.Name {
		t.Errorf("expected name %q after reload, got %q", habit.Name, got.Name)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	if _, ok := New("/tmp/x.json").(*JSONStore); !ok {
		t.Error("expected JSON store for .json path")
	}
	if _, ok := New("/tmp/x.db").(*SQLiteStore); !ok {
		t.Error("expected SQLite store for .db path")
	}
}
