package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nateharris/habitflow/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	emoji TEXT NOT NULL,
	color TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS logs (
	id TEXT PRIMARY KEY,
	habit_id TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	note TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_logs_habit ON logs(habit_id);
CREATE INDEX IF NOT EXISTS idx_logs_timestamp ON logs(timestamp);
`

// SQLiteStore persists habits and logs in a single SQLite file. Timestamps
// are stored as INTEGER Unix milliseconds so the stats engine's day math
// round-trips without parsing.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitflow init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, emoji, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Emoji, habit.Color, habit.CreatedAt, habit.UpdatedAt)
	return err
}

func (s *SQLiteStore) scanHabit(row *sql.Row) (models.Habit, error) {
	var h models.Habit
	err := row.Scan(&h.ID, &h.Name, &h.Emoji, &h.Color, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, emoji, color, created_at, updated_at
		FROM habits WHERE id = ?`, id)
	h, err := s.scanHabit(row)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	return h, nil
}

func (s *SQLiteStore) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, emoji, color, created_at, updated_at
		FROM habits WHERE name = ?`, name)
	h, err := s.scanHabit(row)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit not found: %s", name)
	}
	return h, nil
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, emoji, color, created_at, updated_at
		FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Emoji, &h.Color, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) UpdateHabit(habit models.Habit) error {
	result, err := s.db.Exec(`
		UPDATE habits SET name = ?, emoji = ?, color = ?, updated_at = ?
		WHERE id = ?`,
		habit.Name, habit.Emoji, habit.Color, time.Now().UnixMilli(), habit.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Cascade: the habit's logs go with it in the same transaction.
	if _, err := tx.Exec(`DELETE FROM logs WHERE habit_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddLog(log models.HabitLog) error {
	_, err := s.db.Exec(`
		INSERT INTO logs (id, habit_id, timestamp, note)
		VALUES (?, ?, ?, ?)`,
		log.ID, log.HabitID, log.Timestamp, log.Note)
	return err
}

func (s *SQLiteStore) GetLog(id string) (models.HabitLog, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, timestamp, note FROM logs WHERE id = ?`, id)

	var l models.HabitLog
	if err := row.Scan(&l.ID, &l.HabitID, &l.Timestamp, &l.Note); err != nil {
		return models.HabitLog{}, fmt.Errorf("log not found: %s", id)
	}
	return l, nil
}

func (s *SQLiteStore) queryLogs(query string, args ...any) ([]models.HabitLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		var l models.HabitLog
		if err := rows.Scan(&l.ID, &l.HabitID, &l.Timestamp, &l.Note); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *SQLiteStore) GetAllLogs() ([]models.HabitLog, error) {
	return s.queryLogs(`
		SELECT id, habit_id, timestamp, note FROM logs ORDER BY timestamp`)
}

func (s *SQLiteStore) GetLogsForHabit(habitID string) ([]models.HabitLog, error) {
	return s.queryLogs(`
		SELECT id, habit_id, timestamp, note FROM logs
		WHERE habit_id = ? ORDER BY timestamp DESC`, habitID)
}

func (s *SQLiteStore) DeleteLog(id string) error {
	result, err := s.db.Exec(`DELETE FROM logs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("log not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) ReplaceAll(habits []models.Habit, logs []models.HabitLog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM logs`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM habits`); err != nil {
		return err
	}

	for _, h := range habits {
		if _, err := tx.Exec(`
			INSERT INTO habits (id, name, emoji, color, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Emoji, h.Color, h.CreatedAt, h.UpdatedAt); err != nil {
			return err
		}
	}
	for _, l := range logs {
		if _, err := tx.Exec(`
			INSERT INTO logs (id, habit_id, timestamp, note)
			VALUES (?, ?, ?, ?)`,
			l.ID, l.HabitID, l.Timestamp, l.Note); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ClearAll() error {
	return s.ReplaceAll(nil, nil)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
