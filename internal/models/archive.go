package models

// Archive is the JSON backup schema written by export and read by import.
// Version is bumped only on incompatible schema changes.
type Archive struct {
	Version    int        `json:"version"`
	ExportedAt int64      `json:"exportedAt"`
	Habits     []Habit    `json:"habits"`
	Logs       []HabitLog `json:"logs"`
}
