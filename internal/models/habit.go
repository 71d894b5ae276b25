package models

// Habit represents a recurring behavior to track. Timestamps are Unix
// milliseconds; UpdatedAt is refreshed on every edit and never precedes
// CreatedAt.
type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// HabitLog represents a single timestamped occurrence of a habit. Timestamp
// may be backdated by the user but is never future-dated at creation time.
type HabitLog struct {
	ID        string `json:"id"`
	HabitID   string `json:"habitId"`
	Timestamp int64  `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

// HabitWithStats is a habit bundled with counters derived from the full log
// collection. It is never persisted; callers recompute it on every refresh.
type HabitWithStats struct {
	Habit
	TotalLogs     int
	TodayLogs     int
	WeeklyLogs    int
	CurrentStreak int
	LastLogDate   *int64
}
