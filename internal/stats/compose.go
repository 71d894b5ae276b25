package stats

import (
	"sort"
	"time"

	"github.com/nateharris/habitflow/internal/constants"
	"github.com/nateharris/habitflow/internal/models"
)

// ComposeHabitStats combines a habit with counters derived from the full log
// collection: total logs, logs today, logs in the rolling last 7 days, the
// current streak, and the most recent log timestamp (nil when the habit has
// never been logged). Logs belonging to other habits are skipped by id match,
// which also silently drops any log whose habit no longer exists.
func ComposeHabitStats(habit models.Habit, allLogs []models.HabitLog, now time.Time) models.HabitWithStats {
	nowMs := now.UnixMilli()
	weekAgo := nowMs - constants.WeekMillis

	var habitLogs []models.HabitLog
	var todayLogs, weeklyLogs int
	var lastLog *int64
	for _, log := range allLogs {
		if log.HabitID != habit.ID {
			continue
		}
		habitLogs = append(habitLogs, log)
		if IsSameDay(log.Timestamp, nowMs) {
			todayLogs++
		}
		if log.Timestamp >= weekAgo {
			weeklyLogs++
		}
		if lastLog == nil || log.Timestamp > *lastLog {
			ts := log.Timestamp
			lastLog = &ts
		}
	}

	return models.HabitWithStats{
		Habit:         habit,
		TotalLogs:     len(habitLogs),
		TodayLogs:     todayLogs,
		WeeklyLogs:    weeklyLogs,
		CurrentStreak: CalculateStreak(habitLogs, now),
		LastLogDate:   lastLog,
	}
}

// ComposeAll computes stats for every habit and returns the list ordered by
// UpdatedAt descending, most recently created-or-edited habit first. The
// ordering is display policy only.
func ComposeAll(habits []models.Habit, allLogs []models.HabitLog, now time.Time) []models.HabitWithStats {
	out := make([]models.HabitWithStats, 0, len(habits))
	for _, h := range habits {
		out = append(out, ComposeHabitStats(h, allLogs, now))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	return out
}
