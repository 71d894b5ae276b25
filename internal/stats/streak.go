package stats

import (
	"sort"
	"time"

	"github.com/nateharris/habitflow/internal/constants"
	"github.com/nateharris/habitflow/internal/models"
)

// CalculateStreak returns the current consecutive-day streak for one habit's
// logs. Callers pre-filter by habit; the function accepts logs in any order.
// Multiple logs on the same calendar day count as one day. A streak is alive
// only while the most recent logged day is today or yesterday, so the user
// keeps a one-day grace window before the count resets to zero.
func CalculateStreak(logs []models.HabitLog, now time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	// Distinct day starts; duplicate same-day logs collapse to one entry.
	seen := make(map[int64]struct{}, len(logs))
	days := make([]int64, 0, len(logs))
	for _, log := range logs {
		day := StartOfDay(log.Timestamp)
		if _, ok := seen[day]; !ok {
			seen[day] = struct{}{}
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	today := StartOfDay(now.UnixMilli())
	yesterday := today - constants.DayMillis
	if days[0] < yesterday {
		return 0
	}

	// Walk backward from the most recent day; stop at the first gap that is
	// not exactly one day.
	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1]-days[i] != constants.DayMillis {
			break
		}
		streak++
	}

	return streak
}
