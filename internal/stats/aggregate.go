package stats

import (
	"fmt"
	"time"

	"github.com/nateharris/habitflow/internal/constants"
	"github.com/nateharris/habitflow/internal/models"
)

// Heatmap holds per-calendar-day log counts for the activity calendar.
// MaxLogs has a floor of 1 so consumers can normalize by it without a
// zero-division guard.
type Heatmap struct {
	LogsByDay       map[string]int
	MaxLogs         int
	TotalActiveDays int
}

// WeekdayBucket is one bar of the all-time day-of-week histogram.
type WeekdayBucket struct {
	Name     string
	FullName string
	Count    int
	IsToday  bool
}

// HourlyBucket is one bar of the all-time time-of-day histogram. Start and
// End delimit a half-open local-hour interval [Start, End).
type HourlyBucket struct {
	Label     string
	Start     int
	End       int
	Count     int
	IsCurrent bool
}

var hourlyIntervals = [6]struct {
	label      string
	start, end int
}{
	{"12-4a", 0, 4},
	{"4-8a", 4, 8},
	{"8-12p", 8, 12},
	{"12-4p", 12, 16},
	{"4-8p", 16, 20},
	{"8-12a", 20, 24},
}

// DayKey formats a millisecond timestamp as the heatmap's "year-month-day"
// composite key. The month component is zero-based.
func DayKey(ts int64) string {
	t := time.UnixMilli(ts)
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month())-1, t.Day())
}

// Aggregate folds the given logs into the three chart datasets in a single
// pass: the day-count heatmap, the 7-bucket weekday histogram, and the
// 6-bucket 4-hour-interval histogram. Unlike the streak walk there is no
// per-day dedup here; every log counts in every histogram. The fold is a
// full recomputation by design: the log list is one user's history, and
// recompute-from-source cannot drift the way incremental counters can.
func Aggregate(logs []models.HabitLog, now time.Time) (Heatmap, []WeekdayBucket, []HourlyBucket) {
	logsByDay := make(map[string]int)
	var weekdayCounts [7]int
	var hourlyCounts [6]int

	for _, log := range logs {
		t := time.UnixMilli(log.Timestamp)
		logsByDay[DayKey(log.Timestamp)]++
		weekdayCounts[int(t.Weekday())]++
		hourlyCounts[t.Hour()/4]++
	}

	maxLogs := 1
	for _, n := range logsByDay {
		if n > maxLogs {
			maxLogs = n
		}
	}
	heatmap := Heatmap{
		LogsByDay:       logsByDay,
		MaxLogs:         maxLogs,
		TotalActiveDays: len(logsByDay),
	}

	today := int(now.Weekday())
	weekdays := make([]WeekdayBucket, 7)
	for i := range weekdays {
		weekdays[i] = WeekdayBucket{
			Name:     constants.DayNames[i],
			FullName: constants.FullDayNames[i],
			Count:    weekdayCounts[i],
			IsToday:  i == today,
		}
	}

	currentHour := now.Hour()
	hours := make([]HourlyBucket, 6)
	for i, iv := range hourlyIntervals {
		hours[i] = HourlyBucket{
			Label:     iv.label,
			Start:     iv.start,
			End:       iv.end,
			Count:     hourlyCounts[i],
			IsCurrent: currentHour >= iv.start && currentHour < iv.end,
		}
	}

	return heatmap, weekdays, hours
}

// FilteredStats bundles one aggregation pass with the filtered log list so
// every chart consumer in a single render cycle shares the same slice
// instead of refiltering the full history.
type FilteredStats struct {
	FilteredLogs []models.HabitLog
	Heatmap      Heatmap
	Weekdays     []WeekdayBucket
	Hours        []HourlyBucket
}

// ComputeFilteredStats narrows allLogs to the given habit (habitID == ""
// means no filtering, the slice passes through untouched) and runs Aggregate
// exactly once over the result. Logs whose habit id matches nothing, or a
// habitID with no logs, simply yield empty datasets; nothing here can fail.
func ComputeFilteredStats(allLogs []models.HabitLog, habitID string, now time.Time) FilteredStats {
	filtered := allLogs
	if habitID != "" {
		filtered = make([]models.HabitLog, 0, len(allLogs))
		for _, log := range allLogs {
			if log.HabitID == habitID {
				filtered = append(filtered, log)
			}
		}
	}

	heatmap, weekdays, hours := Aggregate(filtered, now)
	return FilteredStats{
		FilteredLogs: filtered,
		Heatmap:      heatmap,
		Weekdays:     weekdays,
		Hours:        hours,
	}
}
