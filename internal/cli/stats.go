package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nateharris/habitflow/internal/constants"
	"github.com/nateharris/habitflow/internal/stats"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// heatChars maps normalized day intensity to a shade, darkest last.
const heatChars = " ░▒▓█"

const (
	barWidth     = 30
	heatmapWeeks = 12
)

type StatsCmd struct {
	Name string `arg:"" optional:"" help:"Limit stats to one habit (default: all habits)."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}

	habitID := ""
	title := "All habits"
	if c.Name != "" {
		habit, err := ctx.Store.GetHabitByName(c.Name)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Name)
		}
		habitID = habit.ID
		title = habit.Emoji + " " + habit.Name
	}

	now := ctx.Now()
	// One aggregation pass feeds every chart below.
	fs := stats.ComputeFilteredStats(logs, habitID, now)

	fmt.Println(titleStyle.Render(title))
	fmt.Printf("%d logs across %d active days\n\n", len(fs.FilteredLogs), fs.Heatmap.TotalActiveDays)

	renderHeatmap(fs.Heatmap, now.UnixMilli())
	fmt.Println()
	renderWeekdays(fs.Weekdays)
	fmt.Println()
	renderHours(fs.Hours)

	return nil
}

// renderHeatmap prints a trailing 12-week activity grid, one row per
// weekday, shaded by each day's share of the busiest day.
func renderHeatmap(h stats.Heatmap, nowMs int64) {
	fmt.Println(titleStyle.Render("Activity"))

	todayStart := stats.StartOfDay(nowMs)
	// Top-left cell is the Sunday that starts the grid's oldest week.
	gridStart := todayStart - constants.DayMillis*int64((heatmapWeeks-1)*7+timeWeekday(todayStart))

	for wd := 0; wd < 7; wd++ {
		row := constants.DayNames[wd] + " "
		for w := 0; w < heatmapWeeks; w++ {
			ts := gridStart + constants.DayMillis*int64(w*7+wd)
			if ts > todayStart {
				row += " "
				continue
			}
			count := h.LogsByDay[stats.DayKey(ts)]
			idx := 0
			if count > 0 {
				idx = 1 + count*(len([]rune(heatChars))-2)/h.MaxLogs
				if idx > len([]rune(heatChars))-1 {
					idx = len([]rune(heatChars)) - 1
				}
			}
			row += string([]rune(heatChars)[idx])
		}
		fmt.Println(row)
	}
}

func renderWeekdays(buckets []stats.WeekdayBucket) {
	fmt.Println(titleStyle.Render("By weekday"))

	max := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}

	for _, b := range buckets {
		label := b.FullName
		if b.IsToday {
			label = highlightStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		fmt.Printf("%s %s %d\n", label, bar(b.Count, max), b.Count)
	}
}

func renderHours(buckets []stats.HourlyBucket) {
	fmt.Println(titleStyle.Render("By time of day"))

	max := 0
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}

	for _, b := range buckets {
		label := fmt.Sprintf("%-6s", b.Label)
		if b.IsCurrent {
			label = highlightStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		fmt.Printf("%s %s %d\n", label, bar(b.Count, max), b.Count)
	}
}

// bar renders a count as a fixed-scale block bar.
func bar(count, max int) string {
	if max == 0 {
		return strings.Repeat(" ", barWidth)
	}
	filled := count * barWidth / max
	return strings.Repeat("█", filled) + strings.Repeat(" ", barWidth-filled)
}

// timeWeekday returns the weekday index (0=Sunday) of a day-start timestamp.
func timeWeekday(dayStart int64) int {
	return int(time.UnixMilli(dayStart).Weekday())
}
