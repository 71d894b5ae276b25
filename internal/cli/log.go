package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nateharris/habitflow/internal/models"
	"github.com/nateharris/habitflow/internal/validation"
)

type LogCmd struct {
	Add    LogAddCmd    `cmd:"" help:"Record a habit occurrence." default:"withargs"`
	List   LogListCmd   `cmd:"" help:"List a habit's logs, most recent first."`
	Delete LogDeleteCmd `cmd:"" help:"Delete a single log entry."`
}

type LogAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Note string `help:"Optional note for this entry." default:""`
	At   string `help:"Backdate the log (RFC3339, 'YYYY-MM-DD HH:MM', or YYYY-MM-DD)." default:""`
}

func (c *LogAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	now := ctx.Now()
	ts := now.UnixMilli()
	if c.At != "" {
		ts, err = validation.ParseLogTime(c.At)
		if err != nil {
			return err
		}
		if err := validation.ValidateLogTime(ts, now); err != nil {
			return err
		}
	}

	log := models.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Timestamp: ts,
		Note:      c.Note,
	}

	if err := ctx.Store.AddLog(log); err != nil {
		return err
	}

	fmt.Printf("Logged %s %s (%s)\n", habit.Emoji, habit.Name, ctx.FormatRelativeTime(ts))
	return nil
}

type LogListCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Limit int    `help:"Maximum entries to show." default:"20"`
}

func (c *LogListCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	logs, err := ctx.Store.GetLogsForHabit(habit.ID)
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Printf("No logs for %q yet.\n", c.Name)
		return nil
	}

	if c.Limit > 0 && len(logs) > c.Limit {
		logs = logs[:c.Limit]
	}

	for _, l := range logs {
		line := fmt.Sprintf("%s  %s", l.ID[:8], ctx.FormatRelativeTime(l.Timestamp))
		if l.Note != "" {
			line += "  " + l.Note
		}
		fmt.Println(line)
	}

	return nil
}

type LogDeleteCmd struct {
	ID string `arg:"" help:"Log id (or unique prefix)."`
}

func (c *LogDeleteCmd) Run(ctx *Context) error {
	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}

	var match *models.HabitLog
	for i := range logs {
		if logs[i].ID == c.ID || (len(c.ID) >= 8 && len(logs[i].ID) >= len(c.ID) && logs[i].ID[:len(c.ID)] == c.ID) {
			if match != nil {
				return fmt.Errorf("log id prefix %q is ambiguous", c.ID)
			}
			match = &logs[i]
		}
	}
	if match == nil {
		return fmt.Errorf("log not found: %s", c.ID)
	}

	if err := ctx.Store.DeleteLog(match.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted log %s\n", match.ID[:8])
	return nil
}
