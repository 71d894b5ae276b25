package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nateharris/habitflow/internal/constants"
	"github.com/nateharris/habitflow/internal/models"
	"github.com/nateharris/habitflow/internal/stats"
	"github.com/nateharris/habitflow/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with their stats."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and all of its logs."`
}

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Emoji string `help:"Emoji shown on the habit card." default:""`
	Color string `help:"Card color as #RRGGBB." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := validation.ValidateHabitName(c.Name); err != nil {
		return err
	}

	// Reject duplicate names up front
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	emoji := c.Emoji
	if emoji == "" {
		emoji = constants.DefaultHabitEmoji
	}
	color := c.Color
	if color == "" {
		color = constants.DefaultHabitColor
	}
	if err := validation.ValidateColor(color); err != nil {
		return err
	}

	now := ctx.Now().UnixMilli()
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Emoji:     emoji,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s\n", habit.Emoji, habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitflow habit add'.")
		return nil
	}

	for _, h := range stats.ComposeAll(habits, logs, ctx.Now()) {
		last := "never"
		if h.LastLogDate != nil {
			last = ctx.FormatRelativeTime(*h.LastLogDate)
		}
		fmt.Printf("%s %-20s streak %-3d today %-2d week %-3d total %-4d last %s\n",
			h.Emoji, h.Name, h.CurrentStreak, h.TodayLogs, h.WeeklyLogs, h.TotalLogs, last)
	}

	return nil
}

type HabitEditCmd struct {
	Name    string `arg:"" help:"Habit name."`
	NewName string `help:"New habit name." default:""`
	Emoji   string `help:"New emoji." default:""`
	Color   string `help:"New card color as #RRGGBB." default:""`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.NewName != "" {
		if err := validation.ValidateHabitName(c.NewName); err != nil {
			return err
		}
		habit.Name = c.NewName
	}
	if c.Emoji != "" {
		habit.Emoji = c.Emoji
	}
	if c.Color != "" {
		if err := validation.ValidateColor(c.Color); err != nil {
			return err
		}
		habit.Color = c.Color
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Force bool   `help:"Skip confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	logs, err := ctx.Store.GetLogsForHabit(habit.ID)
	if err != nil {
		return err
	}
	if !c.Force && len(logs) > 0 {
		return fmt.Errorf("habit %q has %d logs; re-run with --force to delete them too", c.Name, len(logs))
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and %d logs\n", c.Name, len(logs))
	return nil
}
