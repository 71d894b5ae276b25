package cli

import (
	"fmt"

	"github.com/nateharris/habitflow/internal/backup"
	"github.com/nateharris/habitflow/internal/logger"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habitflow storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

type ExportCmd struct{}

func (c *ExportCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Export(ctx.Store, ctx.Now())
	if err != nil {
		return err
	}
	logger.Info("Exported archive", "path", path)
	fmt.Printf("Exported to %s\n", path)
	return nil
}

type ImportCmd struct {
	File    string `arg:"" help:"Archive file to import."`
	Replace bool   `help:"Replace all existing data instead of merging by id."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	habits, logs, err := mgr.Import(ctx.Store, c.File, c.Replace)
	if err != nil {
		return err
	}
	logger.Info("Imported archive", "file", c.File, "habits", habits, "logs", logs)
	if c.Replace {
		fmt.Printf("Replaced data with %d habits and %d logs\n", habits, logs)
	} else {
		fmt.Printf("Merged %d new habits and %d new logs\n", habits, logs)
	}
	return nil
}

type BackupsCmd struct{}

func (c *BackupsCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	infos, err := mgr.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s  %d bytes\n", info.Path, info.Size)
	}
	return nil
}

type ClearCmd struct {
	Force bool `help:"Required; deletes every habit and log."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Force {
		return fmt.Errorf("this deletes all data; re-run with --force to confirm")
	}
	if err := ctx.Store.ClearAll(); err != nil {
		return err
	}
	logger.Warn("All data cleared")
	fmt.Println("All data cleared.")
	return nil
}
