package cli

import (
	"fmt"

	"github.com/mwei/habitflow/internal/config"
)

type InitCmd struct {
	Backend string `help:"Storage backend: file or sqlite." default:"file" enum:"file,sqlite"`
	DataDir string `help:"Data directory (default: XDG data dir)." default:""`
}

func (c *InitCmd) Run(ctx *Context) error {
	cfg := &config.Config{
		Backend: c.Backend,
		DataDir: c.DataDir,
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Printf("Initialized habitflow: backend=%s data=%s\n", cfg.GetBackend(), cfg.GetDataDir())
	return nil
}

type ResetCmd struct {
	Force bool `help:"Skip confirmation."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		return fmt.Errorf("reset removes all habits, records and todos; re-run with --force to confirm")
	}

	if err := ctx.Repo.Clear(); err != nil {
		return err
	}
	if err := ctx.Store.LoadInitialData(); err != nil {
		return err
	}

	fmt.Println("All data cleared.")
	return nil
}
