package cli

import (
	"fmt"
	"os"
)

type ExportCmd struct {
	Output string `arg:"" help:"Output file path." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	snapshot, err := ctx.Repo.Export()
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.Output, snapshot, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("Exported data to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	Input string `arg:"" help:"Input file path." type:"path"`
}

// Run fully replaces stored data with the file's snapshot. The payload
// is validated first; a rejected import leaves storage untouched.
func (c *ImportCmd) Run(ctx *Context) error {
	payload, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if err := ctx.Repo.Import(payload); err != nil {
		return err
	}
	if err := ctx.Store.LoadInitialData(); err != nil {
		return err
	}

	fmt.Printf("Imported %d habits, %d records and %d todos from %s\n",
		len(ctx.Store.Habits()), len(ctx.Store.Records()), len(ctx.Store.Todos()), c.Input)
	return nil
}
