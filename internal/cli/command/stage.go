package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

// StageCommand returns the stage command.
func StageCommand() *cli.Command {
	return &cli.Command{
		Name:      "stage",
		Usage:     "Print the active stage, or with NAME fail unless NAME is active",
		ArgsUsage: "[NAME]",
		Action:    checkStage,
	}
}

func checkStage(c *cli.Context) error {
	store, err := loadStore(c)
	if err != nil {
		return err
	}

	if c.NArg() == 0 {
		return render(c, store.Get(cfg.KeyStage))
	}

	name := c.Args().First()
	if store.IsStage(name) {
		return nil
	}
	if current, ok := store.Stage(); ok {
		return fmt.Errorf("stage %q is not active (active: %q)", name, current)
	}
	return fmt.Errorf("stage %q is not active (no stage set)", name)
}
