package command

import (
	"github.com/urfave/cli/v2"
)

// FilesCommand returns the files command.
func FilesCommand() *cli.Command {
	return &cli.Command{
		Name:   "files",
		Usage:  "List the configuration files found, in merge order",
		Action: listFiles,
	}
}

func listFiles(c *cli.Context) error {
	store, err := loadStore(c)
	if err != nil {
		return err
	}
	return render(c, store.Files())
}
