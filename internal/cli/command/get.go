package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

func defaultFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "default",
		Usage: "Value printed when the key is missing or null (JSON or plain string)",
	}
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the value of a key",
		ArgsUsage: "KEY",
		Flags:     []cli.Flag{defaultFlag()},
		Action:    getValue,
	}
}

// JGetCommand returns the jget command.
func JGetCommand() *cli.Command {
	return &cli.Command{
		Name:      "jget",
		Usage:     "Print the value of a key joined from parts (web host reads webHost)",
		ArgsUsage: "[PART...]",
		Flags:     []cli.Flag{defaultFlag()},
		Action:    jgetValue,
	}
}

func getValue(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("get requires exactly one KEY argument")
	}
	key := c.Args().First()

	store, err := loadStore(c)
	if err != nil {
		return err
	}
	return render(c, store.GetOr(key, defaultValue(c)))
}

func jgetValue(c *cli.Context) error {
	store, err := loadStore(c)
	if err != nil {
		return err
	}
	return render(c, store.JGetOr(defaultValue(c), c.Args().Slice()...))
}

func defaultValue(c *cli.Context) cfg.Value {
	if !c.IsSet("default") {
		return cfg.Null()
	}
	return ParseValue(c.String("default"))
}
