package command

import (
	"github.com/urfave/cli/v2"

	"github.com/d3ck-org/d3ck-cfg/internal/telemetry/logger"
	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

// ShowCommand returns the show command.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:    "show",
		Aliases: []string{"ls"},
		Usage:   "Show the whole merged configuration",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reveal",
				Usage: "Print values of sensitive keys (password, token, ...) unmasked",
			},
		},
		Action: showConfig,
	}
}

func showConfig(c *cli.Context) error {
	store, err := loadStore(c)
	if err != nil {
		return err
	}

	values := store.All()
	if !c.Bool("reveal") {
		values = maskSensitive(values)
	}
	return render(c, values)
}

// maskSensitive returns a copy of values with the values of sensitive
// keys masked. Non-string values of sensitive keys are fully redacted.
func maskSensitive(values map[string]cfg.Value) map[string]cfg.Value {
	masked := make(map[string]cfg.Value, len(values))
	for k, v := range values {
		if !logger.IsSensitiveKey(k) || v.IsNull() {
			masked[k] = v
			continue
		}
		if s, ok := v.Str(); ok {
			masked[k] = cfg.String(logger.MaskValue(s))
		} else {
			masked[k] = cfg.String(logger.Redacted)
		}
	}
	return masked
}
