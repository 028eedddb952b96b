package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/d3ck-org/d3ck-cfg/internal/cli/output"
	"github.com/d3ck-org/d3ck-cfg/internal/infra/buildinfo"
	"github.com/d3ck-org/d3ck-cfg/internal/telemetry/logger"
	"github.com/d3ck-org/d3ck-cfg/internal/telemetry/metric"
	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:                      buildinfo.AppName,
		Usage:                     "Resolve and inspect cfg.json configuration",
		Version:                   buildinfo.Get().Version,
		Flags:                     globalFlags(),
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			ShowCommand(),
			GetCommand(),
			JGetCommand(),
			FilesCommand(),
			StageCommand(),
			VersionCommand(),
		},
		Before: func(c *cli.Context) error {
			if _, err := output.ParseFormat(c.String("output")); err != nil {
				return err
			}

			log, err := logger.New(logger.Config{Level: "warn", Format: "text", Output: c.App.ErrWriter})
			if err != nil {
				return err
			}
			logger.SetDefault(log)
			if c.Bool("verbose") {
				logger.SetLevel("debug")
			}
			return nil
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "stage",
			Aliases: []string{"s"},
			Usage:   "Stage whose cfg.<stage>.json files are merged (default from NODED3CK_STAGE, D3CK_STAGE or STAGE)",
		},
		&cli.StringSliceFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Additional directory to search, searched last (repeatable)",
		},
		&cli.StringFlag{
			Name:    "enc",
			Usage:   "Encoding of the configuration files",
			EnvVars: []string{"D3CK_CFG_ENC"},
			Value:   "utf-8",
		},
		&cli.StringFlag{
			Name:  "script",
			Usage: "Path of the program whose directory is searched (default: this executable)",
		},
		&cli.StringSliceFlag{
			Name:  "set",
			Usage: "Initial value as key=value, overridden by files; value is JSON or a plain string (repeatable)",
		},
		&cli.StringFlag{
			Name:    "env-prefix",
			Usage:   "Merge environment variables with this prefix after the files (PREFIX_WEB_HOST sets webHost)",
			EnvVars: []string{"D3CK_CFG_ENV_PREFIX"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			EnvVars: []string{"D3CK_CFG_OUTPUT"},
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log searched paths and merge results to stderr",
			EnvVars: []string{"D3CK_CFG_VERBOSE"},
		},
		&cli.StringFlag{
			Name:    "metrics-textfile",
			Usage:   "Write load metrics in Prometheus text format to this file",
			EnvVars: []string{"D3CK_CFG_METRICS_TEXTFILE"},
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	// Locating and merging
	Stage     string
	Dirs      []string
	Encoding  string
	Script    string
	Set       []string
	EnvPrefix string

	// Output format
	Output string // table, json, yaml

	// Other
	Verbose         bool
	MetricsTextfile string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Stage:           c.String("stage"),
		Dirs:            c.StringSlice("dir"),
		Encoding:        c.String("enc"),
		Script:          c.String("script"),
		Set:             c.StringSlice("set"),
		EnvPrefix:       c.String("env-prefix"),
		Output:          c.String("output"),
		Verbose:         c.Bool("verbose"),
		MetricsTextfile: c.String("metrics-textfile"),
	}
}

// Options converts the flags into store options.
func (f *GlobalFlags) Options() ([]cfg.Option, error) {
	overrides, err := ParseAssignments(f.Set)
	if err != nil {
		return nil, err
	}

	opts := []cfg.Option{
		cfg.WithStage(f.Stage),
		cfg.WithDirs(f.Dirs...),
		cfg.WithEncoding(f.Encoding),
		cfg.WithOverrides(overrides),
		cfg.WithVerbose(f.Verbose),
		cfg.WithEnvPrefix(f.EnvPrefix),
	}
	if f.Script != "" {
		opts = append(opts, cfg.WithScriptPath(f.Script))
	}
	return opts, nil
}

// ParseAssignments parses key=value pairs. Values that are valid JSON are
// decoded, anything else is kept as a string.
func ParseAssignments(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", pair)
		}
		values[key] = ParseValue(raw)
	}
	return values, nil
}

// ParseValue decodes s as JSON, falling back to the string itself.
func ParseValue(s string) cfg.Value {
	var v cfg.Value
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return cfg.String(s)
	}
	return v
}

// loadStore builds a store from the global flags and loads it. When a
// metrics textfile is requested it is written whether or not the load
// succeeded.
func loadStore(c *cli.Context) (*cfg.Store, error) {
	flags := ParseGlobalFlags(c)
	opts, err := flags.Options()
	if err != nil {
		return nil, err
	}

	var collector *metric.Collector
	if flags.MetricsTextfile != "" {
		collector = metric.NewCollector()
		opts = append(opts, cfg.WithObserver(collector))
	}

	logger.Debug("loading configuration", "stage", flags.Stage, "dirs", len(flags.Dirs))
	store := cfg.New(opts...)
	loadErr := store.Load()

	if collector != nil {
		if err := collector.WriteTextfile(flags.MetricsTextfile); err != nil {
			logger.Warn("metrics not written", "path", flags.MetricsTextfile, "error", err)
		}
	}

	if loadErr != nil {
		return nil, loadErr
	}
	return store, nil
}

// render writes data to the app's writer in the selected format.
func render(c *cli.Context, data any) error {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(c.App.Writer, data)
}
