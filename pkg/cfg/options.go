package cfg

import (
	"io"
	"os"
	"path/filepath"
	"time"
)

// Environment variables consulted while loading.
const (
	// EnvCfgDirs and EnvNodeCfgDirs hold colon-separated lists of extra
	// base directories. EnvCfgDirs is searched first.
	EnvCfgDirs     = "D3CK_CFG_DIRS"
	EnvNodeCfgDirs = "NODED3CK_CFG_DIRS"

	// EnvNodeStage, EnvStage and EnvGenericStage name the active stage,
	// checked in this order after an explicit WithStage.
	EnvNodeStage    = "NODED3CK_STAGE"
	EnvStage        = "D3CK_STAGE"
	EnvGenericStage = "STAGE"
)

// Reserved keys written by Load into the mapping.
const (
	KeyStage = "_stage"
	KeyFiles = "_cfgFiles"
)

// LoadStats describes one finished Load.
type LoadStats struct {
	Files    int
	Keys     int
	Duration time.Duration
	Err      error
}

// Observer receives a LoadStats after every Load, successful or not.
type Observer interface {
	ObserveLoad(LoadStats)
}

type options struct {
	stage      string
	dirs       []string
	verbose    bool
	encoding   string
	scriptPath string
	installDir string
	overrides  map[string]any
	logOutput  io.Writer
	lookupEnv  func(string) (string, bool)
	envPrefix  string
	observer   Observer
}

func defaultOptions() options {
	return options{
		encoding:   "utf-8",
		scriptPath: executablePath(),
		lookupEnv:  os.LookupEnv,
	}
}

// executablePath returns the resolved path of the running binary. A bare
// os.Args[0] such as "d3ck-cfg" would otherwise make the script directory
// the working directory.
func executablePath() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			return resolved
		}
		return exe
	}
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return ""
}

// Option configures a Store.
type Option func(*options)

// WithStage sets the stage explicitly, taking priority over the stage
// environment variables.
func WithStage(stage string) Option {
	return func(o *options) {
		o.stage = stage
	}
}

// WithDirs appends extra base directories, searched last and in order.
func WithDirs(dirs ...string) Option {
	return func(o *options) {
		o.dirs = append(o.dirs, dirs...)
	}
}

// WithVerbose enables debug logging of the search path.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// WithEncoding sets the text encoding of configuration files, e.g.
// "utf-8" (default) or "latin1".
func WithEncoding(enc string) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithScriptPath sets the path whose directory is searched after the
// environment directories. It defaults to the running executable with
// symlinks resolved, falling back to os.Args[0]. An empty path disables
// that base directory.
func WithScriptPath(path string) Option {
	return func(o *options) {
		o.scriptPath = path
	}
}

// WithInstallDir sets the installation directory, searched first.
func WithInstallDir(dir string) Option {
	return func(o *options) {
		o.installDir = dir
	}
}

// WithOverrides sets initial values. Files loaded afterwards overwrite
// keys they share with the overrides.
func WithOverrides(values map[string]any) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]any, len(values))
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// WithLogOutput sets where verbose diagnostics are written. Without it a
// verbose Store logs through logger.Default when that logger has debug
// enabled, and to os.Stderr otherwise.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// WithLookupEnv replaces os.LookupEnv for the stage and directory
// variables.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		o.lookupEnv = lookup
	}
}

// WithEnvPrefix merges process environment variables starting with
// prefix after all files. With prefix "APP_", APP_WEB_HOST becomes key
// "webHost" holding a string. WithLookupEnv does not apply here.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithObserver registers an Observer notified after every Load.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}
