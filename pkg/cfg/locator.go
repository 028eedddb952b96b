package cfg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/d3ck-org/d3ck-cfg/internal/telemetry/logger"
)

// BaseName is the file name of the base configuration file.
const BaseName = "cfg.json"

// SubDir is searched inside every base directory before the directory itself.
const SubDir = "cfg"

// LocateOptions are the inputs of Locate.
type LocateOptions struct {
	Stage      string   // Active stage; empty for none
	InstallDir string   // Searched first; empty to skip
	EnvDirs    []string // Searched second, in order
	ScriptPath string   // Its directory is searched third; empty to skip
	Dirs       []string // Searched last, in order
}

// BaseDirs returns the base directories in search order.
func (o LocateOptions) BaseDirs() []string {
	dirs := make([]string, 0, 2+len(o.EnvDirs)+len(o.Dirs))
	if o.InstallDir != "" {
		dirs = append(dirs, o.InstallDir)
	}
	dirs = append(dirs, o.EnvDirs...)
	if o.ScriptPath != "" {
		dirs = append(dirs, filepath.Dir(o.ScriptPath))
	}
	dirs = append(dirs, o.Dirs...)
	return dirs
}

// Locate returns the existing configuration files in merge order.
//
// Every base directory contributes, in this order and only if present:
//
//	<base>/cfg/cfg.json
//	<base>/cfg/cfg.<stage>.json
//	<base>/cfg.json
//	<base>/cfg.<stage>.json
func Locate(o LocateOptions) []string {
	return locate(o, logger.Nop())
}

func locate(o LocateOptions, log logger.Logger) []string {
	var files []string
	for _, base := range o.BaseDirs() {
		for _, candidate := range Candidates(base, o.Stage) {
			if fileExists(candidate) {
				log.Debug("cfg file found", "path", candidate)
				files = append(files, candidate)
			} else {
				log.Debug("cfg file not found", "path", candidate)
			}
		}
	}
	return files
}

// Candidates returns the candidate paths of one base directory in merge
// order, whether or not they exist.
func Candidates(base, stage string) []string {
	var out []string
	for _, dir := range []string{filepath.Join(base, SubDir), base} {
		path := filepath.Join(dir, BaseName)
		out = append(out, path)
		if stage != "" {
			out = append(out, StagePath(path, stage))
		}
	}
	return out
}

// StagePath derives the stage file from a base file path by replacing
// the trailing "json" with "<stage>.json": cfg.json becomes cfg.dev.json.
func StagePath(path, stage string) string {
	return strings.TrimSuffix(path, "json") + stage + ".json"
}

// fileExists treats every stat failure, permission errors included, as
// a missing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SplitDirs splits a colon-separated directory list, dropping empty
// segments.
func SplitDirs(list string) []string {
	var dirs []string
	for _, dir := range strings.Split(list, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// EnvDirs returns the directories listed in EnvCfgDirs followed by those
// in EnvNodeCfgDirs.
func EnvDirs(lookup func(string) (string, bool)) []string {
	var dirs []string
	for _, name := range []string{EnvCfgDirs, EnvNodeCfgDirs} {
		if v, ok := lookup(name); ok {
			dirs = append(dirs, SplitDirs(v)...)
		}
	}
	return dirs
}

// ResolveStage returns explicit if set, otherwise the first non-empty
// stage variable.
func ResolveStage(explicit string, lookup func(string) (string, bool)) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{EnvNodeStage, EnvStage, EnvGenericStage} {
		if v, ok := lookup(name); ok && v != "" {
			return v
		}
	}
	return ""
}
