// Package cfg resolves stage-specific configuration values from JSON
// files.
//
// Files named cfg.json, and cfg.<stage>.json for the active stage, are
// looked up in a fixed list of base directories and merged into one flat
// key/value mapping. Later files win: a top-level key read from a later
// file replaces the earlier value wholesale.
//
// # Search order
//
// Base directories, each fully processed before the next:
//
//  1. The installation directory (WithInstallDir)
//  2. Directories listed in D3CK_CFG_DIRS, then NODED3CK_CFG_DIRS
//     (colon-separated)
//  3. The directory of the script path (WithScriptPath, default the
//     running executable with symlinks resolved)
//  4. Extra directories (WithDirs)
//
// Inside a base directory the order is cfg/cfg.json, cfg/cfg.<stage>.json,
// cfg.json, cfg.<stage>.json. Missing files are skipped silently.
//
// # Stage
//
// The stage comes from WithStage, else from the first non-empty of
// NODED3CK_STAGE, D3CK_STAGE and STAGE. It is stored under "_stage" and
// the merged file list under "_cfgFiles". Both are ordinary keys and a
// file may overwrite them.
//
// # Usage
//
//	store := cfg.New(
//	    cfg.WithStage("dev"),
//	    cfg.WithDirs("/etc/myapp"),
//	    cfg.WithOverrides(map[string]any{"webPort": 9468}),
//	)
//	if err := store.Load(); err != nil {
//	    log.Fatal(err)
//	}
//	host := store.Get("webHost")
//	port := store.JGetOr(cfg.Number(8080), "web", "port") // key "webPort"
//	if store.IsStage("dev") {
//	    // ...
//	}
//
// Package-level functions (Init, Get, JGet, Set, IsStage, ...) operate on
// a process-wide default store for programs that want a single global
// configuration.
//
// Values are Value variants. Only null is treated as missing: false, 0
// and "" are returned as stored even when a default is given.
package cfg
