package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

// isolateEnv clears the variables the library reads from the process
// environment.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{cfg.EnvCfgDirs, cfg.EnvNodeCfgDirs, cfg.EnvNodeStage, cfg.EnvStage, cfg.EnvGenericStage} {
		t.Setenv(name, "")
	}
}

// writeCfg writes content to dir/name.
func writeCfg(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// fixtureDir returns a directory holding cfg.json and cfg.dev.json.
func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeCfg(t, dir, "cfg.json", `{"webHost":"127.2.2.2","dbPassword":"supersecret123","debug":false}`)
	writeCfg(t, dir, "cfg.dev.json", `{"webPort":9999}`)
	return dir
}

// runApp runs the CLI with args and returns what it wrote to stdout and
// stderr. The script directory is pinned to an empty directory.
func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolateEnv(t)

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	script := filepath.Join(t.TempDir(), "app")
	full := append([]string{"d3ck-cfg", "--script", script}, args...)
	err := app.Run(full)
	return stdout.String(), stderr.String(), err
}

func mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}
