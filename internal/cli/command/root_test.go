package command

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

func TestApp(t *testing.T) {
	app := App()
	if app == nil {
		t.Fatal("App() returned nil")
	}

	if app.Name != "d3ck-cfg" {
		t.Errorf("Name = %q, want %q", app.Name, "d3ck-cfg")
	}
	if app.Usage == "" {
		t.Error("Usage should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"show", "get", "jget", "files", "stage", "version"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, flag := range App().Flags {
		flagNames[flag.Names()[0]] = true
	}

	requiredFlags := []string{"stage", "dir", "enc", "script", "set", "env-prefix", "output", "verbose", "metrics-textfile"}
	for _, name := range requiredFlags {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

func TestApp_InvalidOutput(t *testing.T) {
	_, _, err := runApp(t, "-o", "xml", "files")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("Run() error = %v, want unknown output format", err)
	}
}

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]any
		wantErr bool
	}{
		{"empty", nil, map[string]any{}, false},
		{"number", []string{"webPort=9468"}, map[string]any{"webPort": cfg.Number(9468)}, false},
		{"plain string", []string{"webHost=127.0.0.1"}, map[string]any{"webHost": cfg.String("127.0.0.1")}, false},
		{"quoted string", []string{`name="x"`}, map[string]any{"name": cfg.String("x")}, false},
		{"bool", []string{"debug=false"}, map[string]any{"debug": cfg.Bool(false)}, false},
		{"null", []string{"gone=null"}, map[string]any{"gone": cfg.Null()}, false},
		{"array with commas", []string{`tags=["a","b"]`}, map[string]any{"tags": cfg.Array([]any{"a", "b"})}, false},
		{"value with equals", []string{"dsn=a=b"}, map[string]any{"dsn": cfg.String("a=b")}, false},
		{"empty value", []string{"blank="}, map[string]any{"blank": cfg.String("")}, false},
		{"missing equals", []string{"webPort"}, nil, true},
		{"missing key", []string{"=1"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignments(tt.pairs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAssignments() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAssignments() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLoadStore_MetricsTextfile(t *testing.T) {
	dir := fixtureDir(t)
	prom := filepath.Join(t.TempDir(), "d3ck_cfg.prom")

	if _, _, err := runApp(t, "-d", dir, "--metrics-textfile", prom, "files"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(prom)
	if err != nil {
		t.Fatalf("metrics textfile not written: %v", err)
	}
	for _, want := range []string{`d3ck_cfg_loads_total{result="ok"} 1`, "d3ck_cfg_files_loaded 1"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics missing %q:\n%s", want, data)
		}
	}
}

func TestLoadStore_MetricsTextfileOnError(t *testing.T) {
	dir := t.TempDir()
	writeCfg(t, dir, "cfg.json", `{"broken":`)
	prom := filepath.Join(t.TempDir(), "d3ck_cfg.prom")

	if _, _, err := runApp(t, "-d", dir, "--metrics-textfile", prom, "show"); err == nil {
		t.Fatal("Run() should fail on malformed cfg.json")
	}

	data, err := os.ReadFile(prom)
	if err != nil {
		t.Fatalf("metrics textfile not written: %v", err)
	}
	if !strings.Contains(string(data), `d3ck_cfg_loads_total{result="error"} 1`) {
		t.Errorf("metrics should count the failed load:\n%s", data)
	}
}

func TestLoadStore_MetricsTextfileUnwritable(t *testing.T) {
	dir := fixtureDir(t)
	prom := filepath.Join(t.TempDir(), "missing", "d3ck_cfg.prom")

	_, stderr, err := runApp(t, "-d", dir, "--metrics-textfile", prom, "files")
	if err != nil {
		t.Fatalf("Run() error = %v, a metrics failure must not fail the command", err)
	}
	if !strings.Contains(stderr, "metrics not written") {
		t.Errorf("stderr = %q, want a warning", stderr)
	}
}

func TestLoadStore_Verbose(t *testing.T) {
	dir := fixtureDir(t)

	_, stderr, err := runApp(t, "-V", "-d", dir, "files")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{"loading configuration", "cfg file found", "values added to cfg"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestLoadStore_QuietWithoutVerbose(t *testing.T) {
	dir := fixtureDir(t)

	_, stderr, err := runApp(t, "-d", dir, "files")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty without -V", stderr)
	}
}

func TestLoadStore_EnvPrefix(t *testing.T) {
	dir := fixtureDir(t)
	t.Setenv("D3CKCLITEST_WEB_HOST", "10.0.0.1")

	stdout, _, err := runApp(t, "-d", dir, "--env-prefix", "D3CKCLITEST_", "get", "webHost")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stdout != "10.0.0.1\n" {
		t.Errorf("stdout = %q, want environment value", stdout)
	}
}

func TestLoadStore_UnknownEncoding(t *testing.T) {
	_, _, err := runApp(t, "--enc", "klingon", "files")
	if err == nil || !strings.Contains(err.Error(), "klingon") {
		t.Errorf("Run() error = %v, want unknown encoding", err)
	}
}
