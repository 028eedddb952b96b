package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

func TestTableFormatter_Format_Table(t *testing.T) {
	table := &Table{
		Headers: []string{"NAME", "VALUE"},
		Rows: [][]string{
			{"key1", "value1"},
			{"key2", "value2"},
		},
	}

	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME") {
		t.Error("Format() missing header NAME")
	}
	if !strings.Contains(output, "key1") {
		t.Error("Format() missing row data key1")
	}
}

func TestTableFormatter_Format_TableNoHeaders(t *testing.T) {
	table := Table{
		Headers: []string{"NAME", "VALUE"},
		Rows:    [][]string{{"key1", "value1"}},
	}

	var buf bytes.Buffer
	if err := (&TableFormatter{NoHeaders: true}).Format(&buf, table); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "NAME") {
		t.Error("Format() should not contain headers when NoHeaders=true")
	}
	if !strings.Contains(output, "key1") {
		t.Error("Format() missing row data")
	}
}

func TestTableFormatter_Format_Mapping(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, sampleMapping()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := strings.Join([]string{
		"KEY      VALUE",
		"debug    false",
		"tags     [\"a\",\"b\"]",
		"unset    null",
		"webHost  127.2.2.2",
		"webPort  9999",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableFormatter_Format_Scalars(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"nil", nil, ""},
		{"string", "plain", "plain\n"},
		{"string value", cfg.String("127.2.2.2"), "127.2.2.2\n"},
		{"number value", cfg.Number(9999), "9999\n"},
		{"null value", cfg.Null(), "null\n"},
		{"lines", []string{"/etc/cfg.json", "/etc/cfg.dev.json"}, "/etc/cfg.json\n/etc/cfg.dev.json\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&TableFormatter{}).Format(&buf, tt.data); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableFormatter_Format_Struct(t *testing.T) {
	type info struct {
		Version string `json:"version"`
		Commit  string `json:"commit"`
		Hidden  string `json:"-"`
		Plain   int
		private string
	}

	var buf bytes.Buffer
	err := (&TableFormatter{}).Format(&buf, &info{Version: "v1", Commit: "abc", Hidden: "x", Plain: 3, private: "p"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"FIELD", "version  v1", "commit   abc", "Plain    3"} {
		if !strings.Contains(output, want) {
			t.Errorf("Format() missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Hidden") || strings.Contains(output, "private") {
		t.Errorf("Format() should skip hidden and unexported fields:\n%s", output)
	}
}

func TestTableFormatter_Format_FallbackJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TableFormatter{}).Format(&buf, []int{1, 2}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "[\n  1,\n  2\n]") {
		t.Errorf("Format() = %q, want JSON fallback", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTable_Render_WriteError(t *testing.T) {
	table := &Table{}
	table.SetHeaders("KEY", "VALUE")
	table.AddRow("a", "1")

	if err := table.Render(failWriter{}); err == nil {
		t.Error("Render() should report write errors")
	}
}
