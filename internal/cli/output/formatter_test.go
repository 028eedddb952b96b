package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/d3ck-org/d3ck-cfg/pkg/cfg"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{" json ", FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter")
	}
	if _, ok := NewFormatter(FormatYAML).(*YAMLFormatter); !ok {
		t.Error("expected YAMLFormatter")
	}
	if _, ok := NewFormatter(FormatTable).(*TableFormatter); !ok {
		t.Error("expected TableFormatter")
	}
	if _, ok := NewFormatter("unknown").(*TableFormatter); !ok {
		t.Error("unknown format should default to table")
	}
}

func sampleMapping() map[string]cfg.Value {
	return map[string]cfg.Value{
		"webHost": cfg.String("127.2.2.2"),
		"webPort": cfg.Number(9999),
		"debug":   cfg.Bool(false),
		"tags":    cfg.Array([]any{"a", "b"}),
		"unset":   cfg.Null(),
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sampleMapping()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`"webHost": "127.2.2.2"`,
		`"webPort": 9999`,
		`"debug": false`,
		`"unset": null`,
		"\n  ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestJSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Compact: true}
	if err := f.Format(&buf, map[string]string{"url": "a&b<c>"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got, want := buf.String(), `{"url":"a&b<c>"}`+"\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]cfg.Value{
		"webHost": cfg.String("127.2.2.2"),
		"db":      cfg.Object(map[string]any{"port": float64(5432)}),
	}
	if err := (&YAMLFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "db:\n  port: 5432\nwebHost: 127.2.2.2\n"
	if got := buf.String(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
