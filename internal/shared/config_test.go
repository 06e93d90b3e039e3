package shared

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Report.Format != "text" || c.Report.Locale != "ko" || c.Report.Color != "auto" {
		t.Fatalf("report defaults = %+v", c.Report)
	}
	if c.Report.Normalize || c.Input.Path != "" {
		t.Fatalf("normalize and input path must default off/empty: %+v", c)
	}
	if c.Logging.Format != "text" || c.Logging.Level != "warn" {
		t.Fatalf("logging defaults = %+v", c.Logging)
	}
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dupcodes.yaml")
	yml := `input:
  path: ./exports/history.json
report:
  format: json
  normalize: true
logging:
  level: debug
`
	if err := os.WriteFile(p, []byte(yml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Input.Path != "./exports/history.json" || c.Report.Format != "json" || !c.Report.Normalize {
		t.Fatalf("file values not applied: %+v", c)
	}
	// untouched keys keep defaults
	if c.Report.Locale != "ko" || c.Logging.Format != "text" || c.Logging.Level != "debug" {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dupcodes.yaml")
	if err := os.WriteFile(p, []byte("report:\n  locale: ko\n  format: html\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("DUPCODES_LOCALE", "en")
	t.Setenv("DUPCODES_INPUT", "/data/h.json")
	t.Setenv("DUPCODES_NORMALIZE", "true")
	t.Setenv("DUPCODES_COLOR", "never")
	t.Setenv("DUPCODES_LOG_FORMAT", "json")

	c, err := LoadConfig(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Report.Locale != "en" || c.Input.Path != "/data/h.json" || !c.Report.Normalize || c.Report.Color != "never" {
		t.Fatalf("env not applied: %+v", c)
	}
	if c.Report.Format != "html" || c.Logging.Format != "json" {
		t.Fatalf("format=%q log format=%q", c.Report.Format, c.Logging.Format)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing named config should fail")
	}

	p := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(p, []byte("report: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(p); err == nil || !strings.Contains(err.Error(), "parse yaml") {
		t.Fatalf("want parse yaml error, got %v", err)
	}
}

func TestInitLogger_LevelAndFormat(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLogger(&buf, "json", "warn")
	slog.Info("hidden")
	slog.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Fatalf("json record missing: %q", out)
	}

	buf.Reset()
	InitLogger(&buf, "text", "debug")
	slog.Debug("dbg")
	if !strings.Contains(buf.String(), "msg=dbg") {
		t.Fatalf("text debug record missing: %q", buf.String())
	}
}
