package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vango-dev/hyper/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.ShutdownTimeout() != DefaultShutdownTimeout {
		t.Errorf("ShutdownTimeout() = %v", cfg.ShutdownTimeout())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingGivesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(New(), cfg, cmp.AllowUnexported(Config{})); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hyper.yaml", `
server:
  port: 9000
  shutdownTimeout: 3s
render:
  async: true
  flushEvery: 32
metrics:
  enabled: false
log:
  level: debug
  format: json
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Address() != "localhost:9000" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if !cfg.Render.Async || cfg.Render.FlushEvery != 32 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics should be disabled")
	}
	if cfg.ShutdownTimeout() != 3*time.Second {
		t.Errorf("ShutdownTimeout() = %v", cfg.ShutdownTimeout())
	}
	if level, _ := cfg.Log.SlogLevel(); level != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v", level)
	}
	if filepath.Base(cfg.Path()) != "hyper.yaml" {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hyper.json", `{"server": {"host": "0.0.0.0"}, "tracing": {"enabled": true}}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != DefaultPort {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.TracerName != DefaultNamespace {
		t.Errorf("Tracing = %+v", cfg.Tracing)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should stay enabled when omitted")
	}
}

func TestFindOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hyper.json", `{}`)
	writeFile(t, dir, "hyper.yaml", `server: {port: 1}`)

	path, ok := Find(dir)
	if !ok || filepath.Base(path) != "hyper.yaml" {
		t.Errorf("Find() = %q, %v; want hyper.yaml", path, ok)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	var d *errors.Diagnostic
	if !stderrors.As(err, &d) || d.Code != "H101" {
		t.Errorf("missing file error = %v", err)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("missing file error should wrap os.ErrNotExist")
	}

	bad := writeFile(t, dir, "hyper.json", `{"server": `)
	_, err = LoadFile(bad)
	if !stderrors.As(err, &d) || d.Code != "H101" || !strings.Contains(d.Suggestion, "JSON") {
		t.Errorf("parse error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		detail string
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"timeout", func(c *Config) { c.Server.ShutdownTimeout = "soon" }, "shutdownTimeout"},
		{"flush", func(c *Config) { c.Render.FlushEvery = -1 }, "flushEvery"},
		{"metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			var d *errors.Diagnostic
			if !stderrors.As(err, &d) {
				t.Fatalf("Validate() = %v, want diagnostic", err)
			}
			if d.Code != "H100" || !strings.Contains(d.Detail, tt.detail) {
				t.Errorf("Validate() = %+v", d)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"hyper.yaml", "hyper.json"} {
		t.Run(name, func(t *testing.T) {
			cfg := New()
			cfg.Server.Port = 4000
			cfg.Metrics.Enabled = false
			cfg.Render.FlushEvery = 8

			path := filepath.Join(t.TempDir(), name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo() error = %v", err)
			}
			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if diff := cmp.Diff(cfg, loaded, cmpopts.IgnoreUnexported(Config{})); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
