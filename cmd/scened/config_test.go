package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/scenectl/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scened.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDaemonConfigDefaults(t *testing.T) {
	testlog.Start(t)

	cfg, err := loadDaemonConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Name != "scened" {
		t.Fatalf("unexpected name: %q", cfg.Server.Name)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if cfg.Server.AuthToken != "" || len(cfg.SceneFiles) != 0 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadDaemonConfigOverrides(t *testing.T) {
	testlog.Start(t)

	cfg, err := loadDaemonConfig(writeConfig(t, `
name = "scened.lab"
addr = "127.0.0.1:9100"
cors_origins = ["http://localhost:3000", " "]
auth_token = "hunter2"
scene_files = ["scenes/demo.toml", ""]
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Name != "scened.lab" {
		t.Fatalf("unexpected name: %q", cfg.Server.Name)
	}
	if cfg.Server.Addr != "127.0.0.1:9100" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if len(cfg.Server.CorsOrigins) != 1 || cfg.Server.CorsOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins: %v", cfg.Server.CorsOrigins)
	}
	if cfg.Server.AuthToken != "hunter2" {
		t.Fatalf("unexpected token: %q", cfg.Server.AuthToken)
	}
	if len(cfg.SceneFiles) != 1 || cfg.SceneFiles[0] != "scenes/demo.toml" {
		t.Fatalf("unexpected scene files: %v", cfg.SceneFiles)
	}
}

func TestLoadDaemonConfigMissingFile(t *testing.T) {
	testlog.Start(t)

	if _, err := loadDaemonConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("missing config accepted")
	}
}

func TestLoadDaemonConfigBlankValuesKeepDefaults(t *testing.T) {
	testlog.Start(t)

	cfg, err := loadDaemonConfig(writeConfig(t, "name = \" \"\naddr = \"\"\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Name != "scened" || cfg.Server.Addr != ":9000" {
		t.Fatalf("blank values clobbered defaults: %+v", cfg.Server)
	}
}
