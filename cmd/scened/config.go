package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/scenectl/internal/server"
)

type fileConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	AuthToken   string   `toml:"auth_token"`
	SceneFiles  []string `toml:"scene_files"`
}

type daemonConfig struct {
	Server     server.Config
	SceneFiles []string
}

func loadDaemonConfig(path string) (daemonConfig, error) {
	cfg := daemonConfig{Server: server.DefaultConfig()}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return daemonConfig{}, fmt.Errorf("load scened config: %w", err)
	}

	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			cfg.Server.Name = name
		}
	}
	if meta.IsDefined("addr") {
		if addr := strings.TrimSpace(raw.Addr); addr != "" {
			cfg.Server.Addr = addr
		}
	}
	if meta.IsDefined("cors_origins") {
		cfg.Server.CorsOrigins = normalizeList(raw.CorsOrigins)
	}
	if meta.IsDefined("auth_token") {
		cfg.Server.AuthToken = strings.TrimSpace(raw.AuthToken)
	}
	if meta.IsDefined("scene_files") {
		cfg.SceneFiles = normalizeList(raw.SceneFiles)
	}
	return cfg, nil
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
