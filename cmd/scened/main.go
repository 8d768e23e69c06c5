package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/scenectl/internal/logging"
	"github.com/danmuck/scenectl/internal/scenefile"
	"github.com/danmuck/scenectl/internal/server"
)

func main() {
	configPath := flag.String("config", "scened.toml", "daemon config file")
	flag.Parse()

	logging.ConfigureRuntime("scened")

	cfg, err := loadDaemonConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scened: %v\n", err)
		os.Exit(1)
	}

	registry := server.NewRegistry()
	for _, path := range cfg.SceneFiles {
		doc, err := scenefile.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scened: %v\n", err)
			os.Exit(1)
		}
		s, err := scenefile.Build(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scened: %v\n", err)
			os.Exit(1)
		}
		if err := scenefile.Apply(s, doc.Ops); err != nil {
			fmt.Fprintf(os.Stderr, "scened: %v\n", err)
			os.Exit(1)
		}
		registry.Host(s)
		log.Info().Str("scene", s.Name()).Str("file", path).Int("nodes", s.Size()).Msg("scene hosted")
	}

	srv := server.NewServer(cfg.Server, registry)
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "scened: %v\n", err)
		os.Exit(1)
	}
}
