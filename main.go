package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gelato-pos/internal/advisor"
	"gelato-pos/internal/config"
	"gelato-pos/internal/database"
	"gelato-pos/internal/router"
	"gelato-pos/internal/store"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure data directory exists
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// load the persisted collections (seeds on first run; a corrupt slot
	// is fatal here, there is no recovery policy)
	st, err := store.Open(db)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	adv := advisor.New(cfg.Gemini)

	// setup router
	r := router.SetupRouter(cfg, db, st, adv)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
