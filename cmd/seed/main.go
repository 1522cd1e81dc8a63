package main

import (
	"context"
	"log"

	"vgm/internal/config"
	"vgm/internal/database"
	"vgm/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.ConnectWithOptions(cfg.DatabaseURL, database.Options{LogLevel: cfg.DBLogLevel})
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer database.Close(db)

	res, err := seed.Run(context.Background(), db)
	if err != nil {
		log.Fatal("seed failed:", err)
	}
	log.Printf("seeded platforms=%d games=%d", res.Platforms, res.Games)
}
