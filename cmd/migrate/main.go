package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/tuj-devs/officehours-service/internal/config"
	"github.com/tuj-devs/officehours-service/migrations"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	command := flag.String("command", "up", "goose command: up, down, status, version")
	flag.Parse()

	// A .env file can override the DSN, handy for CI and local runs.
	_ = godotenv.Load(".env")

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		dsn = cfg.Database.DSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Printf("Failed to set goose dialect: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch *command {
	case "up":
		err = goose.UpContext(ctx, db, ".")
	case "down":
		err = goose.DownContext(ctx, db, ".")
	case "status":
		err = goose.StatusContext(ctx, db, ".")
	case "version":
		var version int64
		version, err = goose.GetDBVersionContext(ctx, db)
		if err == nil {
			fmt.Printf("Current migration version: %d\n", version)
		}
	default:
		fmt.Printf("Unknown command %q\n", *command)
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Migration %s failed: %v\n", *command, err)
		os.Exit(1)
	}
}
