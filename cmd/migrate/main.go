package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/osse101/RocksBot_Go/internal/database"
)

const usage = "usage: migrate [up|down|status]"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", database.DriverPostgres))
	db, err := open(driver)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	switch cmd {
	case "up":
		err = database.Migrate(ctx, db, driver)
	case "down":
		err = database.MigrateDown(ctx, db, driver)
	case "status":
		var statuses []database.MigrationStatus
		statuses, err = database.Status(ctx, db, driver)
		for _, s := range statuses {
			fmt.Printf("%-8d %-10s %s\n", s.Version, s.State, s.Path)
		}
	default:
		log.Fatal(usage)
	}
	if err != nil {
		log.Fatalf("migrate %s: %v", cmd, err)
	}
}

func open(driver string) (*sql.DB, error) {
	switch driver {
	case database.DriverPostgres:
		url := database.PostgresURL(
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_NAME", "rocksbot"),
		)
		return sql.Open("pgx", url)
	case database.DriverSQLite:
		return sql.Open(database.DriverSQLite, getEnv("SQLITE_PATH", "data/economy.db"))
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
