package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// maintenanceTables are the warehouse copies of the bot's Redis state,
// cleared between seasons.
var maintenanceTables = []string{
	"scope_defaults",
	"sheet_denylist",
	"user_credentials",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if closeErr := conn.Close(context.Background()); closeErr != nil {
			log.Printf("Error closing database connection: %v", closeErr)
		}
	}()

	for _, table := range maintenanceTables {
		var count int64
		row := conn.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", table))
		if err := row.Scan(&count); err != nil {
			log.Fatalf("Failed to count rows in %s: %v", table, err)
		}

		if _, err := conn.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			log.Fatalf("Failed to truncate %s: %v", table, err)
		}

		log.Printf("Cleared %s (%d rows)", table, count)
	}

	log.Println("Done")
}
