package main

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/clubsanmartin/americano/internal/roster"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	config["DB_NAME"] = "americano.db"
	if value, ok := os.LookupEnv("DB_NAME"); ok {
		config["DB_NAME"] = value
	}
	config["TURSO_PRIMARY_URL"] = os.Getenv("TURSO_PRIMARY_URL")
	config["TURSO_AUTH_TOKEN"] = os.Getenv("TURSO_AUTH_TOKEN")
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Seed the primary database when configured, the local file otherwise.
	dbURL := "file:" + cfg["DB_NAME"]
	if cfg["TURSO_PRIMARY_URL"] != "" {
		dbURL = fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	}
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %s", err)
	}

	log.Info("Successfully connected to the database.")

	seed := time.Now().UnixNano()
	if value, ok := os.LookupEnv("SEED"); ok {
		if _, err := fmt.Sscanf(value, "%d", &seed); err != nil {
			log.Fatalf("Invalid SEED value %q: %s", value, err)
		}
	}
	men, women := roster.DemoPlayers(rand.New(rand.NewSource(seed)))
	players := append(men, women...)

	log.Info("Preparing to insert demo players...", "total", len(players))
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, len(players))
	valueArgs := make([]interface{}, 0, len(players)*4)
	for _, p := range players {
		valueStrings = append(valueStrings, "(?, ?, ?, ?)")
		valueArgs = append(valueArgs, p.ID, p.Name, p.Ranking, string(p.Gender))
	}

	stmt := fmt.Sprintf(`
		INSERT INTO players (id, name, ranking, gender)
		VALUES %s
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			ranking = excluded.ranking,
			gender = excluded.gender;`, strings.Join(valueStrings, ","))

	if _, err := tx.Exec(stmt, valueArgs...); err != nil {
		tx.Rollback()
		log.Fatalf("Failed to execute batch insert: %s", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted demo roster.", "players", len(players), "duration", duration)
}
