package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/sidelinestats/scorebook/internal/database"
	"github.com/sidelinestats/scorebook/internal/roster"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "scorebook.db",
		"MIGRATIONS_DIR": "./migrations",
		"SOURCE_ID":      "default",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func intPtr(n int) *int { return &n }

func main() {
	log.Info("Starting roster seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "", cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	records := []struct {
		first     string
		last      string
		number    *int
		positions string
	}{
		{"Alex", "Reed", intPtr(11), "WR"},
		{"Jordan", "Blake", intPtr(7), "QB"},
		{"Sam", "Carter", intPtr(24), "RB, KR"},
		{"Casey", "Nguyen", intPtr(3), "K, P"},
		{"Riley", "Okafor", intPtr(52), "LB"},
		{"Devon", "Price", intPtr(21), "CB"},
		{"Morgan", "Ellis", intPtr(88), "TE"},
		{"Taylor", "Frost", nil, "OL"},
	}

	players := make([]roster.Player, 0, len(records))
	for _, r := range records {
		players = append(players, roster.Player{
			Key:       roster.BuildKey(r.number, r.first, r.last),
			FirstName: r.first,
			LastName:  r.last,
			Number:    r.number,
			Positions: r.positions,
		})
	}

	store := roster.NewStore(db)
	if err := store.Replace(context.Background(), cfg["SOURCE_ID"], players); err != nil {
		log.Fatalf("Failed to seed roster: %s", err)
	}

	log.Info("Roster seeded.", "source", cfg["SOURCE_ID"], "players", len(players))
}
