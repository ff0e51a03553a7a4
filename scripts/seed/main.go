package main

import (
	"context"
	"fmt"
	"log"

	"github.com/blaisecz/vital-quest/internal/config"
	"github.com/blaisecz/vital-quest/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(context.Background(), db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.Users {
		fmt.Printf("  %s  %-6s %-10s (%s)\n", user.ID, user.Username, user.TeamID, user.Timezone)
	}
	fmt.Printf("\nSample battle: %s\n", seed.BattleID)
}
