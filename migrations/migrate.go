package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/venoajie/trading-web-project/src/config"
	"github.com/venoajie/trading-web-project/src/database"
)

func main() {
	statusOnly := flag.Bool("status", false, "print migration status without applying")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := database.SetupDB(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if !*statusOnly {
		if err := database.Migrate(db.SQL); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		log.Println("Database migration completed successfully")
	}

	if err := database.MigrationStatus(db.SQL); err != nil {
		log.Fatalf("Failed to read migration status: %v", err)
	}
}
