package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/config"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/billing"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/content"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/domain/event"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/database"
)

const usage = `
AI Content Generator - Database CLI Tool

Usage:
  migrate [command]

Commands:
  up          Run GORM migrations for all tables
  status      Show database connection status
  reset       Drop all tables and re-run migrations (DANGEROUS)

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go status
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	database.Connect(cfg)

	switch flag.Arg(0) {
	case "up":
		runMigrationsUp()
	case "status":
		showStatus()
	case "reset":
		runReset()
	default:
		fmt.Printf("Unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}

func models() []interface{} {
	return []interface{}{
		&event.ScheduledEvent{},
		&content.GeneratedContent{},
		&content.BrandProfile{},
		&billing.CreditAccount{},
	}
}

func runMigrationsUp() {
	log.Println("Running migrations...")
	if err := database.DB.AutoMigrate(models()...); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")
}

func showStatus() {
	if err := database.HealthCheck(); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Database connection: OK")

	for _, m := range models() {
		migrator := database.DB.Migrator()
		if migrator.HasTable(m) {
			log.Printf("table %T: present", m)
		} else {
			log.Printf("table %T: MISSING", m)
		}
	}
}

func runReset() {
	log.Println("Dropping all tables...")
	if err := database.DB.Migrator().DropTable(models()...); err != nil {
		log.Fatalf("Drop failed: %v", err)
	}
	runMigrationsUp()
}
