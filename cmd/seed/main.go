// Command seed writes the canonical catalog tables to DynamoDB so downstream
// consumers of the table see the same reference data the portal serves.
package main

import (
	"context"
	"log"
	"time"

	"gogarvis-backend/infrastructure/config"
	"gogarvis-backend/infrastructure/di"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	if err := container.CatalogRepository.SeedAll(ctx, container.Catalogs); err != nil {
		log.Fatalf("Failed to seed catalog tables: %v", err)
	}

	log.Println("Catalog tables seeded")
}
