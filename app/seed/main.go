package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"shopMate/domain"
	"shopMate/pkg/config"
	"shopMate/pkg/database"
	"shopMate/pkg/logger"

	"github.com/goccy/go-json"
)

// Loads the static product catalog into postgres. Run once at deploy time;
// the recommender treats the catalog as immutable reference data.
func main() {
	catalogPath := flag.String("catalog", "data/products.json", "path to the catalog JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	raw, err := os.ReadFile(*catalogPath)
	if err != nil {
		logger.Fatal("Failed to read catalog file", "error", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		logger.Fatal("Failed to parse catalog file", "error", err)
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created := 0
	for i := range products {
		var existing domain.Product
		err := db.WithContext(ctx).Where("name = ?", products[i].Name).First(&existing).Error
		if err == nil {
			continue
		}

		if err := db.WithContext(ctx).Create(&products[i]).Error; err != nil {
			logger.Fatal("Failed to insert product", "name", products[i].Name, "error", err)
		}
		created++
	}

	logger.Info("Catalog seeded", "total", len(products), "created", created)
}
