package main

import (
	"context"
	"flag"
	"log"
	"os"

	"medicart/internal/config"
	"medicart/internal/db"
	"medicart/internal/importer"
	productrepo "medicart/internal/repository/product"
)

func main() {
	catalogPath := flag.String("catalog", "catalog.json", "path to the product catalog JSON file")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	f, err := os.Open(*catalogPath)
	if err != nil {
		logger.Fatalf("open catalog: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := productrepo.NewPostgres(pool, logger)
	imp := importer.NewJSONImporter(f, repo)

	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", count, err)
	}
	logger.Printf("imported %d products", count)
}
