package main

import (
	"context"
	"flag"
	"log"

	"pinecone-index-tools/internal/config"
	"pinecone-index-tools/internal/pinecone"
)

func main() {
	var (
		dimension = flag.Int("dimension", 1536, "Vector dimension for a newly created index")
	)
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v. Aborting.", err)
	}

	ctx := context.Background()

	log.Printf("Ensuring index '%s' exists (cloud %s, region %s)...", cfg.IndexName, cfg.Cloud, cfg.Region)
	created, err := pinecone.EnsureIndex(ctx, cfg, int32(*dimension))
	if err != nil {
		log.Fatalf("Failed to ensure index: %v", err)
	}

	if created {
		log.Printf("Created serverless index '%s' with dimension %d", cfg.IndexName, *dimension)
	} else {
		log.Printf("Index '%s' already exists", cfg.IndexName)
	}
}
