package main

import (
	"context"
	"flag"
	"log"

	"pinecone-index-tools/internal/config"
	"pinecone-index-tools/internal/pinecone"
)

func main() {
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v. Aborting.", err)
	}

	ctx := context.Background()

	client, err := pinecone.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Pinecone: %v", err)
	}

	stats, err := client.Stats(ctx)
	if err != nil {
		log.Fatalf("Failed to get index stats: %v", err)
	}

	log.Printf("Index: %s (dimension %d)", client.IndexName(), stats.Dimension)
	log.Printf("Total vectors: %d", stats.TotalVectorCount)

	if len(stats.Namespaces) == 0 {
		log.Println("No namespaces hold vectors")
		return
	}

	namespaces, err := client.ListNamespaces(ctx)
	if err != nil {
		log.Fatalf("Failed to list namespaces: %v", err)
	}
	for _, ns := range namespaces {
		label := ns
		if label == "" {
			label = "(default)"
		}
		log.Printf("  %s: %d vectors", label, stats.Namespaces[ns])
	}
}
