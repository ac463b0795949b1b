package main

import (
	"context"
	"log"

	"pinecone-index-tools/internal/config"
	"pinecone-index-tools/internal/flusher"
	"pinecone-index-tools/internal/pinecone"
)

// One-shot flush of the entire index. No flags, no confirmation.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v. Aborting.", err)
	}

	ctx := context.Background()

	log.Printf("Connecting to Pinecone index '%s'...", cfg.IndexName)
	client, err := pinecone.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Pinecone: %v", err)
	}

	log.Println("Deleting ALL vectors from Pinecone...")
	if _, err := flusher.New(client).Flush(ctx, ""); err != nil {
		log.Fatalf("Flush failed: %v", err)
	}

	log.Println("All vectors deleted from Pinecone index!")
	log.Println("The index is now empty. Upload new documents to add vectors.")
}
