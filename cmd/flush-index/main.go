package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"pinecone-index-tools/internal/config"
	"pinecone-index-tools/internal/flusher"
	"pinecone-index-tools/internal/pinecone"
)

func main() {
	var (
		namespace = flag.String("namespace", "", "Namespace to flush (empty flushes the entire index)")
		dryRun    = flag.Bool("dry-run", false, "Report vector counts without deleting anything")
	)
	flag.Parse()

	// Allow a positional argument for the namespace
	if flag.NArg() > 0 {
		*namespace = flag.Arg(0)
	}
	ns := strings.TrimSpace(*namespace)

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

	stats, err := client.Stats(ctx)
	if err != nil {
		log.Fatalf("Failed to get index stats: %v", err)
	}

	if ns != "" {
		log.Printf("Namespace '%s' holds %d vectors", ns, stats.Namespaces[ns])
	} else {
		log.Printf("Index '%s' holds %d vectors across %d namespaces",
			cfg.IndexName, stats.TotalVectorCount, len(stats.Namespaces))
	}

	if *dryRun {
		if ns != "" {
			log.Printf("Dry run: would delete ALL vectors in namespace '%s'", ns)
		} else {
			log.Printf("Dry run: would delete ALL vectors in the entire index")
		}
		return
	}

	if ns != "" {
		log.Printf("Deleting ALL vectors in namespace '%s'...", ns)
	} else {
		log.Printf("Deleting ALL vectors in the entire index...")
	}

	result, err := flusher.New(client).Flush(ctx, ns)
	if err != nil {
		log.Fatalf("Flush failed: %v", err)
	}

	log.Printf("Delete request submitted for %d namespace(s). Depending on size, propagation may take a moment.",
		len(result.Namespaces))
}
