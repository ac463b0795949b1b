package pinecone

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/pinecone-io/go-pinecone/pinecone"

	"pinecone-index-tools/internal/config"
)

// EnsureIndex creates the configured serverless index if it does not exist.
// This is the only operation that consumes the cloud/region configuration.
// Returns true when the index was created, false when it already existed.
func EnsureIndex(ctx context.Context, cfg *config.Config, dimension int32) (bool, error) {
	if err := cfg.Validate(); err != nil {
		return false, err
	}

	cloud, err := parseCloud(cfg.Cloud)
	if err != nil {
		return false, err
	}

	pc, err := sdk.NewClient(sdk.NewClientParams{ApiKey: cfg.APIKey})
	if err != nil {
		return false, fmt.Errorf("failed to create pinecone client: %w", err)
	}

	indexes, err := pc.ListIndexes(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list indexes: %w", err)
	}
	for _, idx := range indexes {
		if idx.Name == cfg.IndexName {
			return false, nil
		}
	}

	_, err = pc.CreateServerlessIndex(ctx, &sdk.CreateServerlessIndexRequest{
		Name:      cfg.IndexName,
		Dimension: dimension,
		Metric:    sdk.Cosine,
		Cloud:     cloud,
		Region:    cfg.Region,
	})
	if err != nil {
		return false, fmt.Errorf("failed to create index '%s': %w", cfg.IndexName, err)
	}

	return true, nil
}

func parseCloud(name string) (sdk.Cloud, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "aws":
		return sdk.Aws, nil
	case "gcp":
		return sdk.Gcp, nil
	case "azure":
		return sdk.Azure, nil
	default:
		return "", fmt.Errorf("unknown cloud '%s' (expected aws, gcp or azure)", name)
	}
}
