package pinecone

import (
	"context"
	"fmt"
	"sort"

	sdk "github.com/pinecone-io/go-pinecone/pinecone"

	"pinecone-index-tools/internal/config"
)

// Client wraps the Pinecone SDK with convenience methods for one named index
type Client struct {
	pc        *sdk.Client
	indexName string
	indexHost string
}

// NewClient authenticates with the API key and resolves the configured index.
// It fails before anything is deleted when the key or index name is rejected.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pc, err := sdk.NewClient(sdk.NewClientParams{ApiKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, cfg.IndexName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve index '%s': %w", cfg.IndexName, err)
	}

	return &Client{
		pc:        pc,
		indexName: idx.Name,
		indexHost: idx.Host,
	}, nil
}

// IndexName returns the name of the resolved index.
func (c *Client) IndexName() string {
	return c.indexName
}

// IndexStats holds vector counts for the index
type IndexStats struct {
	TotalVectorCount uint32
	Dimension        uint32
	// Namespaces maps namespace name to its vector count. The default
	// namespace appears under the empty string.
	Namespaces map[string]uint32
}

// DeleteAll submits a bulk-delete request for every vector in the given
// namespace. The empty string targets the service's default namespace. The
// service may apply the delete asynchronously; a nil return means the request
// was accepted, not that propagation has completed.
func (c *Client) DeleteAll(ctx context.Context, namespace string) error {
	conn, err := c.connect(namespace)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.DeleteAllVectorsInNamespace(ctx); err != nil {
		return fmt.Errorf("failed to delete vectors in namespace '%s': %w", namespace, err)
	}

	return nil
}

// Stats returns total and per-namespace vector counts for the index.
func (c *Client) Stats(ctx context.Context) (*IndexStats, error) {
	conn, err := c.connect("")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	resp, err := conn.DescribeIndexStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to describe index stats: %w", err)
	}

	stats := &IndexStats{
		TotalVectorCount: resp.TotalVectorCount,
		Dimension:        resp.Dimension,
		Namespaces:       make(map[string]uint32, len(resp.Namespaces)),
	}
	for name, summary := range resp.Namespaces {
		if summary == nil {
			continue
		}
		stats.Namespaces[name] = summary.VectorCount
	}

	return stats, nil
}

// ListNamespaces returns the namespaces currently holding vectors, sorted.
func (c *Client) ListNamespaces(ctx context.Context) ([]string, error) {
	stats, err := c.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return sortedNamespaces(stats.Namespaces), nil
}

func (c *Client) connect(namespace string) (*sdk.IndexConnection, error) {
	conn, err := c.pc.Index(sdk.NewIndexConnParams{
		Host:      c.indexHost,
		Namespace: namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to index '%s': %w", c.indexName, err)
	}
	return conn, nil
}

func sortedNamespaces(counts map[string]uint32) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
