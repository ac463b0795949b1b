package flusher

import (
	"context"
	"fmt"
	"strings"
)

// VectorStore defines the index operations the flusher needs. The empty
// namespace string targets the store's default namespace.
type VectorStore interface {
	DeleteAll(ctx context.Context, namespace string) error
	ListNamespaces(ctx context.Context) ([]string, error)
}

// Flusher submits bulk-delete requests against a vector index
type Flusher struct {
	store VectorStore
}

// Result reports the namespaces a delete request was submitted for. The empty
// string entry is the default namespace. Submission means the requests were
// accepted; the service may apply them asynchronously.
type Result struct {
	Namespaces []string
}

// New creates a Flusher on top of the given store.
func New(store VectorStore) *Flusher {
	return &Flusher{store: store}
}

// Flush deletes all vectors in the given namespace, or in the entire index
// when the namespace is empty after trimming. The entire-index case deletes
// each namespace the store reports, the default namespace included. Any store
// error aborts the sequence; no delete is ever retried.
func (f *Flusher) Flush(ctx context.Context, namespace string) (*Result, error) {
	namespace = strings.TrimSpace(namespace)

	if namespace != "" {
		if err := f.store.DeleteAll(ctx, namespace); err != nil {
			return nil, fmt.Errorf("flush of namespace '%s' failed: %w", namespace, err)
		}
		return &Result{Namespaces: []string{namespace}}, nil
	}

	namespaces, err := f.store.ListNamespaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	// Stats omit the default namespace when it holds no vectors; flush it
	// anyway so an entire-index flush always covers the default scope.
	if !contains(namespaces, "") {
		namespaces = append([]string{""}, namespaces...)
	}

	for _, ns := range namespaces {
		if err := f.store.DeleteAll(ctx, ns); err != nil {
			if ns == "" {
				return nil, fmt.Errorf("flush of default namespace failed: %w", err)
			}
			return nil, fmt.Errorf("flush of namespace '%s' failed: %w", ns, err)
		}
	}

	return &Result{Namespaces: namespaces}, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
