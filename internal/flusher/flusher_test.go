package flusher

import (
	"context"
	"errors"
	"testing"
)

// MockVectorStore implements the VectorStore interface for testing
type MockVectorStore struct {
	Namespaces  []string
	ListErr     error
	DeleteErrs  map[string]error
	DeleteCalls []string
	ListCalls   int
}

func NewMockVectorStore(namespaces ...string) *MockVectorStore {
	return &MockVectorStore{
		Namespaces: namespaces,
		DeleteErrs: make(map[string]error),
	}
}

func (m *MockVectorStore) DeleteAll(ctx context.Context, namespace string) error {
	m.DeleteCalls = append(m.DeleteCalls, namespace)
	return m.DeleteErrs[namespace]
}

func (m *MockVectorStore) ListNamespaces(ctx context.Context) ([]string, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Namespaces, nil
}

func TestFlushScopedToNamespace(t *testing.T) {
	store := NewMockVectorStore("", "team-x", "team-y")
	f := New(store)

	result, err := f.Flush(context.Background(), "team-x")
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if len(store.DeleteCalls) != 1 || store.DeleteCalls[0] != "team-x" {
		t.Errorf("Flush() delete calls = %v, want exactly [team-x]", store.DeleteCalls)
	}
	if store.ListCalls != 0 {
		t.Errorf("Flush() listed namespaces %d times for a scoped flush, want 0", store.ListCalls)
	}
	if len(result.Namespaces) != 1 || result.Namespaces[0] != "team-x" {
		t.Errorf("Flush() result = %v, want [team-x]", result.Namespaces)
	}
}

func TestFlushTrimsNamespace(t *testing.T) {
	store := NewMockVectorStore()
	f := New(store)

	_, err := f.Flush(context.Background(), "  team-x  ")
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if len(store.DeleteCalls) != 1 || store.DeleteCalls[0] != "team-x" {
		t.Errorf("Flush() delete calls = %v, want [team-x]", store.DeleteCalls)
	}
}

func TestFlushEntireIndex(t *testing.T) {
	tests := []struct {
		name       string
		namespace  string
		namespaces []string
		want       []string
	}{
		{
			name:       "no argument",
			namespace:  "",
			namespaces: []string{"", "alpha", "beta"},
			want:       []string{"", "alpha", "beta"},
		},
		{
			name:       "whitespace-only argument",
			namespace:  "   ",
			namespaces: []string{"alpha"},
			want:       []string{"", "alpha"},
		},
		{
			name:       "default namespace missing from listing",
			namespace:  "",
			namespaces: []string{"alpha", "beta"},
			want:       []string{"", "alpha", "beta"},
		},
		{
			name:       "empty index",
			namespace:  "",
			namespaces: nil,
			want:       []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMockVectorStore(tt.namespaces...)
			f := New(store)

			result, err := f.Flush(context.Background(), tt.namespace)
			if err != nil {
				t.Fatalf("Flush() error = %v", err)
			}

			assertEqualSlices(t, "delete calls", store.DeleteCalls, tt.want)
			assertEqualSlices(t, "result namespaces", result.Namespaces, tt.want)
		})
	}
}

func TestFlushIsIdempotentOnEmptyIndex(t *testing.T) {
	store := NewMockVectorStore()
	f := New(store)

	for i := 0; i < 2; i++ {
		if _, err := f.Flush(context.Background(), ""); err != nil {
			t.Fatalf("Flush() attempt %d error = %v", i+1, err)
		}
	}

	assertEqualSlices(t, "delete calls", store.DeleteCalls, []string{"", ""})
}

func TestFlushPropagatesDeleteError(t *testing.T) {
	wantErr := errors.New("connection reset")
	store := NewMockVectorStore("", "alpha", "beta")
	store.DeleteErrs["alpha"] = wantErr
	f := New(store)

	_, err := f.Flush(context.Background(), "")
	if !errors.Is(err, wantErr) {
		t.Fatalf("Flush() error = %v, want wrapped %v", err, wantErr)
	}

	// The failing namespace aborts the sequence; beta is never reached.
	assertEqualSlices(t, "delete calls", store.DeleteCalls, []string{"", "alpha"})
}

func TestFlushPropagatesListError(t *testing.T) {
	store := NewMockVectorStore()
	store.ListErr = errors.New("unauthorized")
	f := New(store)

	_, err := f.Flush(context.Background(), "")
	if !errors.Is(err, store.ListErr) {
		t.Fatalf("Flush() error = %v, want wrapped %v", err, store.ListErr)
	}
	if len(store.DeleteCalls) != 0 {
		t.Errorf("Flush() issued deletes %v after a listing failure, want none", store.DeleteCalls)
	}
}

func TestFlushScopedErrorIncludesNamespace(t *testing.T) {
	store := NewMockVectorStore()
	store.DeleteErrs["team-x"] = errors.New("timeout")
	f := New(store)

	_, err := f.Flush(context.Background(), "team-x")
	if err == nil {
		t.Fatal("Flush() error = nil, want failure")
	}
	if got := err.Error(); got != "flush of namespace 'team-x' failed: timeout" {
		t.Errorf("Flush() error = %q", got)
	}
}

func assertEqualSlices(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", label, got, want)
			return
		}
	}
}
