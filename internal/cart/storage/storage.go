// Package storage provides the key-value backends the cart persists to.
package storage

import (
	"context"
	"strings"
)

// Backend is a string key-value store.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Scoped is a view of a Backend restricted to one namespace.
type Scoped struct {
	backend Backend
	prefix  string
}

// Scope returns a view of backend whose keys are prefixed with scope.
func Scope(backend Backend, scope ...string) *Scoped {
	return &Scoped{backend: backend, prefix: strings.Join(scope, ":") + ":"}
}

// Get reads key within the scope.
func (s *Scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.backend.Get(ctx, s.prefix+key)
}

// Set writes key within the scope.
func (s *Scoped) Set(ctx context.Context, key, value string) error {
	return s.backend.Set(ctx, s.prefix+key, value)
}
