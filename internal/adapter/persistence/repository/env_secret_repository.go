package repository

import (
	"context"
	"log"
	"os"
	"sync"

	"stripe_books_bridge/internal/usecase/interfaces"
)

// EnvSecretRepository reads secrets from process environment variables.
// Put only overrides the value for the lifetime of the process.
type EnvSecretRepository struct {
	mu        sync.RWMutex
	overrides map[string]string
}

var _ interfaces.ISecretStore = (*EnvSecretRepository)(nil)

func NewEnvSecretRepository() *EnvSecretRepository {
	return &EnvSecretRepository{overrides: map[string]string{}}
}

func (r *EnvSecretRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	v, ok := r.overrides[key]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}
	return os.Getenv(key), nil
}

func (r *EnvSecretRepository) Put(_ context.Context, key string, value string) error {
	r.mu.Lock()
	r.overrides[key] = value
	r.mu.Unlock()
	log.Printf("[secrets][env] %s updated in memory only; persist it in the environment to survive restarts", key)
	return nil
}
