package store

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
)

// AdminTokenBytes is the entropy of an issued token (256 bits). Encoded with
// unpadded base64url this yields 43 characters.
const AdminTokenBytes = 32

// memoryAdminTokenStore keeps issued tokens in process memory only. Tokens
// never expire and are all lost on restart; the set grows with every login.
type memoryAdminTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewMemoryAdminTokenStore returns an empty in-memory token store.
func NewMemoryAdminTokenStore() AdminTokenStore {
	return &memoryAdminTokenStore{tokens: make(map[string]struct{})}
}

func (s *memoryAdminTokenStore) Issue(_ context.Context) (string, error) {
	token, err := generateSecureToken(AdminTokenBytes)
	if err != nil {
		return "", fmt.Errorf("generating admin token: %w", err)
	}

	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	return token, nil
}

func (s *memoryAdminTokenStore) Check(_ context.Context, token string) bool {
	if token == "" {
		return false
	}
	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok
}

func generateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
