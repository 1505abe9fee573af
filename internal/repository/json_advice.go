package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// jsonAdviceCache stores cached advice as a JSON object keyed by
// "<domain>:<record id>".
type jsonAdviceCache struct {
	path string
	mu   sync.Mutex
}

func adviceKey(d domain.Domain, recordID string) string {
	return string(d) + ":" + recordID
}

func (c *jsonAdviceCache) load() (map[string]*domain.Advice, error) {
	entries := make(map[string]*domain.Advice)
	if err := readJSONFile(c.path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *jsonAdviceCache) Get(ctx context.Context, d domain.Domain, recordID string) (*domain.Advice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return nil, err
	}
	a, ok := entries[adviceKey(d, recordID)]
	if !ok {
		return nil, fmt.Errorf("cached advice: %w", ErrNotFound)
	}
	return a, nil
}

func (c *jsonAdviceCache) Put(ctx context.Context, a *domain.Advice) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load()
	if err != nil {
		return err
	}
	entries[adviceKey(a.Domain, a.RecordID)] = a
	if err := writeJSONFile(c.path, entries); err != nil {
		return fmt.Errorf("caching advice: %w", err)
	}
	return nil
}
