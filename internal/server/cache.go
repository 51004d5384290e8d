package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/piwi3910/TrimCut/internal/model"
)

// PlanCache keeps recently computed plan responses keyed by their input.
type PlanCache struct {
	cache *bigcache.BigCache
}

// NewPlanCache creates an in-memory cache whose entries expire after ttl.
func NewPlanCache(ttl time.Duration, maxMB int) (*PlanCache, error) {
	config := bigcache.DefaultConfig(ttl)
	config.HardMaxCacheSize = maxMB
	config.CleanWindow = time.Minute
	config.Verbose = false

	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("create plan cache: %w", err)
	}
	return &PlanCache{cache: cache}, nil
}

// planKey hashes the canonical JSON form of cfg. Requests are keyed as
// received, before missing measurement IDs are generated.
func planKey(cfg model.PlanConfig) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Get returns the response cached under key, if any.
func (c *PlanCache) Get(key string) (PlanResponse, bool) {
	data, err := c.cache.Get(key)
	if err != nil {
		return PlanResponse{}, false
	}
	var resp PlanResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return PlanResponse{}, false
	}
	return resp, true
}

// Set stores resp under key.
func (c *PlanCache) Set(key string, resp PlanResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.cache.Set(key, data)
}

// Len returns the number of cached plans.
func (c *PlanCache) Len() int {
	return c.cache.Len()
}

// Reset drops every cached plan.
func (c *PlanCache) Reset() error {
	return c.cache.Reset()
}

// Close stops the cache's cleanup goroutine.
func (c *PlanCache) Close() error {
	return c.cache.Close()
}
