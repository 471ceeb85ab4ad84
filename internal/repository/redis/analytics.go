package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamsynchq/teamsync/internal/domain"
)

const (
	analyticsCachePrefix = "analytics:workspace:"
	analyticsCacheTTL    = 30 * time.Second
)

// AnalyticsCache caches workspace task-count aggregates. The TTL is
// short; only aggregates are cached here, never role or membership data.
type AnalyticsCache struct {
	client *Client
}

// NewAnalyticsCache creates a new analytics cache
func NewAnalyticsCache(client *Client) *AnalyticsCache {
	return &AnalyticsCache{client: client}
}

// Get retrieves cached analytics for a workspace
func (c *AnalyticsCache) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.WorkspaceAnalytics, error) {
	key := analyticsCachePrefix + workspaceID.String()

	data, err := c.client.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var analytics domain.WorkspaceAnalytics
	if err := json.Unmarshal(data, &analytics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analytics: %w", err)
	}

	return &analytics, nil
}

// Set caches analytics for a workspace
func (c *AnalyticsCache) Set(ctx context.Context, workspaceID uuid.UUID, analytics *domain.WorkspaceAnalytics) error {
	key := analyticsCachePrefix + workspaceID.String()

	data, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics: %w", err)
	}

	return c.client.rdb.Set(ctx, key, data, analyticsCacheTTL).Err()
}

// Invalidate removes cached analytics for a workspace
func (c *AnalyticsCache) Invalidate(ctx context.Context, workspaceID uuid.UUID) error {
	return c.client.rdb.Del(ctx, analyticsCachePrefix+workspaceID.String()).Err()
}
