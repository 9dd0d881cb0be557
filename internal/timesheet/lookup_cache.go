package timesheet

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Lookup field names accepted by Service.Lookup and used as cache keys.
const (
	LookupClients    = "clients"
	LookupProjects   = "projects"
	LookupJobs       = "jobs"
	LookupFirstNames = "first-names"
	LookupLastNames  = "last-names"
	LookupWorkItems  = "work-items"
)

var lookupColumns = map[string]string{
	LookupClients:    "client_name",
	LookupProjects:   "project_name",
	LookupJobs:       "job_name",
	LookupFirstNames: "first_name",
	LookupLastNames:  "last_name",
	LookupWorkItems:  "work_item",
}

const lookupKeyPrefix = "lookup:"

// LookupCache keeps distinct-value lists in redis for a short TTL so the
// selection inputs do not scan the table on every page load.
type LookupCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLookupCache(rdb *redis.Client, ttl time.Duration) *LookupCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &LookupCache{rdb: rdb, ttl: ttl}
}

func (c *LookupCache) Get(ctx context.Context, field string) ([]string, bool) {
	val, err := c.rdb.Get(ctx, lookupKeyPrefix+field).Bytes()
	if err != nil {
		return nil, false
	}
	var values []string
	if err := json.Unmarshal(val, &values); err != nil {
		return nil, false
	}
	return values, true
}

func (c *LookupCache) Set(ctx context.Context, field string, values []string) {
	payload, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, lookupKeyPrefix+field, payload, c.ttl).Err(); err != nil {
		zap.L().Warn("lookup cache set failed", zap.String("field", field), zap.Error(err))
	}
}

// Invalidate drops every lookup list. Called by the event consumer whenever
// a timesheet record changes.
func (c *LookupCache) Invalidate(ctx context.Context) {
	keys := make([]string, 0, len(lookupColumns))
	for field := range lookupColumns {
		keys = append(keys, lookupKeyPrefix+field)
	}
	sort.Strings(keys)
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("lookup cache invalidate failed", zap.Error(err))
	}
}
