package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"tourguard/config"
	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/service"
	"tourguard/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	snapshotVersionKey = "tourguard:geofences:version"
	snapshotDataKey    = "tourguard:geofences:snapshot"
)

// storeSnapshot bumps the version and writes it together with the payload,
// so a reader never sees fences paired with another writer's version.
var storeSnapshot = redis.NewScript(`
local version = redis.call('INCR', KEYS[1])
redis.call('HSET', KEYS[2], 'version', version, 'fences', ARGV[1])
local ttl = tonumber(ARGV[2])
if ttl > 0 then
	redis.call('PEXPIRE', KEYS[2], ttl)
else
	redis.call('PERSIST', KEYS[2])
end
return version
`)

type redisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGeofenceSnapshotCache returns the Redis snapshot cache, or an in-process one when client is nil.
func NewGeofenceSnapshotCache(client *redis.Client, cfg *config.Config) service.GeofenceSnapshotCache {
	if client == nil {
		return NewMemorySnapshotCache()
	}

	var ttl time.Duration
	if cfg.Redis != nil {
		ttl = cfg.Redis.SnapshotTTL
	}

	return &redisSnapshotCache{client: client, ttl: ttl}
}

func (c *redisSnapshotCache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, snapshotVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read snapshot version")
	}

	return version, nil
}

func (c *redisSnapshotCache) Load(ctx context.Context) ([]*entity.Geofence, int64, bool, error) {
	values, err := c.client.HMGet(ctx, snapshotDataKey, "version", "fences").Result()
	if err != nil {
		return nil, 0, false, errors.Wrap(err, "failed to read snapshot")
	}
	rawVersion, ok1 := values[0].(string)
	rawFences, ok2 := values[1].(string)
	if !ok1 || !ok2 {
		return nil, 0, false, nil
	}

	version, err := strconv.ParseInt(rawVersion, 10, 64)
	if err != nil {
		return nil, 0, false, errors.Wrap(err, "malformed snapshot version")
	}

	var fences []*entity.Geofence
	if err := json.Unmarshal([]byte(rawFences), &fences); err != nil {
		return nil, 0, false, errors.Wrap(err, "malformed snapshot payload")
	}

	return fences, version, true, nil
}

func (c *redisSnapshotCache) Store(ctx context.Context, fences []*entity.Geofence) (int64, error) {
	if fences == nil {
		fences = []*entity.Geofence{}
	}
	payload, err := json.Marshal(fences)
	if err != nil {
		return 0, errors.Wrap(err, "failed to encode snapshot")
	}

	version, err := storeSnapshot.Run(ctx, c.client,
		[]string{snapshotVersionKey, snapshotDataKey},
		string(payload), c.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return 0, errors.Wrap(err, "failed to store snapshot")
	}

	return version, nil
}

// memorySnapshotCache serves single-instance deployments.
type memorySnapshotCache struct {
	mu      sync.RWMutex
	fences  []*entity.Geofence
	version int64
}

// NewMemorySnapshotCache returns a process-local snapshot cache.
func NewMemorySnapshotCache() service.GeofenceSnapshotCache {
	return &memorySnapshotCache{}
}

func (c *memorySnapshotCache) Version(context.Context) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.version, nil
}

func (c *memorySnapshotCache) Load(context.Context) ([]*entity.Geofence, int64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.version == 0 {
		return nil, 0, false, nil
	}

	return cloneFences(c.fences), c.version, true, nil
}

func (c *memorySnapshotCache) Store(_ context.Context, fences []*entity.Geofence) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fences = cloneFences(fences)
	c.version++

	return c.version, nil
}

func cloneFences(fences []*entity.Geofence) []*entity.Geofence {
	out := make([]*entity.Geofence, 0, len(fences))
	for _, f := range fences {
		if f == nil {
			continue
		}
		clone := *f
		out = append(out, &clone)
	}

	return out
}
