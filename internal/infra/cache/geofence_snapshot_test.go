package cache

import (
	"context"
	"testing"
	"time"

	"tourguard/config"
	"tourguard/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

func sampleFences() []*entity.Geofence {
	return []*entity.Geofence{
		{
			ID:           uuid.New(),
			Name:         "Ghat",
			Center:       entity.Coordinate{Latitude: 25.61, Longitude: 85.14},
			RadiusMeters: 300,
			Safe:         true,
			Active:       true,
		},
		{
			ID:           uuid.New(),
			Name:         "Old Market",
			Center:       entity.Coordinate{Latitude: 25.60, Longitude: 85.13},
			RadiusMeters: 150,
			Active:       false,
		},
	}
}

func TestRedisSnapshotCache_RoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewGeofenceSnapshotCache(client, &config.Config{})
	ctx := context.Background()

	version, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Zero(t, version)

	_, _, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	fences := sampleFences()
	v1, err := cache.Store(ctx, fences)
	require.NoError(t, err)
	v2, err := cache.Store(ctx, fences[:1])
	require.NoError(t, err)
	assert.Greater(t, v2, v1)

	version, err = cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, v2, version)

	loaded, loadedVersion, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, v2, loadedVersion)
	require.Len(t, loaded, 1)
	assert.Equal(t, fences[0].ID, loaded[0].ID)
	assert.Equal(t, fences[0].Center, loaded[0].Center)
	assert.True(t, loaded[0].Safe)
}

func TestRedisSnapshotCache_SnapshotExpires(t *testing.T) {
	server, client := newTestRedis(t)
	cache := NewGeofenceSnapshotCache(client, &config.Config{Redis: &config.RedisConfig{SnapshotTTL: time.Minute}})
	ctx := context.Background()

	version, err := cache.Store(ctx, sampleFences())
	require.NoError(t, err)

	server.FastForward(2 * time.Minute)

	_, _, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	current, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, current, "the version counter outlives the payload")
}

func TestRedisSnapshotCache_Unreachable(t *testing.T) {
	server, client := newTestRedis(t)
	cache := NewGeofenceSnapshotCache(client, &config.Config{})
	server.Close()

	_, err := cache.Version(context.Background())
	assert.Error(t, err)
	_, err = cache.Store(context.Background(), sampleFences())
	assert.Error(t, err)
}

func TestMemorySnapshotCache(t *testing.T) {
	t.Parallel()

	cache := NewGeofenceSnapshotCache(nil, &config.Config{})
	ctx := context.Background()

	_, _, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	fences := sampleFences()
	version, err := cache.Store(ctx, fences)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	fences[0].Name = "mutated"
	loaded, _, ok, err := cache.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ghat", loaded[0].Name, "stored fences are copies")
}
