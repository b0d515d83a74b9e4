package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trait-forge/internal/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("requires an address", func(t *testing.T) {
		_, err := redis.NewClient(nil)
		require.Error(t, err)

		_, err = redis.NewClient(&redis.Options{})
		require.Error(t, err)
	})

	t.Run("single node", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.NewClient(&redis.Options{Addrs: []string{mr.Addr()}})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		_, ok := client.(*goredis.Client)
		assert.True(t, ok)
		require.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("several addresses build a cluster client", func(t *testing.T) {
		client, err := redis.NewClient(&redis.Options{Addrs: []string{"a:6379", "b:6379"}})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		_, ok := client.(*goredis.ClusterClient)
		assert.True(t, ok)
	})

	t.Run("master name builds a failover client", func(t *testing.T) {
		client, err := redis.NewClient(&redis.Options{Addrs: []string{"s:26379"}, MasterName: "mymaster"})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		_, ok := client.(*goredis.Client)
		assert.True(t, ok)
	})
}
