package testhelper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisOnce sync.Once
	redisAddr string
	redisErr  error
)

// SetupTestRedis returns the address of the shared Redis container and a
// client on a freshly flushed database, closed via t.Cleanup. Tests that
// use it must not run in parallel with each other.
func SetupTestRedis(t *testing.T) (string, *redis.Client) {
	t.Helper()

	redisOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		redisAddr, redisErr = startContainer(ctx, testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		}, "6379")
	})
	if redisErr != nil {
		t.Fatalf("testhelper: redis: %v", redisErr)
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("testhelper: flush redis: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })

	return redisAddr, rdb
}
