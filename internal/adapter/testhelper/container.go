// Package testhelper starts throwaway PostgreSQL and Redis containers for
// integration and e2e tests. Each container is started once per test binary
// and shared by every test in it.
package testhelper

import (
	"context"
	"fmt"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
)

// startContainer runs req and returns the host:port mapped to port.
func startContainer(ctx context.Context, req testcontainers.ContainerRequest, port string) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", req.Image, err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return "", fmt.Errorf("mapped port %s: %w", port, err)
	}

	return fmt.Sprintf("%s:%s", host, mapped.Port()), nil
}
