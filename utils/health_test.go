package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHealthChecks(t *testing.T) {
	status := RunHealthChecks(context.Background(), map[string]HealthCheck{
		"mongo": func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	assert.False(t, status.Healthy)
	assert.Equal(t, map[string]bool{"mongo": true, "redis": false}, status.Checks)
	assert.Equal(t, status, GetHealthStatus())
}

func TestStartHealthMonitorStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 10)
	StartHealthMonitor(ctx, 10*time.Millisecond, map[string]HealthCheck{
		"mongo": func(context.Context) error {
			select {
			case calls <- struct{}{}:
			default:
			}
			return nil
		},
	})

	require.True(t, GetHealthStatus().Healthy)
	require.Eventually(t, func() bool { return len(calls) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
}
