package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickStaysInBounds(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	m := New(1, start)

	for i := 1; i <= 500; i++ {
		m.Tick(start.Add(time.Duration(i) * time.Second))
	}

	systems := m.Systems()
	require.Len(t, systems, 6)
	for _, s := range systems {
		assert.GreaterOrEqual(t, s.Performance, 85.0, s.Name)
		assert.LessOrEqual(t, s.Performance, 100.0, s.Name)
		assert.GreaterOrEqual(t, s.Uptime, 95.0, s.Name)
		assert.LessOrEqual(t, s.Uptime, 100.0, s.Name)
		assert.Equal(t, statusFor(s.Performance), s.Status)
		assert.Equal(t, start.Add(500*time.Second), s.LastCheck)
	}
}

func TestInitialStatusFollowsPerformance(t *testing.T) {
	m := New(1, time.Now())

	for _, s := range m.Systems() {
		if s.Name == "Network Connectivity" {
			assert.Equal(t, StatusWarning, s.Status)
		} else {
			assert.Equal(t, StatusOperational, s.Status)
		}
	}
}

func TestSystemsIsCopy(t *testing.T) {
	m := New(1, time.Now())
	systems := m.Systems()
	systems[0].Performance = 0

	assert.Equal(t, 94.0, m.Systems()[0].Performance)
}

func TestRunStopsOnCancel(t *testing.T) {
	m := New(1, time.Now())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, time.Millisecond) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestStaticPanels(t *testing.T) {
	assert.Len(t, Integrations(), 8)
	predictions := Predictions()
	require.Len(t, predictions, 4)
	assert.Equal(t, "high", predictions[2].Risk)
}
