package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mockClock is a controllable clock that starts at a fixed point in
// time and can be advanced between limiter calls.
type mockClock struct {
	t time.Time
}

func (c *mockClock) now() time.Time {
	return c.t
}

func (c *mockClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestSourceIPAllowed(t *testing.T) {
	clock := &mockClock{t: time.Unix(1577836800, 0)}

	rl := New(
		WithNow(clock.now),
		WithSourceIPLimitPerSecond(1),
		WithSourceIPBurstSize(2),
	)

	require.True(t, rl.SourceIPAllowed("172.16.123.1"))
	require.True(t, rl.SourceIPAllowed("172.16.123.1"))
	require.False(t, rl.SourceIPAllowed("172.16.123.1"), "burst exhausted")

	// other source IPs get their own bucket
	require.True(t, rl.SourceIPAllowed("172.16.123.2"))

	// one token is replenished per second
	clock.advance(time.Second)
	require.True(t, rl.SourceIPAllowed("172.16.123.1"))
	require.False(t, rl.SourceIPAllowed("172.16.123.1"))
}

func TestSourceIPAllowedDefaults(t *testing.T) {
	rl := New()

	require.Equal(t, float64(DefaultSourceIPLimitPerSecond), rl.sourceIPLimitPerSecond)
	require.Equal(t, DefaultSourceIPBurstSize, rl.sourceIPBurstSize)
	require.True(t, rl.SourceIPAllowed("172.16.123.1"))
}
