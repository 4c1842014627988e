package resource

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Buffers(t *testing.T) {
	c := NewController(Config{BufferBudgetBytes: 100})

	require.NoError(t, c.AcquireBuffer(t.Context(), 60))
	require.NoError(t, c.AcquireBuffer(t.Context(), 40))
	assert.Equal(t, int64(100), c.BufferUsage())

	// Budget exhausted: blocks until the context gives up.
	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireBuffer(ctx, 10), context.DeadlineExceeded)
	assert.Equal(t, int64(100), c.BufferUsage())

	c.ReleaseBuffer(60)
	require.NoError(t, c.AcquireBuffer(t.Context(), 10))
	assert.Equal(t, int64(50), c.BufferUsage())

	assert.ErrorIs(t, c.AcquireBuffer(t.Context(), 101), ErrBufferTooLarge)
}

func TestController_UnlimitedBuffers(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireBuffer(t.Context(), 1<<30))
	assert.Equal(t, int64(1<<30), c.BufferUsage())

	c.ReleaseBuffer(1 << 29)
	assert.Equal(t, int64(1<<29), c.BufferUsage())
}

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})
	assert.Equal(t, 2, c.MaxWorkers())

	require.NoError(t, c.AcquireWorker(t.Context()))
	require.NoError(t, c.AcquireWorker(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireWorker(ctx), context.DeadlineExceeded)

	c.ReleaseWorker()
	require.NoError(t, c.AcquireWorker(t.Context()))
}

func TestController_DefaultWorkers(t *testing.T) {
	c := NewController(Config{})
	assert.Equal(t, 1, c.MaxWorkers())
}

func TestController_NilIsUnlimited(t *testing.T) {
	var c *Controller
	require.NoError(t, c.AcquireBuffer(t.Context(), 10))
	require.NoError(t, c.AcquireWorker(t.Context()))
	require.NoError(t, c.AcquireIO(t.Context(), 1<<20))
	assert.Zero(t, c.BufferUsage())
	c.ReleaseBuffer(10)
	c.ReleaseWorker()
}

func TestController_IOLimitSplitsLargeRequests(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1000})

	// More than one burst must still be granted, just later.
	start := time.Now()
	require.NoError(t, c.AcquireIO(t.Context(), 1500))
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
}

func TestController_IOCancel(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10})
	require.NoError(t, c.AcquireIO(t.Context(), 10))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	assert.Error(t, c.AcquireIO(ctx, 10))
}

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	src := strings.Repeat("x", 4096)

	var out bytes.Buffer
	n, err := io.Copy(&out, NewRateLimitedReader(t.Context(), strings.NewReader(src), c))
	require.NoError(t, err)
	assert.Equal(t, int64(len(src)), n)
	assert.Equal(t, src, out.String())
}
