package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrBufferTooLarge is returned when a single buffer exceeds the whole budget.
var ErrBufferTooLarge = errors.New("buffer exceeds budget")

// Config holds resource limits.
type Config struct {
	// BufferBudgetBytes caps the read buffer memory held at once.
	// If 0, buffers are only tracked.
	BufferBudgetBytes int64

	// MaxWorkers is the maximum number of concurrent jobs.
	// If 0, defaults to 1.
	MaxWorkers int64

	// IOLimitBytesPerSec is the maximum read throughput.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared limits across checksum jobs.
type Controller struct {
	cfg Config

	bufSem  *semaphore.Weighted // nil if unlimited
	bufUsed atomic.Int64

	workerSem *semaphore.Weighted

	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.BufferBudgetBytes > 0 {
		c.bufSem = semaphore.NewWeighted(cfg.BufferBudgetBytes)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// AcquireBuffer reserves bytes of buffer budget, blocking until available.
func (c *Controller) AcquireBuffer(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.bufSem != nil {
		if bytes > c.cfg.BufferBudgetBytes {
			return fmt.Errorf("%w: %d > %d", ErrBufferTooLarge, bytes, c.cfg.BufferBudgetBytes)
		}
		if err := c.bufSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.bufUsed.Add(bytes)
	return nil
}

// ReleaseBuffer returns buffer budget.
func (c *Controller) ReleaseBuffer(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.bufSem != nil {
		c.bufSem.Release(bytes)
	}
	c.bufUsed.Add(-bytes)
}

// BufferUsage returns the reserved buffer bytes.
func (c *Controller) BufferUsage() int64 {
	if c == nil {
		return 0
	}
	return c.bufUsed.Load()
}

// AcquireWorker reserves a worker slot. Blocks if all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}

// MaxWorkers returns the configured worker limit.
func (c *Controller) MaxWorkers() int {
	if c == nil {
		return 1
	}
	return int(c.cfg.MaxWorkers)
}

// AcquireIO waits until the IO limit allows bytes. Requests larger than the
// bucket are split.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
