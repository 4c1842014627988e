// Package resource bounds the work of bulk checksum jobs.
//
// A Controller governs three resources shared by concurrent jobs:
//
//   - Buffers: a byte budget for read buffers (blocking until released)
//   - Workers: the number of jobs hashing at once
//   - IO: a token bucket limiting read throughput
//
// A nil *Controller imposes no limits.
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 4, IOLimitBytesPerSec: 64 << 20})
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//	io.Copy(h, resource.NewRateLimitedReader(ctx, f, rc))
package resource
