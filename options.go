package kamatext

import "github.com/sirupsen/logrus"

// PoolOptions holds the configuration for an InternPool. It is populated
// through the With... functional options.
type PoolOptions struct {
	// MaxBytes is the total byte budget for pooled values. Once exceeded,
	// least recently used values are dropped. <= 0 means unbounded.
	// Defaults to DefaultPoolMaxBytes.
	MaxBytes int64

	// ShardCount is the number of lock shards, rounded up to a power of
	// two. Defaults to DefaultPoolShardCount.
	ShardCount int

	// Logger is the logger instance for the pool.
	// Defaults to logrus.StandardLogger().
	Logger *logrus.Logger
}

type PoolOption func(*PoolOptions)

// WithPoolMaxBytes sets the byte budget for pooled values.
func WithPoolMaxBytes(n int64) PoolOption {
	return func(o *PoolOptions) {
		o.MaxBytes = n
	}
}

// WithPoolShardCount sets the number of lock shards. Higher counts reduce
// contention for heavily concurrent interning.
func WithPoolShardCount(n int) PoolOption {
	return func(o *PoolOptions) {
		o.ShardCount = n
	}
}

// WithPoolLogger sets the logger used by the pool.
func WithPoolLogger(l *logrus.Logger) PoolOption {
	return func(o *PoolOptions) {
		o.Logger = l
	}
}
