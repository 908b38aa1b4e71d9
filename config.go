package kamatext

import "github.com/sirupsen/logrus"

// Default values for InternPool configuration.
const (
	// DefaultPoolMaxBytes is the default total byte budget for pooled
	// values.
	DefaultPoolMaxBytes = 8 * 1024 * 1024

	// DefaultPoolShardCount is the default number of lock shards.
	DefaultPoolShardCount = 16
)

func defaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxBytes:   DefaultPoolMaxBytes,
		ShardCount: DefaultPoolShardCount,
		Logger:     logrus.StandardLogger(), // callers may override
	}
}
