package intern

import (
	"container/list"
	"sync"
	"sync/atomic"

	"github.com/rson9/kamaText/internal/utf8str"
	"github.com/sirupsen/logrus"
	"github.com/spaolacci/murmur3"
)

// HashFunc selects the shard for a value's bytes.
type HashFunc func(data []byte) uint32

func hashMurmur3(data []byte) uint32 {
	return murmur3.Sum32(data)
}

// Options configures a Pool. Use the With... functions.
type Options struct {
	// MaxBytes is the total byte budget across all shards. Once exceeded,
	// the least recently used entries are evicted. <= 0 means unbounded.
	MaxBytes int64

	// ShardCount is the number of lock shards, rounded up to a power of
	// two. Defaults to 16.
	ShardCount int

	// HashFunc picks the shard for a value. Defaults to murmur3.
	HashFunc HashFunc

	// Logger receives eviction debug output. Defaults to the logrus
	// standard logger.
	Logger *logrus.Logger
}

type Option func(*Options)

// WithMaxBytes sets the total byte budget for pooled values.
func WithMaxBytes(n int64) Option {
	return func(o *Options) { o.MaxBytes = n }
}

// WithShardCount sets the number of lock shards.
func WithShardCount(n int) Option {
	return func(o *Options) { o.ShardCount = n }
}

// WithHashFunc overrides the shard selection hash.
func WithHashFunc(h HashFunc) Option {
	return func(o *Options) { o.HashFunc = h }
}

// WithLogger sets the pool logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{
		MaxBytes:   8 * 1024 * 1024,
		ShardCount: 16,
		HashFunc:   hashMurmur3,
		Logger:     logrus.StandardLogger(),
	}
}

// Pool deduplicates equal string values so that all holders share one
// backing buffer. Values are immutable, which makes handing out the pooled
// instance in place of an equal newcomer transparent to callers.
//
// The pool is sharded; each shard keeps its entries in LRU order and evicts
// from the tail when its share of the byte budget is exceeded.
type Pool struct {
	shards []*shard
	mask   uint32
	hash   HashFunc
	logger *logrus.Entry

	hits   int64
	misses int64
	closed int32
}

type shard struct {
	mu       sync.Mutex
	list     *list.List
	items    map[string]*list.Element
	maxBytes int64
	used     int64
}

type entry struct {
	val utf8str.String
}

// Stats reports pool effectiveness counters.
type Stats struct {
	Hits   int64
	Misses int64
}

// NewPool builds a Pool with the given options applied over the defaults.
func NewPool(opts ...Option) *Pool {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.ShardCount <= 0 {
		options.ShardCount = 16
	}
	count := 1
	for count < options.ShardCount {
		count <<= 1
	}
	if options.HashFunc == nil {
		options.HashFunc = hashMurmur3
	}
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}

	perShard := options.MaxBytes
	if perShard > 0 {
		perShard = (perShard + int64(count) - 1) / int64(count)
	}
	shards := make([]*shard, count)
	for i := range shards {
		shards[i] = &shard{
			list:     list.New(),
			items:    make(map[string]*list.Element),
			maxBytes: perShard,
		}
	}
	return &Pool{
		shards: shards,
		mask:   uint32(count - 1),
		hash:   options.HashFunc,
		logger: options.Logger.WithField("component", "intern"),
	}
}

// Intern returns the pooled value equal to s, adding s when no equal value
// is pooled yet. The returned value is always equal to s by bytes; on a hit
// it shares the previously pooled backing buffer.
func (p *Pool) Intern(s utf8str.String) utf8str.String {
	if s.IsEmpty() {
		return utf8str.Empty
	}
	if atomic.LoadInt32(&p.closed) == 1 {
		return s
	}

	sh := p.shards[p.hash(s.Bytes())&p.mask]
	// Keying the map with the value's own zero-copy string view is safe:
	// the buffer never mutates and the entry keeps the value alive.
	key := s.String()

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if el, ok := sh.items[key]; ok {
		sh.list.MoveToFront(el)
		atomic.AddInt64(&p.hits, 1)
		return el.Value.(*entry).val
	}

	atomic.AddInt64(&p.misses, 1)
	sh.items[key] = sh.list.PushFront(&entry{val: s})
	sh.used += int64(s.Len())
	p.evictLocked(sh)
	return s
}

// evictLocked trims the shard's LRU tail until it fits its byte budget.
// Caller holds sh.mu.
func (p *Pool) evictLocked(sh *shard) {
	for sh.maxBytes > 0 && sh.used > sh.maxBytes {
		el := sh.list.Back()
		if el == nil {
			return
		}
		ent := el.Value.(*entry)
		sh.list.Remove(el)
		delete(sh.items, ent.val.String())
		sh.used -= int64(ent.val.Len())
		p.logger.Debugf("evicted %d-byte value", ent.val.Len())
	}
}

// Len returns the number of pooled values.
func (p *Pool) Len() int {
	n := 0
	for _, sh := range p.shards {
		sh.mu.Lock()
		n += sh.list.Len()
		sh.mu.Unlock()
	}
	return n
}

// Stats returns a snapshot of the hit/miss counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Hits:   atomic.LoadInt64(&p.hits),
		Misses: atomic.LoadInt64(&p.misses),
	}
}

// Close releases all pooled values. Intern becomes a pass-through afterwards.
func (p *Pool) Close() {
	if !atomic.CompareAndSwapInt32(&p.closed, 0, 1) {
		return
	}
	for _, sh := range p.shards {
		sh.mu.Lock()
		sh.list.Init()
		sh.items = make(map[string]*list.Element)
		sh.used = 0
		sh.mu.Unlock()
	}
}
