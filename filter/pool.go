package filter

import (
	"sync"

	"github.com/gogpu/gray"
)

// imagePool reuses scratch images for filters that need intermediate
// buffers (Sobel edge maps, Chain ping-pong buffers).
//
// Buffers are grouped by dimensions. All methods are safe for concurrent use.
type imagePool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*gray.Image
	maxSize int // max images per bucket; <= 0 means unlimited
}

// poolKey identifies a bucket of identically sized images.
type poolKey struct {
	width  int
	height int
}

// newImagePool creates a pool retaining at most maxPerBucket images of
// each size.
func newImagePool(maxPerBucket int) *imagePool {
	return &imagePool{
		buckets: make(map[poolKey][]*gray.Image),
		maxSize: maxPerBucket,
	}
}

// get returns a zeroed width x height image, reusing a pooled one if
// available.
func (p *imagePool) get(width, height int) *gray.Image {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		m := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		m.Fill(0)
		return m
	}
	p.mu.Unlock()

	return gray.New(width, height)
}

// put returns m to the pool. Empty images and images beyond the bucket
// limit are dropped.
func (p *imagePool) put(m *gray.Image) {
	if m.IsEmpty() {
		return
	}
	key := poolKey{width: m.Width(), height: m.Height()}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, m)
}

// len returns the number of pooled images of the given size.
func (p *imagePool) len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}

// scratch is the package-level pool used by the filters.
var scratch = newImagePool(4)
