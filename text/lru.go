// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

// CachedMeasurer remembers the most recent measurements of its
// Measurer. Line breaking measures the same words over and over as
// widths change; the cache turns those into map lookups.
//
// A CachedMeasurer must not be used concurrently.
type CachedMeasurer struct {
	Measurer Measurer
	// Capacity bounds the number of cached measurements. Zero means
	// DefaultCapacity.
	Capacity int

	sizes map[measureKey]*measurement
	// recent is the sentinel of a circular list of the cached
	// measurements, most recently used first.
	recent measurement
}

// DefaultCapacity is the capacity of a CachedMeasurer without one.
const DefaultCapacity = 1000

type measureKey struct {
	font font.Font
	str  string
}

type measurement struct {
	newer, older *measurement
	key          measureKey
	size         geom.Size
}

// Measure implements Measurer.
func (c *CachedMeasurer) Measure(f font.Font, s string) geom.Size {
	k := measureKey{font: f, str: s}
	if m, ok := c.sizes[k]; ok {
		c.touch(m)
		return m.size
	}
	sz := c.Measurer.Measure(f, s)
	c.add(k, sz)
	return sz
}

// Len returns the number of cached measurements.
func (c *CachedMeasurer) Len() int {
	return len(c.sizes)
}

func (c *CachedMeasurer) add(k measureKey, sz geom.Size) {
	if c.sizes == nil {
		c.sizes = make(map[measureKey]*measurement)
		c.recent.newer = &c.recent
		c.recent.older = &c.recent
	}
	capacity := c.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if len(c.sizes) >= capacity {
		// The sentinel's newer neighbour is the least recently used.
		lru := c.recent.newer
		lru.unlink()
		delete(c.sizes, lru.key)
	}
	m := &measurement{key: k, size: sz}
	c.sizes[k] = m
	c.recent.pushOlder(m)
}

// touch moves m to the front of the list.
func (c *CachedMeasurer) touch(m *measurement) {
	m.unlink()
	c.recent.pushOlder(m)
}

// pushOlder links m directly after the sentinel s.
func (s *measurement) pushOlder(m *measurement) {
	m.newer = s
	m.older = s.older
	s.older.newer = m
	s.older = m
}

func (m *measurement) unlink() {
	m.newer.older = m.older
	m.older.newer = m.newer
	m.newer, m.older = nil, nil
}
