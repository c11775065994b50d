// Package stats computes the descriptive statistics shown for a filtered trip table.
//
// Rankings and modes break ties by the key seen first in table order, except
// the month mode which prefers the earliest month.
package stats

import (
	"cmp"
	"slices"
)

// Count is a key with its number of occurrences
type Count[K comparable] struct {
	Key   K
	Count int
}

// counter tallies keys and remembers the order they were first seen
type counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: make(map[K]int)}
}

func (c *counter[K]) add(k K) {
	if _, ok := c.counts[k]; !ok {
		c.order = append(c.order, k)
	}
	c.counts[k]++
}

func (c *counter[K]) empty() bool {
	return len(c.order) == 0
}

// first returns the most frequent key, preferring the earliest seen on ties
func (c *counter[K]) first() (Count[K], bool) {
	var best Count[K]
	for _, k := range c.order {
		if n := c.counts[k]; n > best.Count {
			best = Count[K]{Key: k, Count: n}
		}
	}
	return best, !c.empty()
}

// smallest returns the most frequent key, preferring the lowest rank on ties
func (c *counter[K]) smallest(rank func(K) int) (Count[K], bool) {
	var best Count[K]
	for _, k := range c.order {
		n := c.counts[k]
		if n > best.Count || (n == best.Count && rank(k) < rank(best.Key)) {
			best = Count[K]{Key: k, Count: n}
		}
	}
	return best, !c.empty()
}

// sorted lists every key by descending count, earliest seen first on ties
func (c *counter[K]) sorted() []Count[K] {
	out := make([]Count[K], 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Count[K]{Key: k, Count: c.counts[k]})
	}
	slices.SortStableFunc(out, func(a, b Count[K]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}
