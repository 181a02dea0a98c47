package tfce

import "math"

// cluster is one connected set of popped elements.
type cluster struct {
	accum   float64 // integral from the peak down to last
	extent  float64 // sum of member weights
	members []int
	last    float64 // threshold of the latest update
	first   bool    // no threshold seen yet
	live    bool
}

// slice integrates extent^e · h^h over [bottom, top].
func slice(extent, top, bottom, e, h float64) float64 {
	hp := h + 1
	return math.Pow(extent, e) * (math.Pow(top, hp) - math.Pow(bottom, hp)) / hp
}

// update moves the cluster down to threshold bottom, integrating the slice
// between the previous threshold and bottom with the current extent.
func (c *cluster) update(bottom, e, h float64) {
	if c.first {
		c.last = bottom
		c.first = false
		return
	}
	if bottom == c.last {
		return
	}
	if !(bottom < c.last) {
		violate("cluster update", "threshold rose from %g to %g", c.last, bottom)
	}
	c.accum += slice(c.extent, c.last, bottom, e, h)
	c.last = bottom
}

// add updates the cluster to val, then appends elem and its weight.
func (c *cluster) add(elem int, val, weight, e, h float64) {
	c.update(val, e, h)
	c.members = append(c.members, elem)
	c.extent += weight
}

// arena owns every cluster of one sweep. Slots are recycled through a free
// list; member slices keep their capacity across reuse.
type arena struct {
	clusters []cluster
	free     []int
	live     int
	peak     int
}

// alloc returns the slot of a fresh, empty cluster.
func (a *arena) alloc() int {
	var slot int
	if n := len(a.free); n > 0 {
		slot = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		slot = len(a.clusters)
		a.clusters = append(a.clusters, cluster{})
	}
	c := &a.clusters[slot]
	c.accum, c.extent, c.last = 0, 0, 0
	c.members = c.members[:0]
	c.first, c.live = true, true
	a.live++
	if a.live > a.peak {
		a.peak = a.live
	}

	return slot
}

// release returns slot to the free list.
func (a *arena) release(slot int) {
	c := &a.clusters[slot]
	c.live = false
	c.members = c.members[:0]
	a.free = append(a.free, slot)
	a.live--
}

// reset releases every cluster.
func (a *arena) reset() {
	a.free = a.free[:0]
	for i := len(a.clusters) - 1; i >= 0; i-- {
		a.clusters[i].live = false
		a.clusters[i].members = a.clusters[i].members[:0]
		a.free = append(a.free, i)
	}
	a.live, a.peak = 0, 0
}
