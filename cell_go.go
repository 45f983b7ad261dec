//go:build !tinygo

package testfw

import "sync/atomic"

// Cell is a 32-bit word written by a single thread of control and read at
// any moment by an outside observer. On the host the observer is another
// goroutine, so accesses are atomic.
type Cell struct {
	v uint32
}

func newCell(v uint32) Cell {
	return Cell{v: v}
}

func (c *Cell) Load() uint32 { return atomic.LoadUint32(&c.v) }
func (c *Cell) Store(v uint32) { atomic.StoreUint32(&c.v, v) }
func (c *Cell) Add(d uint32) uint32 { return atomic.AddUint32(&c.v, d) }
