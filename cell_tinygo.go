//go:build tinygo

package testfw

import "runtime/volatile"

// Cell is a 32-bit word written by a single thread of control and read at
// any moment by an attached debugger. Every access is volatile so the
// compiler can neither cache nor drop it.
type Cell struct {
	reg volatile.Register32
}

func newCell(v uint32) Cell {
	return Cell{reg: volatile.Register32{Reg: v}}
}

func (c *Cell) Load() uint32 { return c.reg.Get() }
func (c *Cell) Store(v uint32) { c.reg.Set(v) }

// Add is a plain read-modify-write. Only the main loop writes, and the
// debugger halts the core before it touches memory.
func (c *Cell) Add(d uint32) uint32 {
	v := c.reg.Get() + d
	c.reg.Set(v)
	return v
}
