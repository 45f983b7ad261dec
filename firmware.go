// Package testfw is a fixture firmware for debugger integration tests. It
// runs on an emulated Cortex-M3 (TinyGo, -target=cortex-m-qemu) and gives an
// attached debugger a predictable surface: a sentinel that flips once at
// startup, a counter that keeps moving, an inspection function and a path
// that faults on purpose.
//
// The host build of this package runs the same logic under the regular Go
// toolchain so it can be tested.
package testfw

import "github.com/unconcealer/testfw/symbols"

var (
	// Counter is incremented once per loop iteration and wraps at 2^32.
	Counter Cell

	// TestValue holds symbols.SentinelLinkTime in the image and
	// symbols.SentinelStartup once Start has run.
	TestValue = newCell(symbols.SentinelLinkTime)
)

// Run starts the firmware and loops forever. It never returns; only a
// debugger halt or a reset stops it.
func Run() {
	Start()
	for {
		Step()
	}
}

// Start performs the one-time startup write.
func Start() {
	start(&TestValue)
}

// Step runs a single loop iteration.
func Step() {
	step(&Counter)
}

// Inspect returns the current counter. Debuggers call it by its exported
// name to test function-call based inspection.
//
//export test_function
func Inspect() uint32 {
	return Counter.Load()
}

func start(testValue *Cell) {
	testValue.Store(symbols.SentinelStartup)
	announce(testValue.Load())
}

func step(counter *Cell) {
	counter.Add(1)
	Delay(symbols.DelayIterations)
}
