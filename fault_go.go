//go:build !tinygo

package testfw

import (
	"unsafe"

	"github.com/unconcealer/testfw/symbols"
)

var faultSink uint32

// TriggerHardFault reads from symbols.FaultAddress. The Go runtime reports
// the fault and kills the process, or panics with a runtime.Error carrying
// the address when debug.SetPanicOnFault is in effect.
//
//export trigger_hardfault
//go:noinline
func TriggerHardFault() {
	faultSink = *(*uint32)(unsafe.Pointer(symbols.FaultAddress))
	panic("testfw: read of " + hex32(uint32(symbols.FaultAddress)) + " did not fault")
}
