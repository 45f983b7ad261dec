//go:build tinygo

package testfw

import (
	"device/arm"
	"runtime/volatile"
	"unsafe"

	"github.com/unconcealer/testfw/symbols"
)

// TriggerHardFault does a volatile read of symbols.FaultAddress, which ends
// in the platform's HardFault handler. Nothing in the firmware calls it; it
// is exported so the linker keeps it and a debugger can jump to it.
//
//export trigger_hardfault
//go:noinline
func TriggerHardFault() {
	volatile.LoadUint32((*uint32)(unsafe.Pointer(symbols.FaultAddress)))

	// not reached
	arm.DisableInterrupts()
	for {
		arm.Asm("wfi")
	}
}
