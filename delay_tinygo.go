//go:build tinygo

package testfw

import "device/arm"

// Delay executes n nop instructions. It is not calibrated.
func Delay(n int) {
	for i := 0; i < n; i++ {
		arm.Asm("nop")
	}
}
