//go:build !tinygo

package testfw

// Delay spins for n calls to an empty function.
func Delay(n int) {
	for i := 0; i < n; i++ {
		nop()
	}
}

//go:noinline
func nop() {}
