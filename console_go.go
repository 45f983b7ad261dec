//go:build !tinygo

package testfw

func semihostWrite(s string) {
	println("SEMIHOSTING - not available on host:", s)
}
