package testfw

import "strconv"

// Semihosting mirrors the startup banner to the debugger's semihosting
// channel when set to "on" at link time:
//
//	tinygo build -target=cortex-m-qemu \
//	    -ldflags="-X github.com/unconcealer/testfw.Semihosting=on" ./cmd/testfw
//
// Leave it off unless QEMU runs with -semihosting; a semihosting call with
// nobody listening ends in a HardFault.
var Semihosting string

func announce(testValue uint32) {
	line := "testfw: running, test value " + hex32(testValue)
	println(line)
	if Semihosting == "on" {
		semihostWrite(line + "\n")
	}
}

func hex32(v uint32) string {
	s := strconv.FormatUint(uint64(v), 16)
	for len(s) < 8 {
		s = "0" + s
	}
	return "0x" + s
}
