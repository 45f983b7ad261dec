package main

// Build and run under QEMU, halted, with a gdb stub on :1234:
//
//	tinygo build -target=cortex-m-qemu -o testfw.elf ./cmd/testfw
//	fwcheck testfw.elf
//	fwrun testfw.elf

import (
	"github.com/unconcealer/testfw"
)

func main() {
	testfw.Run()
}
