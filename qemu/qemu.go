// Package qemu builds the emulator command line the firmware is tested
// under: an lm3s6965evb board with a gdb stub, optionally held at reset
// until a debugger attaches.
package qemu

import (
	"context"
	"os/exec"
	"strconv"

	"github.com/google/shlex"
	"github.com/juju/errors"
)

type Config struct {
	Path    string
	Machine string
	CPU     string
	Memory  string
	GDBPort int
	// Halt keeps the CPU stopped at reset until the debugger continues it.
	Halt bool
	// Semihosting lets the firmware print over the debug channel.
	Semihosting bool
	Extra       []string
}

func DefaultConfig() Config {
	return Config{
		Path:    "qemu-system-arm",
		Machine: "lm3s6965evb",
		CPU:     "cortex-m3",
		Memory:  "64K",
		GDBPort: 1234,
		Halt:    true,
	}
}

func (c Config) Validate() error {
	if c.Path == "" {
		return errors.NotValidf("empty qemu path")
	}
	if c.Machine == "" {
		return errors.NotValidf("empty machine")
	}
	if c.GDBPort <= 0 || c.GDBPort > 65535 {
		return errors.NotValidf("gdb port %d", c.GDBPort)
	}
	return nil
}

// Args returns the arguments, without the program name, that boot kernel.
func (c Config) Args(kernel string) []string {
	args := []string{
		"-machine", c.Machine,
		"-cpu", c.CPU,
		"-m", c.Memory,
		"-kernel", kernel,
		"-gdb", "tcp::" + strconv.Itoa(c.GDBPort),
		"-nographic",
	}
	if c.Halt {
		args = append(args, "-S")
	}
	if c.Semihosting {
		args = append(args, "-semihosting-config", "enable=on,target=native")
	}
	return append(args, c.Extra...)
}

// ParseExtra splits s the way a shell would.
func ParseExtra(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, errors.Annotatef(err, "parsing extra qemu arguments %q", s)
	}
	return args, nil
}

// Command returns an unstarted QEMU process for kernel. Cancelling ctx
// kills it.
func (c Config) Command(ctx context.Context, kernel string) (*exec.Cmd, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	if kernel == "" {
		return nil, errors.NotValidf("empty kernel path")
	}
	path, err := exec.LookPath(c.Path)
	if err != nil {
		return nil, errors.Annotatef(err, "qemu not found at %q", c.Path)
	}
	return exec.CommandContext(ctx, path, c.Args(kernel)...), nil
}
