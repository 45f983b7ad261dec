package qemu

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/errors"
)

func TestDefaultArgs(t *testing.T) {
	c := qt.New(t)
	args := DefaultConfig().Args("testfw.elf")
	c.Assert(args, qt.DeepEquals, []string{
		"-machine", "lm3s6965evb",
		"-cpu", "cortex-m3",
		"-m", "64K",
		"-kernel", "testfw.elf",
		"-gdb", "tcp::1234",
		"-nographic",
		"-S",
	})
}

func TestArgsOptions(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Halt = false
	cfg.Semihosting = true
	cfg.GDBPort = 3333
	cfg.Extra = []string{"-d", "int"}

	args := cfg.Args("fw.elf")
	c.Assert(args, qt.Not(qt.Contains), "-S")
	c.Assert(args, qt.Contains, "tcp::3333")
	c.Assert(args[len(args)-4:], qt.DeepEquals, []string{
		"-semihosting-config", "enable=on,target=native", "-d", "int",
	})
}

func TestParseExtra(t *testing.T) {
	c := qt.New(t)
	args, err := ParseExtra(`-d int,guest_errors -D "/tmp/qemu log.txt"`)
	c.Assert(err, qt.IsNil)
	c.Assert(args, qt.DeepEquals, []string{"-d", "int,guest_errors", "-D", "/tmp/qemu log.txt"})

	args, err = ParseExtra("")
	c.Assert(err, qt.IsNil)
	c.Assert(args, qt.HasLen, 0)

	_, err = ParseExtra(`-D "unterminated`)
	c.Assert(err, qt.ErrorMatches, `parsing extra qemu arguments .*`)
}

func TestValidate(t *testing.T) {
	c := qt.New(t)
	c.Assert(DefaultConfig().Validate(), qt.IsNil)

	cfg := DefaultConfig()
	cfg.GDBPort = 0
	c.Assert(errors.IsNotValid(cfg.Validate()), qt.IsTrue)

	cfg = DefaultConfig()
	cfg.Machine = ""
	c.Assert(errors.IsNotValid(cfg.Validate()), qt.IsTrue)
}

func TestCommand(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Path = "qemu-binary-that-does-not-exist"
	_, err := cfg.Command(context.Background(), "fw.elf")
	c.Assert(err, qt.ErrorMatches, `qemu not found at "qemu-binary-that-does-not-exist": .*`)

	_, err = DefaultConfig().Command(context.Background(), "")
	c.Assert(errors.IsNotValid(err), qt.IsTrue)

	// any binary on PATH will do to check the argument plumbing
	cfg.Path = "sh"
	cmd, err := cfg.Command(context.Background(), "fw.elf")
	c.Assert(err, qt.IsNil)
	c.Assert(cmd.Args[1:], qt.DeepEquals, cfg.Args("fw.elf"))
}
