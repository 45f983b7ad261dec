// fwrun boots a firmware image under QEMU for a debugger to attach to. The
// CPU is held at reset until the debugger continues it, unless --run is
// given.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/golang/glog"
	flag "github.com/spf13/pflag"

	"github.com/unconcealer/testfw"
	"github.com/unconcealer/testfw/qemu"
)

func main() {
	def := qemu.DefaultConfig()
	port, err := strconv.Atoi(testfw.GetEnv("FWRUN_GDB_PORT", strconv.Itoa(def.GDBPort)))
	if err != nil {
		fmt.Fprintln(os.Stderr, "FWRUN_GDB_PORT:", err)
		os.Exit(2)
	}

	var (
		qemuPath    = flag.String("qemu", testfw.GetEnv("FWRUN_QEMU", def.Path), "QEMU binary")
		machine     = flag.String("machine", def.Machine, "QEMU machine type")
		cpu         = flag.String("cpu", def.CPU, "CPU model")
		gdbPort     = flag.Int("gdb-port", port, "gdb stub TCP port")
		run         = flag.Bool("run", false, "start executing instead of waiting for the debugger")
		semihosting = flag.Bool("semihosting", false, "enable semihosting (firmware linked with Semihosting=on)")
		extra       = flag.String("extra", testfw.GetEnv("FWRUN_EXTRA", ""), "extra QEMU arguments, shell quoted")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] image.elf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	flag.Parse()
	goflag.CommandLine.Parse([]string{})
	defer glog.Flush()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := def
	cfg.Path = *qemuPath
	cfg.Machine = *machine
	cfg.CPU = *cpu
	cfg.GDBPort = *gdbPort
	cfg.Halt = !*run
	cfg.Semihosting = *semihosting
	if cfg.Extra, err = qemu.ParseExtra(*extra); err != nil {
		glog.Exitf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, err := cfg.Command(ctx, flag.Arg(0))
	if err != nil {
		glog.Exitf("%v", err)
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	glog.Infof("running %v", cmd.Args)
	if cfg.Halt {
		fmt.Fprintf(os.Stderr, "waiting for debugger on tcp::%d\n", cfg.GDBPort)
	}
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		glog.Errorf("qemu: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
