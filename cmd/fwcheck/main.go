// fwcheck verifies that a firmware image exports what a debugger expects:
//
//	fwcheck [--v=1] testfw.elf
package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	flag "github.com/spf13/pflag"

	"github.com/unconcealer/testfw/elfcheck"
	"github.com/unconcealer/testfw/symbols"
)

func main() {
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

	if err := check(flag.Arg(0)); err != nil {
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", flag.Arg(0))
}

func check(path string) error {
	img, err := elfcheck.Open(path)
	if err != nil {
		return err
	}
	defer img.Close()

	glog.Infof("checking %s against %d symbols", path, len(symbols.Contract))
	if err := elfcheck.Check(img, symbols.Contract); err != nil {
		if problems, ok := err.(elfcheck.Problems); ok {
			for _, p := range problems {
				glog.Errorf("%s: %v", path, p)
			}
		}
		return fmt.Errorf("%s: %d problem(s): %v", path, countProblems(err), err)
	}
	return nil
}

func countProblems(err error) int {
	if problems, ok := err.(elfcheck.Problems); ok {
		return len(problems)
	}
	return 1
}
