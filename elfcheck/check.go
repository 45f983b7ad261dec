// Package elfcheck verifies that a built firmware image carries the symbols
// and initial values a debugger expects to find in it.
package elfcheck

import (
	"encoding/binary"
	"strings"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/unconcealer/testfw/symbols"
)

// Problems collects everything Check found wrong with an image.
type Problems []error

func (p Problems) Error() string {
	msgs := make([]string, len(p))
	for i, err := range p {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Check returns nil when img satisfies every entry of contract, and
// Problems otherwise.
func Check(img Image, contract []symbols.Entry) error {
	var problems Problems

	if entry := img.Entry(); entry == 0 || !img.Executable(entry) {
		problems = append(problems, errors.Errorf("entry point 0x%08x is not in executable memory", entry))
	}

	for _, e := range contract {
		if err := checkEntry(img, e); err != nil {
			problems = append(problems, err)
			continue
		}
		glog.V(1).Infof("%s %s ok", e.Kind, e.Name)
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

func checkEntry(img Image, e symbols.Entry) error {
	sym, err := img.Symbol(e.Name)
	if err != nil {
		return errors.Annotatef(err, "%s", e.Kind)
	}
	switch e.Kind {
	case symbols.Function:
		if !img.Executable(sym.Value) {
			return errors.Errorf("function %s at 0x%08x is not in executable memory", e.Name, sym.Value)
		}
	case symbols.Variable:
		if sym.Size != e.Size {
			return errors.Errorf("variable %s is %d bytes, want %d", e.Name, sym.Size, e.Size)
		}
		b, err := img.ReadInitial(sym.Value, e.Size)
		if err != nil {
			return errors.Annotatef(err, "variable %s", e.Name)
		}
		if v := binary.LittleEndian.Uint32(b); v != e.Initial {
			return errors.Errorf("variable %s starts as 0x%08x, want 0x%08x", e.Name, v, e.Initial)
		}
	default:
		return errors.NotValidf("kind %d of %s", int(e.Kind), e.Name)
	}
	return nil
}
