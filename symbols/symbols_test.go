package symbols

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSentinelsDiffer(t *testing.T) {
	c := qt.New(t)
	c.Assert(SentinelLinkTime, qt.Not(qt.Equals), SentinelStartup)
}

func TestLookup(t *testing.T) {
	c := qt.New(t)

	e, ok := Lookup(TestValueSymbol)
	c.Assert(ok, qt.IsTrue)
	c.Assert(e.Kind, qt.Equals, Variable)
	c.Assert(e.Size, qt.Equals, uint64(4))
	c.Assert(e.Initial, qt.Equals, SentinelLinkTime)

	e, ok = Lookup(InspectSymbol)
	c.Assert(ok, qt.IsTrue)
	c.Assert(e.Kind, qt.Equals, Function)

	_, ok = Lookup("main.nothing")
	c.Assert(ok, qt.IsFalse)
}

func TestContractNamesUnique(t *testing.T) {
	c := qt.New(t)
	seen := make(map[string]bool)
	for _, e := range Contract {
		c.Assert(seen[e.Name], qt.IsFalse, qt.Commentf("duplicate %s", e.Name))
		seen[e.Name] = true
	}
}

func TestKindString(t *testing.T) {
	c := qt.New(t)
	c.Assert(Variable.String(), qt.Equals, "variable")
	c.Assert(Function.String(), qt.Equals, "function")
	c.Assert(Kind(7).String(), qt.Equals, "unknown")
}
