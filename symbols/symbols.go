// Package symbols describes what the test firmware guarantees to an attached
// debugger: symbol names, sizes and the sentinel values stored in them.
package symbols

const (
	// SentinelLinkTime is the value of the test value cell in the image,
	// before any firmware code has run.
	SentinelLinkTime uint32 = 0xDEADBEEF

	// SentinelStartup is written over SentinelLinkTime once at startup.
	SentinelStartup uint32 = 0x12345678

	// DelayIterations is the number of nops executed per loop iteration.
	DelayIterations = 1000

	// FaultAddress is read by the fault path. Nothing is mapped there.
	FaultAddress uintptr = 0xFFFFFFFF
)

const pkgPath = "github.com/unconcealer/testfw"

const (
	CounterSymbol   = pkgPath + ".Counter"
	TestValueSymbol = pkgPath + ".TestValue"
	InspectSymbol   = "test_function"
	FaultSymbol     = "trigger_hardfault"
)

type Kind int

const (
	Variable Kind = iota
	Function
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Function:
		return "function"
	}
	return "unknown"
}

type Entry struct {
	Name string
	Kind Kind
	// Size in bytes, variables only.
	Size uint64
	// Initial is the value a variable holds in the image.
	Initial uint32
}

// Contract lists every symbol the firmware exports for inspection.
var Contract = []Entry{
	{Name: CounterSymbol, Kind: Variable, Size: 4, Initial: 0},
	{Name: TestValueSymbol, Kind: Variable, Size: 4, Initial: SentinelLinkTime},
	{Name: InspectSymbol, Kind: Function},
	{Name: FaultSymbol, Kind: Function},
}

// Lookup returns the contract entry for name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Contract {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
