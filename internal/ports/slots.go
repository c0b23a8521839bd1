package ports

import "openlego/internal/types"

// SlotBuilderPort is the declaration side of the host framework boundary.
// Every parameter of a component is declared exactly once during setup.
type SlotBuilderPort interface {
	AddInput(name string, value types.Value) error
	AddDiscreteInput(name string, value types.Value) error
	AddOutput(name string, value types.Value, ref float64) error
	AddDiscreteOutput(name string, value types.Value) error

	// DeclarePartials registers explicit (of, wrt) sensitivity pairs.
	DeclarePartials(of string, wrt []string) error

	// DeclarePartialsFD registers the dense fallback: every continuous
	// output against every continuous input, approximated by finite
	// differences with relative step sizing.
	DeclarePartialsFD(of []string, wrt []string) error
}

// SlotsPort is slot-style access to one variable store of the framework
// (continuous inputs, discrete inputs, continuous outputs, ...).
type SlotsPort interface {
	Has(name string) bool
	Value(name string) (types.Value, bool)
	SetValue(name string, value types.Value) error
}

// PartialSlotsPort stores sensitivity values for declared pairs only.
type PartialSlotsPort interface {
	Declared(of string, wrt string) bool
	Set(of string, wrt string, value types.Value) error
}

// IndepGroupPort lets a component promote some of its inputs to
// independent design variables of the surrounding optimization group.
type IndepGroupPort interface {
	AddIndepVar(alias string, value types.Value) error
	Connect(source string, target string) error
}
