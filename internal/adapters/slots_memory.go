package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"openlego/internal/types"
)

// SlotStore is an in-memory realization of the host framework's variable
// storage: four separate slot tables plus the declared partial pairs. It
// backs the CLI run command and the test suites; a real framework binding
// would implement the same ports.
type SlotStore struct {
	inputs          *SlotTable
	discreteInputs  *SlotTable
	outputs         *SlotTable
	discreteOutputs *SlotTable
	refs            map[string]float64
	partials        *PartialTable
}

func NewSlotStore() *SlotStore {
	return &SlotStore{
		inputs:          newSlotTable("input"),
		discreteInputs:  newSlotTable("discrete input"),
		outputs:         newSlotTable("output"),
		discreteOutputs: newSlotTable("discrete output"),
		refs:            map[string]float64{},
		partials:        newPartialTable(),
	}
}

func (s *SlotStore) AddInput(name string, value types.Value) error {
	return s.inputs.add(name, value)
}

func (s *SlotStore) AddDiscreteInput(name string, value types.Value) error {
	return s.discreteInputs.add(name, value)
}

func (s *SlotStore) AddOutput(name string, value types.Value, ref float64) error {
	if err := s.outputs.add(name, value); err != nil {
		return err
	}
	s.refs[name] = ref
	return nil
}

func (s *SlotStore) AddDiscreteOutput(name string, value types.Value) error {
	return s.discreteOutputs.add(name, value)
}

func (s *SlotStore) DeclarePartials(of string, wrt []string) error {
	for _, w := range wrt {
		s.partials.declare(of, w, false)
	}
	return nil
}

func (s *SlotStore) DeclarePartialsFD(of []string, wrt []string) error {
	for _, o := range of {
		for _, w := range wrt {
			s.partials.declare(o, w, true)
		}
	}
	return nil
}

func (s *SlotStore) Inputs() *SlotTable          { return s.inputs }
func (s *SlotStore) DiscreteInputs() *SlotTable  { return s.discreteInputs }
func (s *SlotStore) Outputs() *SlotTable         { return s.outputs }
func (s *SlotStore) DiscreteOutputs() *SlotTable { return s.discreteOutputs }
func (s *SlotStore) Partials() *PartialTable     { return s.partials }

// Ref returns the normalization reference recorded for a continuous
// output slot.
func (s *SlotStore) Ref(name string) (float64, bool) {
	ref, ok := s.refs[name]
	return ref, ok
}

// SlotTable is one ordered name-to-value store with slot-style access.
type SlotTable struct {
	kind   string
	names  []string
	values map[string]types.Value
}

func newSlotTable(kind string) *SlotTable {
	return &SlotTable{kind: kind, values: map[string]types.Value{}}
}

func (t *SlotTable) add(name string, value types.Value) error {
	if _, ok := t.values[name]; ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("%s slot declared twice: %s", t.kind, name))
	}
	t.names = append(t.names, name)
	t.values[name] = value
	return nil
}

func (t *SlotTable) Has(name string) bool {
	_, ok := t.values[name]
	return ok
}

func (t *SlotTable) Value(name string) (types.Value, bool) {
	value, ok := t.values[name]
	return value, ok
}

func (t *SlotTable) SetValue(name string, value types.Value) error {
	if _, ok := t.values[name]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no %s slot declared: %s", t.kind, name))
	}
	t.values[name] = value
	return nil
}

// Names returns slot names in declaration order.
func (t *SlotTable) Names() []string {
	return append([]string(nil), t.names...)
}

type partialKey struct {
	of  string
	wrt string
}

// PartialTable stores sensitivity values for declared pairs.
type PartialTable struct {
	keys   []partialKey
	fd     map[partialKey]bool
	values map[partialKey]types.Value
}

func newPartialTable() *PartialTable {
	return &PartialTable{
		fd:     map[partialKey]bool{},
		values: map[partialKey]types.Value{},
	}
}

func (t *PartialTable) declare(of string, wrt string, fd bool) {
	key := partialKey{of: of, wrt: wrt}
	if _, ok := t.fd[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.fd[key] = fd
}

func (t *PartialTable) Declared(of string, wrt string) bool {
	_, ok := t.fd[partialKey{of: of, wrt: wrt}]
	return ok
}

// FiniteDifference reports whether the pair came from the dense fallback.
func (t *PartialTable) FiniteDifference(of string, wrt string) bool {
	return t.fd[partialKey{of: of, wrt: wrt}]
}

func (t *PartialTable) Set(of string, wrt string, value types.Value) error {
	key := partialKey{of: of, wrt: wrt}
	if _, ok := t.fd[key]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("partial pair not declared: (%s, %s)", of, wrt))
	}
	t.values[key] = value
	return nil
}

func (t *PartialTable) Value(of string, wrt string) (types.Value, bool) {
	value, ok := t.values[partialKey{of: of, wrt: wrt}]
	return value, ok
}

// Len returns the number of declared pairs.
func (t *PartialTable) Len() int {
	return len(t.keys)
}
