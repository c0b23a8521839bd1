package core

import (
	"openlego/internal/policies"
	"openlego/internal/shared"
	"openlego/internal/types"
)

// Registry holds the parameter surface of one component: the input and the
// output mapping from flat parameter name to template value, each populated
// from the leaves of an XML template document. Names are unique within a
// side; a name present on both sides is a collision the rename maps must
// resolve before the component can be set up.
type Registry struct {
	inputNames   []string
	inputValues  map[string]types.Value
	outputNames  []string
	outputValues map[string]types.Value

	renames       types.RenameMaps
	renamesErr    error
	renamesCached bool
}

func NewRegistry() *Registry {
	return &Registry{
		inputValues:  map[string]types.Value{},
		outputValues: map[string]types.Value{},
	}
}

// SetInputs replaces the input side from template leaves. Leaf XPaths are
// translated to parameter names; a repeated name keeps the last value.
// Cached rename maps are invalidated.
func (r *Registry) SetInputs(leaves []types.Leaf) {
	r.inputNames, r.inputValues = fromLeaves(leaves)
	r.invalidate()
}

// SetOutputs replaces the output side from template leaves.
func (r *Registry) SetOutputs(leaves []types.Leaf) {
	r.outputNames, r.outputValues = fromLeaves(leaves)
	r.invalidate()
}

func fromLeaves(leaves []types.Leaf) ([]string, map[string]types.Value) {
	var names []string
	values := map[string]types.Value{}
	for _, leaf := range leaves {
		name := shared.ParamFromXPath(leaf.XPath)
		if _, ok := values[name]; !ok {
			names = append(names, name)
		}
		values[name] = leaf.Value
	}
	return names, values
}

func (r *Registry) invalidate() {
	r.renames = types.RenameMaps{}
	r.renamesErr = nil
	r.renamesCached = false
}

// Inputs returns the input parameters in template document order.
func (r *Registry) Inputs() []types.ParamValue {
	return ordered(r.inputNames, r.inputValues)
}

// Outputs returns the output parameters in template document order.
func (r *Registry) Outputs() []types.ParamValue {
	return ordered(r.outputNames, r.outputValues)
}

func ordered(names []string, values map[string]types.Value) []types.ParamValue {
	out := make([]types.ParamValue, 0, len(names))
	for _, name := range names {
		out = append(out, types.ParamValue{Name: name, Value: values[name]})
	}
	return out
}

// InputValue looks up an input template value by parameter name.
func (r *Registry) InputValue(name string) (types.Value, bool) {
	value, ok := r.inputValues[name]
	return value, ok
}

// HasOutput reports whether name is a declared output parameter.
func (r *Registry) HasOutput(name string) bool {
	_, ok := r.outputValues[name]
	return ok
}

// HasInputs reports whether any input parameters are registered.
func (r *Registry) HasInputs() bool {
	return len(r.inputNames) > 0
}

// HasOutputs reports whether any output parameters are registered.
func (r *Registry) HasOutputs() bool {
	return len(r.outputNames) > 0
}

// RenameMaps resolves output/input name collisions. The result is memoized
// until the next SetInputs/SetOutputs call; resolving twice on an
// unchanged registry yields identical maps.
func (r *Registry) RenameMaps() (types.RenameMaps, error) {
	if !r.renamesCached {
		r.renames, r.renamesErr = policies.ResolveRenames(r.Inputs(), r.Outputs())
		r.renamesCached = true
	}
	return r.renames, r.renamesErr
}
