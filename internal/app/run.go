package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"openlego/internal/adapters"
	"openlego/internal/types"
)

// Run performs one evaluation of a component spec against an external
// tool, using an in-memory slot store seeded with the template values.
func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	if len(req.Tool) == 0 {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("tool command is required")
	}
	spec, err := s.Specs.Load(req.SpecPath)
	if err != nil {
		return RunResult{}, err
	}
	if req.KeepFiles {
		spec.KeepFiles = true
	}
	discipline, err := adapters.NewCommandDiscipline(req.Tool)
	if err != nil {
		return RunResult{}, err
	}

	component, err := NewComponent(ctx, spec, discipline)
	if err != nil {
		return RunResult{}, err
	}
	store := adapters.NewSlotStore()
	if err := component.Setup(ctx, store); err != nil {
		return RunResult{}, err
	}
	if err := component.Compute(ctx, store.Inputs(), store.Outputs(), store.DiscreteInputs(), store.DiscreteOutputs()); err != nil {
		return RunResult{}, err
	}

	return RunResult{
		Outputs:         tableValues(store.Outputs()),
		DiscreteOutputs: tableValues(store.DiscreteOutputs()),
	}, nil
}

func tableValues(table *adapters.SlotTable) []types.ParamValue {
	names := table.Names()
	out := make([]types.ParamValue, 0, len(names))
	for _, name := range names {
		value, _ := table.Value(name)
		out = append(out, types.ParamValue{Name: name, Value: value})
	}
	return out
}
