package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"openlego/internal/policies"
	"openlego/internal/ports"
	"openlego/internal/shared"
	"openlego/internal/types"
)

// SetupPlanner declares a registry's parameters to the host framework.
type SetupPlanner struct{}

func NewSetupPlanner() SetupPlanner {
	return SetupPlanner{}
}

// Setup declares every input and output exactly once, applying the rename
// maps to colliding output names. Partial derivatives are declared only
// when at least one continuous input and one continuous output exist:
// explicitly when a partials spec was supplied, otherwise as the dense
// finite-difference fallback.
func (p SetupPlanner) Setup(ctx context.Context, registry *Registry, builder ports.SlotBuilderPort, partialsSpec []types.PartialsSpec) error {
	renames, err := registry.RenameMaps()
	if err != nil {
		return err
	}

	hasContInput := false
	var contInputs []string
	for _, input := range registry.Inputs() {
		if !input.Value.IsContinuous() {
			if err := builder.AddDiscreteInput(input.Name, input.Value); err != nil {
				return err
			}
			continue
		}
		if err := builder.AddInput(input.Name, input.Value); err != nil {
			return err
		}
		contInputs = append(contInputs, input.Name)
		hasContInput = true
	}

	hasContOutput := false
	var contOutputs []string
	for _, output := range registry.Outputs() {
		name := output.Name
		if !output.Value.IsContinuous() {
			if entry, ok := renames.Discrete[name]; ok {
				name = entry.Renamed
			}
			if err := builder.AddDiscreteOutput(name, output.Value); err != nil {
				return err
			}
			continue
		}
		ref := output.Value.NormalizationRef()
		if entry, ok := renames.Continuous[name]; ok {
			name = entry.Renamed
			ref = entry.Ref
		}
		if err := builder.AddOutput(name, output.Value, ref); err != nil {
			return err
		}
		contOutputs = append(contOutputs, name)
		hasContOutput = true
	}

	if !hasContInput || !hasContOutput {
		log.Ctx(ctx).Debug().
			Bool("continuous_inputs", hasContInput).
			Bool("continuous_outputs", hasContOutput).
			Msg("skipping partials declaration")
		return nil
	}

	if len(partialsSpec) > 0 {
		for _, decl := range partialsSpec {
			if decl.Of == "" || len(decl.WRT) == 0 {
				continue
			}
			of := policies.RenamedOutput(renames, shared.ParamFromXPath(decl.Of))
			wrt := make([]string, 0, len(decl.WRT))
			for _, raw := range decl.WRT {
				wrt = append(wrt, shared.ParamFromXPath(raw))
			}
			if err := builder.DeclarePartials(of, wrt); err != nil {
				return err
			}
		}
		return nil
	}
	return builder.DeclarePartialsFD(contOutputs, contInputs)
}
