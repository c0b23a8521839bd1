package policies

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"openlego/internal/types"
)

// ResolveRenames computes the rename maps for output parameters that
// collide with input parameters. A collision between names of the same
// kind is resolved by suffixing the output name; a collision across kinds
// has no safe rename and is rejected.
//
// The computation is pure: given the same registries it always produces
// the same maps, regardless of registration order.
func ResolveRenames(inputs []types.ParamValue, outputs []types.ParamValue) (types.RenameMaps, error) {
	continuousInputs := map[string]types.Value{}
	discreteInputs := map[string]types.Value{}
	for _, input := range inputs {
		if input.Value.IsContinuous() {
			continuousInputs[input.Name] = input.Value
		} else {
			discreteInputs[input.Name] = input.Value
		}
	}

	maps := types.RenameMaps{
		Continuous: map[string]types.RenameEntry{},
		Discrete:   map[string]types.RenameEntry{},
	}

	var mismatches []string
	for _, output := range outputs {
		name := output.Name
		if output.Value.IsContinuous() {
			if _, ok := discreteInputs[name]; ok {
				mismatches = append(mismatches, fmt.Sprintf("%s (continuous output, discrete input)", name))
				continue
			}
			if template, ok := continuousInputs[name]; ok {
				maps.Continuous[name] = types.RenameEntry{
					Original: name,
					Renamed:  name + types.RenameSuffix,
					Template: output.Value,
					Ref:      template.NormalizationRef(),
				}
			}
			continue
		}
		if _, ok := continuousInputs[name]; ok {
			mismatches = append(mismatches, fmt.Sprintf("%s (discrete output, continuous input)", name))
			continue
		}
		if _, ok := discreteInputs[name]; ok {
			maps.Discrete[name] = types.RenameEntry{
				Original: name,
				Renamed:  name + types.RenameSuffix,
				Template: output.Value,
			}
		}
	}

	if len(mismatches) > 0 {
		sort.Strings(mismatches)
		return types.RenameMaps{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("output collides with input of different kind: %s", strings.Join(mismatches, ", ")))
	}
	return maps, nil
}

// RenamedOutput applies the rename maps to an output name, continuous map
// first. Names without an entry pass through unchanged.
func RenamedOutput(maps types.RenameMaps, name string) string {
	if entry, ok := maps.Continuous[name]; ok {
		return entry.Renamed
	}
	if entry, ok := maps.Discrete[name]; ok {
		return entry.Renamed
	}
	return name
}
