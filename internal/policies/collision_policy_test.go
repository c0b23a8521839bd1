package policies

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openlego/internal/types"
)

func TestResolveRenamesNoOverlap(t *testing.T) {
	inputs := []types.ParamValue{
		{Name: "a/x", Value: types.Scalar(1)},
		{Name: "a/mode", Value: types.Discrete("fast")},
	}
	outputs := []types.ParamValue{
		{Name: "a/y", Value: types.Scalar(2)},
		{Name: "a/status", Value: types.Discrete("ok")},
	}
	maps, err := ResolveRenames(inputs, outputs)
	require.NoError(t, err)
	assert.True(t, maps.Empty())
}

func TestResolveRenamesContinuousCollision(t *testing.T) {
	inputs := []types.ParamValue{{Name: "a/b", Value: types.Scalar(2)}}
	outputs := []types.ParamValue{{Name: "a/b", Value: types.Scalar(5)}}

	maps, err := ResolveRenames(inputs, outputs)
	require.NoError(t, err)

	want := map[string]types.RenameEntry{
		"a/b": {
			Original: "a/b",
			Renamed:  "a/b___out",
			Template: types.Scalar(5),
			Ref:      2,
		},
	}
	if diff := cmp.Diff(want, maps.Continuous); diff != "" {
		t.Fatalf("unexpected continuous renames (-want +got):\n%s", diff)
	}
	assert.Empty(t, maps.Discrete)
}

func TestResolveRenamesZeroRefSubstitution(t *testing.T) {
	inputs := []types.ParamValue{{Name: "x", Value: types.Scalar(0)}}
	outputs := []types.ParamValue{{Name: "x", Value: types.Scalar(3)}}

	maps, err := ResolveRenames(inputs, outputs)
	require.NoError(t, err)
	require.Contains(t, maps.Continuous, "x")
	assert.Equal(t, 1.0, maps.Continuous["x"].Ref)
}

func TestResolveRenamesVectorRefIsInputMean(t *testing.T) {
	inputs := []types.ParamValue{{Name: "v", Value: types.Vector([]float64{1, 2, 3})}}
	outputs := []types.ParamValue{{Name: "v", Value: types.Vector([]float64{9, 9, 9})}}

	maps, err := ResolveRenames(inputs, outputs)
	require.NoError(t, err)
	require.Contains(t, maps.Continuous, "v")
	assert.Equal(t, 2.0, maps.Continuous["v"].Ref)
}

func TestResolveRenamesDiscreteCollision(t *testing.T) {
	inputs := []types.ParamValue{{Name: "a/mode", Value: types.Discrete("fast")}}
	outputs := []types.ParamValue{{Name: "a/mode", Value: types.Discrete("slow")}}

	maps, err := ResolveRenames(inputs, outputs)
	require.NoError(t, err)
	require.Contains(t, maps.Discrete, "a/mode")
	assert.Equal(t, "a/mode___out", maps.Discrete["a/mode"].Renamed)
	assert.Empty(t, maps.Continuous)
}

func TestResolveRenamesTypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []types.ParamValue
		outputs []types.ParamValue
	}{
		{
			name:    "continuous output discrete input",
			inputs:  []types.ParamValue{{Name: "a/b", Value: types.Discrete("x")}},
			outputs: []types.ParamValue{{Name: "a/b", Value: types.Scalar(1)}},
		},
		{
			name:    "discrete output continuous input",
			inputs:  []types.ParamValue{{Name: "a/b", Value: types.Scalar(1)}},
			outputs: []types.ParamValue{{Name: "a/b", Value: types.Discrete("x")}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRenames(tt.inputs, tt.outputs)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
		})
	}
}

func TestResolveRenamesMismatchInvariantUnderReordering(t *testing.T) {
	inputs := []types.ParamValue{
		{Name: "a", Value: types.Discrete("x")},
		{Name: "b", Value: types.Scalar(1)},
		{Name: "c", Value: types.Scalar(2)},
	}
	outputs := []types.ParamValue{
		{Name: "a", Value: types.Scalar(1)},
		{Name: "b", Value: types.Discrete("y")},
		{Name: "c", Value: types.Scalar(3)},
	}
	_, err := ResolveRenames(inputs, outputs)
	require.Error(t, err)

	reversedOutputs := []types.ParamValue{outputs[2], outputs[1], outputs[0]}
	reversedInputs := []types.ParamValue{inputs[2], inputs[1], inputs[0]}
	_, err2 := ResolveRenames(reversedInputs, reversedOutputs)
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestRenamedOutput(t *testing.T) {
	maps := types.RenameMaps{
		Continuous: map[string]types.RenameEntry{"a": {Renamed: "a___out"}},
		Discrete:   map[string]types.RenameEntry{"m": {Renamed: "m___out"}},
	}
	assert.Equal(t, "a___out", RenamedOutput(maps, "a"))
	assert.Equal(t, "m___out", RenamedOutput(maps, "m"))
	assert.Equal(t, "other", RenamedOutput(maps, "other"))
}
