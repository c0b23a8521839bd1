package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openlego/internal/types"
)

func writeTemplate(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestServiceInspect(t *testing.T) {
	dir := t.TempDir()
	input := writeTemplate(t, dir, "input.xml", wingInputTemplate)

	result, err := NewService().Inspect(InspectRequest{InputXML: input})
	require.NoError(t, err)

	want := []VariableInfo{
		{Name: "cpacs/wing/span", Side: "input", Kind: types.KindContinuous, Size: 1, Template: "10"},
		{Name: "cpacs/wing/chord", Side: "input", Kind: types.KindContinuous, Size: 1, Template: "2"},
		{Name: "cpacs/wing/airfoil", Side: "input", Kind: types.KindDiscrete, Size: 0, Template: "NACA0012"},
	}
	if diff := cmp.Diff(want, result.Variables); diff != "" {
		t.Fatalf("unexpected variables (-want +got):\n%s", diff)
	}
}

func TestServiceInspectWithoutTemplates(t *testing.T) {
	_, err := NewService().Inspect(InspectRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestServiceValidate(t *testing.T) {
	dir := t.TempDir()
	req := ValidateRequest{
		InputXML:    writeTemplate(t, dir, "input.xml", wingInputTemplate),
		OutputXML:   writeTemplate(t, dir, "output.xml", wingOutputTemplate),
		PartialsXML: writeTemplate(t, dir, "partials.xml", wingPartialsTemplate),
	}

	result, err := NewService().Validate(t.Context(), req)
	require.NoError(t, err)
	require.Len(t, result.Renames, 1)
	assert.Equal(t, "cpacs/wing/chord", result.Renames[0].Original)
	assert.Equal(t, "cpacs/wing/chord___out", result.Renames[0].Renamed)
	assert.Equal(t, 2.0, result.Renames[0].Ref)
	assert.Equal(t, 2, result.PartialPairs)
}

func TestServiceValidateMismatch(t *testing.T) {
	dir := t.TempDir()
	req := ValidateRequest{
		InputXML: writeTemplate(t, dir, "input.xml", wingInputTemplate),
		OutputXML: writeTemplate(t, dir, "output.xml", `<?xml version="1.0"?>
<cpacs><wing><chord>wide</chord></wing></cpacs>
`),
	}

	_, err := NewService().Validate(t.Context(), req)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestServiceRun(t *testing.T) {
	spec := newWingSpec(t, false)
	specPath := filepath.Join(filepath.Dir(spec.InputXML), "component.yaml")
	specYAML := "name: wing\n" +
		"input_xml: " + spec.InputXML + "\n" +
		"output_xml: " + spec.OutputXML + "\n" +
		"data_folder: " + spec.DataFolder + "\n"
	require.NoError(t, os.WriteFile(specPath, []byte(specYAML), 0644))

	// cp echoes the input document back, so only the colliding chord
	// parameter lands in an output slot.
	result, err := NewService().Run(t.Context(), RunRequest{
		SpecPath: specPath,
		Tool:     []string{"cp"},
	})
	require.NoError(t, err)

	values := map[string]types.Value{}
	for _, out := range result.Outputs {
		values[out.Name] = out.Value
	}
	assert.Equal(t, types.Scalar(2), values["cpacs/wing/chord___out"])
	assert.Equal(t, types.Scalar(0), values["cpacs/wing/area"])
}

func TestServiceRunWithoutTool(t *testing.T) {
	_, err := NewService().Run(t.Context(), RunRequest{SpecPath: "component.yaml"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
