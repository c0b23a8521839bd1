package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openlego/internal/app"
	"openlego/internal/types"
	"openlego/tests/testutil"
)

func TestInspectAgainstFixtures(t *testing.T) {
	root := testutil.RepoRoot(t)
	result, err := app.NewService().Inspect(app.InspectRequest{
		InputXML:  filepath.Join(root, "fixtures/input.xml"),
		OutputXML: filepath.Join(root, "fixtures/output.xml"),
	})
	require.NoError(t, err)
	require.Len(t, result.Variables, 6)

	byName := map[string]app.VariableInfo{}
	for _, variable := range result.Variables {
		byName[variable.Name+"/"+variable.Side] = variable
	}
	span := byName["cpacs/wing/span/input"]
	assert.Equal(t, types.KindContinuous, span.Kind)
	assert.Equal(t, 1, span.Size)
	airfoil := byName["cpacs/wing/airfoil/input"]
	assert.Equal(t, types.KindDiscrete, airfoil.Kind)
	status := byName["cpacs/wing/status/output"]
	assert.Equal(t, types.KindDiscrete, status.Kind)
}

func TestRunAgainstFixtures(t *testing.T) {
	root := testutil.RepoRoot(t)

	// The committed spec names its templates relative to the repo root,
	// so rewrite it with absolute paths for the test working directory.
	specPath := filepath.Join(t.TempDir(), "component.yaml")
	specYAML := "name: wing\n" +
		"input_xml: " + filepath.Join(root, "fixtures/input.xml") + "\n" +
		"output_xml: " + filepath.Join(root, "fixtures/output.xml") + "\n" +
		"partials_xml: " + filepath.Join(root, "fixtures/partials.xml") + "\n"
	require.NoError(t, os.WriteFile(specPath, []byte(specYAML), 0644))

	result, err := app.NewService().Run(t.Context(), app.RunRequest{
		SpecPath: specPath,
		Tool:     []string{"cp"},
	})
	require.NoError(t, err)

	values := map[string]types.Value{}
	for _, out := range result.Outputs {
		values[out.Name] = out.Value
	}
	assert.Equal(t, types.Scalar(2), values["cpacs/wing/chord___out"])
}
