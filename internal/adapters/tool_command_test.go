package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openlego/internal/types"
)

func TestNewCommandDisciplineEmpty(t *testing.T) {
	_, err := NewCommandDiscipline(nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestCommandDisciplineExecuteFiles(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.xml")
	outPath := filepath.Join(dir, "out.xml")
	require.NoError(t, os.WriteFile(inPath, []byte("<cpacs/>"), 0644))

	// cp copies the input to the output path, standing in for a real tool.
	discipline, err := NewCommandDiscipline([]string{"cp"})
	require.NoError(t, err)

	input := types.FileResource(inPath)
	output := types.FileResource(outPath)
	require.NoError(t, discipline.Execute(t.Context(), input, output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "<cpacs/>", string(data))
}

func TestCommandDisciplineExecuteBuffers(t *testing.T) {
	discipline, err := NewCommandDiscipline([]string{"cp"})
	require.NoError(t, err)

	input := types.BufferResource()
	input.Buffer.WriteString("<cpacs><wing/></cpacs>")
	output := types.BufferResource()
	require.NoError(t, discipline.Execute(t.Context(), input, output))
	assert.Equal(t, "<cpacs><wing/></cpacs>", output.Buffer.String())
}

func TestCommandDisciplineExecuteFailure(t *testing.T) {
	discipline, err := NewCommandDiscipline([]string{"false"})
	require.NoError(t, err)

	input := types.BufferResource()
	input.Buffer.WriteString("<cpacs/>")
	output := types.BufferResource()
	err = discipline.Execute(t.Context(), input, output)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
