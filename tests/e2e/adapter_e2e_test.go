package e2e

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openlego/tests/testutil"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "./cmd/openlego"}, args...)...)
	cmd.Dir = testutil.RepoRoot(t)
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return string(out)
}

func TestValidateCommandE2E(t *testing.T) {
	out := runCLI(t, "validate",
		"--input", "fixtures/input.xml",
		"--output", "fixtures/output.xml",
		"--partials", "fixtures/partials.xml",
	)
	assert.Contains(t, out, "renamed: cpacs/wing/chord -> cpacs/wing/chord___out (ref=2)")
	assert.Contains(t, out, "partial pairs: 2")
}

func TestInspectCommandE2E(t *testing.T) {
	out := runCLI(t, "inspect",
		"--input", "fixtures/input.xml",
		"--output", "fixtures/output.xml",
	)
	assert.Contains(t, out, "cpacs/wing/span")
	assert.Contains(t, out, "cpacs/wing/airfoil = NACA0012")
	assert.Contains(t, out, "cpacs/wing/status = pending")
}

func TestRunCommandE2E(t *testing.T) {
	out := runCLI(t, "run",
		"--spec", "fixtures/component.yaml",
		"--tool", "cp",
	)
	assert.Contains(t, out, "cpacs/wing/chord___out = [2]")
	assert.Contains(t, out, "cpacs/wing/status = pending")
}
