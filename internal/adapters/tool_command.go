package adapters

import (
	"context"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"openlego/internal/shared"
	"openlego/internal/types"
)

// CommandDiscipline invokes an external analysis executable as
//
//	tool [args...] <input.xml> <output.xml>
//	tool [args...] --linearize <input.xml> <partials.xml>
//
// Buffer-backed resources are spilled to temporary files around the call
// and read back afterwards, so the tool always sees plain file paths.
type CommandDiscipline struct {
	Command []string
}

func NewCommandDiscipline(command []string) (CommandDiscipline, error) {
	if len(command) == 0 {
		return CommandDiscipline{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("discipline command is empty")
	}
	return CommandDiscipline{Command: command}, nil
}

func (d CommandDiscipline) Execute(ctx context.Context, input *types.Resource, output *types.Resource) error {
	return d.run(ctx, nil, input, output)
}

func (d CommandDiscipline) Linearize(ctx context.Context, input *types.Resource, partials *types.Resource) error {
	return d.run(ctx, []string{"--linearize"}, input, partials)
}

func (d CommandDiscipline) run(ctx context.Context, extra []string, input *types.Resource, result *types.Resource) error {
	inputPath, cleanupIn, err := materialize(input, "openlego_tool_in_*.xml")
	if err != nil {
		return err
	}
	defer cleanupIn()

	resultPath := result.Path
	var cleanupOut func()
	if result.InMemory() {
		resultPath, cleanupOut, err = scratchPath("openlego_tool_out_*.xml")
		if err != nil {
			return err
		}
		defer cleanupOut()
	}

	args := append(append([]string{}, d.Command[1:]...), extra...)
	args = append(args, inputPath, resultPath)
	cmd := exec.CommandContext(ctx, d.Command[0], args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("discipline tool failed").
			WithCause(shared.CommandError(out, err))
	}
	log.Ctx(ctx).Debug().Str("tool", d.Command[0]).Msg("discipline tool finished")

	if result.InMemory() {
		data, err := os.ReadFile(resultPath)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read discipline tool result").
				WithCause(err)
		}
		result.Buffer.Reset()
		result.Buffer.Write(data)
	}
	return nil
}

func materialize(resource *types.Resource, pattern string) (string, func(), error) {
	if !resource.InMemory() {
		return resource.Path, func() {}, nil
	}
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create temporary tool file").
			WithCause(err)
	}
	path := file.Name()
	if _, err := file.Write(resource.Buffer.Bytes()); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write temporary tool file").
			WithCause(err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close temporary tool file").
			WithCause(err)
	}
	return path, func() { _ = os.Remove(path) }, nil
}

func scratchPath(pattern string) (string, func(), error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create temporary tool file").
			WithCause(err)
	}
	path := file.Name()
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close temporary tool file").
			WithCause(err)
	}
	return path, func() { _ = os.Remove(path) }, nil
}
