package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"openlego/internal/types"
)

type ComponentSpecAdapter struct{}

func NewComponentSpecAdapter() ComponentSpecAdapter {
	return ComponentSpecAdapter{}
}

// Load reads and validates a component.yaml file.
func (a ComponentSpecAdapter) Load(path string) (types.ComponentSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ComponentSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("component spec file not found").
			WithCause(err)
	}
	var spec types.ComponentSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.ComponentSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse component spec yaml").
			WithCause(err)
	}
	if strings.TrimSpace(spec.Name) == "" {
		return types.ComponentSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("component spec name must be set")
	}
	if spec.InputXML == "" && spec.OutputXML == "" {
		return types.ComponentSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("component spec needs at least one of input_xml or output_xml")
	}
	return spec, nil
}
