package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"openlego/internal/shared"
	"openlego/internal/types"
)

// Inspect lists the parameters a pair of templates would declare.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	if strings.TrimSpace(req.InputXML) == "" && strings.TrimSpace(req.OutputXML) == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one template path is required")
	}

	var variables []VariableInfo
	if req.InputXML != "" {
		vars, err := s.templateVariables(req.InputXML, "input")
		if err != nil {
			return InspectResult{}, err
		}
		variables = append(variables, vars...)
	}
	if req.OutputXML != "" {
		vars, err := s.templateVariables(req.OutputXML, "output")
		if err != nil {
			return InspectResult{}, err
		}
		variables = append(variables, vars...)
	}
	return InspectResult{Variables: variables}, nil
}

func (s Service) templateVariables(path string, side string) ([]VariableInfo, error) {
	doc, err := s.Documents.ParseFile(path)
	if err != nil {
		return nil, err
	}
	leaves := s.Documents.Leaves(doc)
	variables := make([]VariableInfo, 0, len(leaves))
	for _, leaf := range leaves {
		size := len(leaf.Value.Floats)
		if leaf.Value.Kind == types.KindDiscrete {
			size = 0
		}
		variables = append(variables, VariableInfo{
			Name:     shared.ParamFromXPath(leaf.XPath),
			Side:     side,
			Kind:     leaf.Value.Kind,
			Size:     size,
			Template: shared.FormatValueText(leaf.Value),
		})
	}
	return variables, nil
}
