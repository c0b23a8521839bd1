package app

import "openlego/internal/types"

type InspectRequest struct {
	InputXML  string
	OutputXML string
}

// VariableInfo describes one parameter of a template for inspection.
type VariableInfo struct {
	Name     string
	Side     string
	Kind     types.VariableKind
	Size     int
	Template string
}

type InspectResult struct {
	Variables []VariableInfo
}

type ValidateRequest struct {
	InputXML    string
	OutputXML   string
	PartialsXML string
}

type ValidateResult struct {
	Renames      []types.RenameEntry
	PartialPairs int
}

type RunRequest struct {
	SpecPath  string
	Tool      []string
	KeepFiles bool
}

type RunResult struct {
	Outputs         []types.ParamValue
	DiscreteOutputs []types.ParamValue
}
