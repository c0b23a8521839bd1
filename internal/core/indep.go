package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"openlego/internal/ports"
	"openlego/internal/shared"
	"openlego/internal/types"
)

// DeclareIndepVars promotes the given input parameters to independent
// design variables of the surrounding group, one per parameter. Aliases
// default to "INDEP_" plus the last XPath segment. All arguments are
// validated before any mutation of the group.
func DeclareIndepVars(registry *Registry, group ports.IndepGroupPort, params []string, values []types.Value, aliases []string) error {
	if len(params) != len(values) || (aliases != nil && len(params) != len(aliases)) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("number of params, values and optionally aliases needs to be the same")
	}
	for _, param := range params {
		if _, ok := registry.InputValue(param); !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("param is not an input of this component: %s", param))
		}
	}

	for i, param := range params {
		alias := ""
		if aliases != nil {
			alias = aliases[i]
		}
		if alias == "" {
			alias = "INDEP_" + shared.LastSegment(shared.XPathFromParam(param))
		}
		if err := group.AddIndepVar(alias, values[i]); err != nil {
			return err
		}
		if err := group.Connect(alias, param); err != nil {
			return err
		}
	}
	return nil
}
