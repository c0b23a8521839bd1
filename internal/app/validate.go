package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"openlego/internal/core"
	"openlego/internal/types"
)

// Validate loads the templates into a registry and resolves collisions.
// A type-mismatched collision surfaces here as the same fatal error a
// component construction would raise.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	if strings.TrimSpace(req.InputXML) == "" || strings.TrimSpace(req.OutputXML) == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("input and output template paths are required")
	}

	registry := core.NewRegistry()
	inputDoc, err := s.Documents.ParseFile(req.InputXML)
	if err != nil {
		return ValidateResult{}, err
	}
	registry.SetInputs(s.Documents.Leaves(inputDoc))

	outputDoc, err := s.Documents.ParseFile(req.OutputXML)
	if err != nil {
		return ValidateResult{}, err
	}
	registry.SetOutputs(s.Documents.Leaves(outputDoc))

	renames, err := registry.RenameMaps()
	if err != nil {
		return ValidateResult{}, err
	}

	result := ValidateResult{Renames: sortedRenames(renames)}
	if req.PartialsXML != "" {
		entries, err := s.Partials.Parse(types.FileResource(req.PartialsXML))
		if err != nil {
			return ValidateResult{}, err
		}
		result.PartialPairs = len(entries)
	}

	log.Ctx(ctx).Debug().
		Int("renames", len(result.Renames)).
		Int("partial_pairs", result.PartialPairs).
		Msg("templates validated")
	return result, nil
}

func sortedRenames(maps types.RenameMaps) []types.RenameEntry {
	entries := make([]types.RenameEntry, 0, len(maps.Continuous)+len(maps.Discrete))
	for _, entry := range maps.Continuous {
		entries = append(entries, entry)
	}
	for _, entry := range maps.Discrete {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Original < entries[j].Original
	})
	return entries
}
