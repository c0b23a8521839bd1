package ports

import (
	"context"

	"openlego/internal/types"
)

// DisciplinePort is the external analysis tool boundary. Execute runs the
// analysis for the inputs in the input resource and writes an output XML
// document to the output resource; Linearize writes a partials document
// instead. Both calls block until the tool finishes; any failure inside
// the tool propagates to the caller.
type DisciplinePort interface {
	Execute(ctx context.Context, input *types.Resource, output *types.Resource) error
	Linearize(ctx context.Context, input *types.Resource, partials *types.Resource) error
}

// FastDisciplinePort is an optional capability: disciplines that can
// exchange parameter maps directly bypass XML documents entirely. Keys are
// XPaths, exactly as they would appear in the documents.
type FastDisciplinePort interface {
	ExecuteFast(ctx context.Context, inputs map[string]types.Value) (map[string]types.Value, error)
}
