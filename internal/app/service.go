package app

import "openlego/internal/adapters"

// Service wires the adapters behind the CLI commands.
type Service struct {
	Specs     adapters.ComponentSpecAdapter
	Documents adapters.DocumentCodec
	Partials  adapters.PartialsCodec
}

func NewService() Service {
	documents := adapters.NewDocumentCodec()
	return Service{
		Specs:     adapters.NewComponentSpecAdapter(),
		Documents: documents,
		Partials:  adapters.NewPartialsCodec(documents),
	}
}
