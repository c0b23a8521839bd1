package types

// PartialsSpec declares the sensitivities one output has with respect to a
// set of inputs. Both sides are raw XPaths as they appear in a partials
// XML document; translation to parameter names happens at setup time.
type PartialsSpec struct {
	Of  string
	WRT []string
}

// PartialsEntry is one sensitivity value read from a partials document.
type PartialsEntry struct {
	Of    string
	WRT   string
	Value Value
}
