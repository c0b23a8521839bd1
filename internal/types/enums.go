package types

// VariableKind separates parameters the framework treats as floating point
// data (continuous) from everything else (discrete).
type VariableKind string

const (
	KindContinuous VariableKind = "continuous"
	KindDiscrete   VariableKind = "discrete"
)

// RenameSuffix is appended to an output parameter name when it collides
// with an input parameter of the same kind.
const RenameSuffix = "___out"
