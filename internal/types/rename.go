package types

// RenameEntry records the resolution of an output name that collides with
// an input name of the same kind. Ref is the normalization reference taken
// from the colliding input's template value; it is meaningful only for
// continuous entries.
type RenameEntry struct {
	Original string
	Renamed  string
	Template Value
	Ref      float64
}

// RenameMaps holds the collision resolution result, partitioned by kind.
// Keys are original output names.
type RenameMaps struct {
	Continuous map[string]RenameEntry
	Discrete   map[string]RenameEntry
}

// Empty reports whether no output needed renaming.
func (m RenameMaps) Empty() bool {
	return len(m.Continuous) == 0 && len(m.Discrete) == 0
}
