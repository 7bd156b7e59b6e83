package diff3

// Marker lines bracketing a conflicting region.
const (
	DefaultMineLabel   = "MINE"
	DefaultTheirsLabel = "THEIRS"
	markerStart        = "<<<<<<<"
	markerSep          = "======="
	markerEnd          = ">>>>>>>"
)

// Labels name the two edited sides in conflict markers.
type Labels struct {
	Mine   string
	Theirs string
}

// Result is the outcome of a merge. Lines includes conflict markers when
// Conflicts > 0.
type Result struct {
	Lines     []string
	Conflicts int
}

// Conflicted reports whether any region could not be merged.
func (r Result) Conflicted() bool {
	return r.Conflicts > 0
}
