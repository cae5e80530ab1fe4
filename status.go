package bezier

// Status describes the outcome of a geometric construction that can fail
// for some inputs, such as intersecting two lines or offsetting a curve.
type Status uint8

const (
	// StatusOK means the construction succeeded.
	StatusOK Status = iota
	// StatusNone means the construction is well defined but has no result,
	// for example two parallel lines that never cross.
	StatusNone
	// StatusDegenerate means the input does not determine a unique result,
	// for example coincident lines, or a curve whose tangents at both ends
	// are parallel.
	StatusDegenerate
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNone:
		return "none"
	case StatusDegenerate:
		return "degenerate"
	default:
		return "Status(?)"
	}
}
