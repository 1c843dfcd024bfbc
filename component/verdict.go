package component

// Verdict is the outcome of a token's most recent release
type Verdict uint8

const (
	// VerdictUnset means no decision was rendered
	VerdictUnset Verdict = iota
	VerdictMatch
	VerdictMismatch
)

// VerdictOf converts a match result into a decided verdict
func VerdictOf(match bool) Verdict {
	if match {
		return VerdictMatch
	}
	return VerdictMismatch
}

func (v Verdict) String() string {
	switch v {
	case VerdictMatch:
		return "match"
	case VerdictMismatch:
		return "mismatch"
	default:
		return "unset"
	}
}
