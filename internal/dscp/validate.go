package dscp

// Marking flag values understood by the dataplane.
const (
	FlagNever         = 0 // never rewrite the DSCP field
	FlagDefaultIfZero = 1 // rewrite only when the original DSCP is 0
	FlagAlways        = 2 // always rewrite
)

// MaxMark is the largest DSCP value; the field is 6 bits wide.
const MaxMark = 63

// ValidateMarking checks a marking policy before any instance is contacted.
// The service is never asked to validate these ranges.
func ValidateMarking(flag, mark uint32) error {
	if flag > FlagAlways {
		return &ValidationError{Field: "flag", Value: flag, Max: FlagAlways}
	}
	if mark > MaxMark {
		return &ValidationError{Field: "mark", Value: mark, Max: MaxMark}
	}
	return nil
}
