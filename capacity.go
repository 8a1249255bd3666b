package img2se

// CapacityThreshold is the block count at which the importer's default
// PCU limit is exceeded.
const CapacityThreshold = 400000

// Advice is the outcome of a capacity check.
type Advice int

const (
	AdviceOK Advice = iota
	AdviceWarning
)

func (a Advice) String() string {
	switch a {
	case AdviceWarning:
		return "warning"
	default:
		return "ok"
	}
}

// CheckCapacity flags record counts at or above CapacityThreshold.
// The result is advisory; callers still write every record.
func CheckCapacity(n int) Advice {
	if n >= CapacityThreshold {
		return AdviceWarning
	}
	return AdviceOK
}
