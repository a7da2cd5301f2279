package livestock

// Requirement says whether an absent optional value is itself a failure.
type Requirement int

const (
	// Required makes an absent value fail with "Value is required".
	Required Requirement = iota
	// NotRequired lets an absent value pass.
	NotRequired
)

func (r Requirement) String() string {
	if r == Required {
		return "required"
	}
	return "not required"
}

// ErrRequired is the single failure reported for an absent required value.
var ErrRequired = ValidationError{Message: "Value is required"}
