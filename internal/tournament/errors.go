package tournament

// ValidationError reports a roster or scheduling precondition failure, such
// as an odd team count or a roster change after scheduling.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// InvalidArgumentError reports a bad argument to a state-changing call, such
// as a winning team that is not a participant of the match.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}
