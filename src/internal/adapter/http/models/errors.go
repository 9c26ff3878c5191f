package models

// ValidationError marks a request that failed its Validate method, so the
// transport layer can map it without inspecting response envelopes.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
