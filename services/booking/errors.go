package booking

import "fmt"

// PolicyError marks a domain-policy violation (24-hour notice, urgency
// bans, cart limits). It is recoverable: the offending transition is
// blocked and the message is surfaced to the user.
type PolicyError struct {
	Code    string
	Message string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewPolicyError(code, msg string) error {
	return &PolicyError{
		Code:    code,
		Message: msg,
	}
}

// ValidationError carries per-field payment validation messages. The
// flow stays on its current step; the fields render inline errors.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
