// Package forms implements the login and signup state machines. Each form
// owns its field values, per-field error flags, and a submission state; all
// validation failures and server errors terminate in local state, never as
// returned faults.
package forms

// State is the submission state of a form.
//
//	Idle → Submitting → {Succeeded | Failed}
//
// Edits return a Failed form to Idle. A submit while Submitting is a no-op.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Generic per-operation messages, used when the server provides none.
const (
	loginGenericError  = "Unknown error occurred while logging in; try again later"
	signupGenericError = "Unknown error occurred while signing up; try again later"

	localErrorsSummary = "One or more errors were found. Please check the form for details."
)
