package checkout

import (
	"errors"
	"sync"
)

var ErrInvalidTransition = errors.New("invalid submission state transition")

// State of a single checkout submission attempt.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateInvalid    State = "invalid"
	StateSubmitting State = "submitting"
	StateFailed     State = "failed"
	StateSucceeded  State = "succeeded"
)

func (s State) String() string {
	return string(s)
}

// Editable reports whether the form can still be edited and resubmitted.
// Invalid and Failed are Idle-equivalent: the user fixes things and tries
// again.
func (s State) Editable() bool {
	switch s {
	case StateIdle, StateInvalid, StateFailed:
		return true
	default:
		return false
	}
}

// Submission tracks the lifecycle of one checkout's booking submission:
//
//	Idle -> Validating -> Invalid (editable again)
//	Idle -> Validating -> Submitting -> Succeeded
//	                      Submitting -> Failed (editable again, error retained)
//
// At most one submission is in flight at a time: BeginValidation refuses
// while Submitting, making a concurrent submit attempt a no-op. There is
// no cancellation once Submitting begins, and no idempotency key is
// attached, so a retry after an ambiguous failure can in principle
// double-book.
type Submission struct {
	mu          sync.Mutex
	state       State
	fieldErrors FieldErrors
	failure     string
	bookingID   string
}

func NewSubmission() *Submission {
	return &Submission{state: StateIdle}
}

// BeginValidation moves an editable submission into Validating and wipes
// the previous attempt's outcome. Returns false (no-op) while a submission
// is in flight or already succeeded.
func (s *Submission) BeginValidation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.Editable() {
		return false
	}
	s.state = StateValidating
	s.fieldErrors = FieldErrors{}
	s.failure = ""
	s.bookingID = ""
	return true
}

// MarkInvalid surfaces validation errors and returns the form to an
// editable state. No network call happens on this path.
func (s *Submission) MarkInvalid(errs FieldErrors) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateValidating {
		return ErrInvalidTransition
	}
	s.state = StateInvalid
	s.fieldErrors = errs
	return nil
}

// BeginSubmitting disables resubmission while the sink call is in flight.
func (s *Submission) BeginSubmitting() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateValidating {
		return ErrInvalidTransition
	}
	s.state = StateSubmitting
	return nil
}

// MarkFailed records a terminal sink failure. The message is retained for
// display and the form becomes editable for a manual retry; no automatic
// retry or backoff happens here.
func (s *Submission) MarkFailed(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return ErrInvalidTransition
	}
	s.state = StateFailed
	s.failure = message
	return nil
}

// MarkSucceeded records the sink's confirmation identifier.
func (s *Submission) MarkSucceeded(bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSubmitting {
		return ErrInvalidTransition
	}
	s.state = StateSucceeded
	s.bookingID = bookingID
	return nil
}

func (s *Submission) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Submission) FieldErrors() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrors
}

func (s *Submission) Failure() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

func (s *Submission) BookingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookingID
}
