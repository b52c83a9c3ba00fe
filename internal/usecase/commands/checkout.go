package commands

import (
	"context"
	"log/slog"
	"sync"

	"stayhub/internal/domain/checkout"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubmitResult struct {
	State       checkout.State
	BookingID   string
	FieldErrors checkout.FieldErrors
	Failure     string
}

type CheckoutCommands interface {
	// Submit runs the checkout submission state machine for the session:
	// validate the form, hand the payload to the sink, and settle in a
	// terminal state. Sentinel errors tell the handler what happened:
	// ErrNoActiveIntent (redirect to discovery), ErrValidationFailed
	// (field errors in the result, no network call made),
	// ErrSubmissionInProgress (concurrent submit, no-op) and
	// ErrSubmissionFailed (sink failure, intent retained for retry).
	Submit(ctx context.Context, sessionID uuid.UUID, form checkout.GuestAndPaymentForm) (*SubmitResult, error)
}

type checkoutCommandsImpl struct {
	intents BookingIntentStore
	sink    checkout.Sink
	logger  *slog.Logger

	mu          sync.Mutex
	submissions map[uuid.UUID]*checkout.Submission
}

func NewCheckoutCommands(intents BookingIntentStore, sink checkout.Sink, logger *slog.Logger) CheckoutCommands {
	return &checkoutCommandsImpl{
		intents:     intents,
		sink:        sink,
		logger:      logger,
		submissions: make(map[uuid.UUID]*checkout.Submission),
	}
}

func (c *checkoutCommandsImpl) submissionFor(sessionID uuid.UUID) *checkout.Submission {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub, ok := c.submissions[sessionID]
	if !ok {
		sub = checkout.NewSubmission()
		c.submissions[sessionID] = sub
	}
	return sub
}

func (c *checkoutCommandsImpl) finish(sessionID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.submissions, sessionID)
}

func (c *checkoutCommandsImpl) Submit(ctx context.Context, sessionID uuid.UUID, form checkout.GuestAndPaymentForm) (*SubmitResult, error) {
	it, ok := c.intents.Peek(sessionID)
	if !ok {
		return nil, errs.ErrNoActiveIntent
	}

	sub := c.submissionFor(sessionID)
	if !sub.BeginValidation() {
		return nil, errs.ErrSubmissionInProgress
	}

	fieldErrs := checkout.Validate(form)
	if !fieldErrs.IsEmpty() {
		_ = sub.MarkInvalid(fieldErrs)
		return &SubmitResult{
			State:       sub.State(),
			FieldErrors: fieldErrs,
		}, errs.ErrValidationFailed
	}

	_ = sub.BeginSubmitting()

	bookingID, err := c.sink.Submit(ctx, checkout.BuildPayload(it, form))
	if err != nil {
		// The intent slot stays put so the user can retry manually.
		const msg = "Booking submission failed. Please try again."
		_ = sub.MarkFailed(msg)
		c.logger.Warn("booking submission failed",
			"session_id", sessionID.String(),
			"property_id", it.PropertyID(),
			"error", err.Error(),
		)
		return &SubmitResult{
			State:   sub.State(),
			Failure: msg,
		}, errs.Mark(err, errs.ErrSubmissionFailed)
	}

	_ = sub.MarkSucceeded(bookingID)
	c.intents.TakeAndClear(sessionID)
	c.finish(sessionID)

	c.logger.Info("booking confirmed",
		"session_id", sessionID.String(),
		"property_id", it.PropertyID(),
		"booking_id", bookingID,
	)
	return &SubmitResult{
		State:     checkout.StateSucceeded,
		BookingID: bookingID,
	}, nil
}
