package commands

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"

	"github.com/google/uuid"
)

// PropertyReader is the command side's read-only view of the catalog.
type PropertyReader interface {
	FindByID(ctx context.Context, id string) (*property.Property, error)
}

// BookingIntentStore is the transient single-slot handoff between the
// discovery flow and checkout, keyed by browsing session.
type BookingIntentStore interface {
	Put(sessionID uuid.UUID, it *booking.Intent)
	Peek(sessionID uuid.UUID) (*booking.Intent, bool)
	TakeAndClear(sessionID uuid.UUID) (*booking.Intent, bool)
	Clear(sessionID uuid.UUID)
}
