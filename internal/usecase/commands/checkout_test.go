//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stayhub/internal/domain/checkout"
	"stayhub/internal/infra"
	"stayhub/internal/infra/intent"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/tests/common/builder"
	"stayhub/tests/mock/sinkmock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCheckoutFixture(t *testing.T) (commands.CheckoutCommands, *intent.Store, *sinkmock.MockSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockSink := sinkmock.NewMockSink(ctrl)
	intents := intent.NewStore()
	uc := commands.NewCheckoutCommands(intents, mockSink, testLogger())
	return uc, intents, mockSink
}

func seedIntent(t *testing.T, intents *intent.Store, session uuid.UUID) {
	t.Helper()
	it, err := builder.NewIntentBuilder().BuildDomain()
	require.NoError(t, err)
	intents.Put(session, it)
}

func TestSubmit(t *testing.T) {
	t.Run("confirmed submission clears the intent slot", func(t *testing.T) {
		uc, intents, mockSink := newCheckoutFixture(t)
		session := uuid.New()
		seedIntent(t, intents, session)

		mockSink.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload checkout.Payload) (string, error) {
				assert.Equal(t, "1", payload.PropertyID)
				assert.Equal(t, "2024-08-24", payload.CheckInDate)
				assert.Equal(t, "2024-08-27", payload.CheckOutDate)
				assert.Equal(t, 3, payload.Nights)
				assert.Equal(t, float64(414), payload.TotalPrice)
				assert.Equal(t, "John", payload.GuestDetails.FirstName)
				return "BK123", nil
			})

		result, err := uc.Submit(context.Background(), session, builder.NewFormBuilder().BuildForm())
		require.NoError(t, err)

		assert.Equal(t, checkout.StateSucceeded, result.State)
		assert.Equal(t, "BK123", result.BookingID)

		_, ok := intents.Peek(session)
		assert.False(t, ok, "a confirmed booking must consume the intent")
	})

	t.Run("sink failure keeps the intent for a manual retry", func(t *testing.T) {
		uc, intents, mockSink := newCheckoutFixture(t)
		session := uuid.New()
		seedIntent(t, intents, session)

		mockSink.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return("", infra.NewStoreErr(infra.KindUnavailable, "booking sink unreachable", nil))

		result, err := uc.Submit(context.Background(), session, builder.NewFormBuilder().BuildForm())
		assert.ErrorIs(t, err, errs.ErrSubmissionFailed)

		assert.Equal(t, checkout.StateFailed, result.State)
		assert.Equal(t, "Booking submission failed. Please try again.", result.Failure)

		_, ok := intents.Peek(session)
		assert.True(t, ok, "a failed submission must leave the intent in place")
	})

	t.Run("retry after a failure can succeed", func(t *testing.T) {
		uc, intents, mockSink := newCheckoutFixture(t)
		session := uuid.New()
		seedIntent(t, intents, session)

		gomock.InOrder(
			mockSink.EXPECT().
				Submit(gomock.Any(), gomock.Any()).
				Return("", infra.NewStoreErr(infra.KindUnavailable, "booking sink unreachable", nil)),
			mockSink.EXPECT().
				Submit(gomock.Any(), gomock.Any()).
				Return("BK124", nil),
		)

		form := builder.NewFormBuilder().BuildForm()
		_, err := uc.Submit(context.Background(), session, form)
		require.ErrorIs(t, err, errs.ErrSubmissionFailed)

		result, err := uc.Submit(context.Background(), session, form)
		require.NoError(t, err)
		assert.Equal(t, "BK124", result.BookingID)

		_, ok := intents.Peek(session)
		assert.False(t, ok)
	})

	t.Run("invalid form never reaches the sink", func(t *testing.T) {
		uc, intents, _ := newCheckoutFixture(t)
		session := uuid.New()
		seedIntent(t, intents, session)

		form := builder.NewFormBuilder().
			With(func(b *builder.FormBuilder) { b.CardNumber = "4111 1111 1111" }).
			BuildForm()

		result, err := uc.Submit(context.Background(), session, form)
		assert.ErrorIs(t, err, errs.ErrValidationFailed)

		assert.Equal(t, checkout.StateInvalid, result.State)
		assert.Equal(t, "Card number must be at least 16 digits", result.FieldErrors.CardNumber)

		_, ok := intents.Peek(session)
		assert.True(t, ok, "validation failures must not consume the intent")
	})

	t.Run("fixing the form after a validation failure succeeds", func(t *testing.T) {
		uc, intents, mockSink := newCheckoutFixture(t)
		session := uuid.New()
		seedIntent(t, intents, session)

		broken := builder.NewFormBuilder().
			With(func(b *builder.FormBuilder) { b.Email = "nope" }).
			BuildForm()
		_, err := uc.Submit(context.Background(), session, broken)
		require.ErrorIs(t, err, errs.ErrValidationFailed)

		mockSink.EXPECT().Submit(gomock.Any(), gomock.Any()).Return("BK125", nil)

		result, err := uc.Submit(context.Background(), session, builder.NewFormBuilder().BuildForm())
		require.NoError(t, err)
		assert.Equal(t, "BK125", result.BookingID)
	})

	t.Run("no active intent", func(t *testing.T) {
		uc, _, _ := newCheckoutFixture(t)

		_, err := uc.Submit(context.Background(), uuid.New(), builder.NewFormBuilder().BuildForm())
		assert.ErrorIs(t, err, errs.ErrNoActiveIntent)
	})
}
