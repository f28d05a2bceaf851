package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/dispatch/internal/pkg/geo"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/schedule"
)

var (
	bookingPickup  = models.Coordinate{Latitude: -6.20, Longitude: 106.80}
	bookingDropoff = models.Coordinate{Latitude: -6.25, Longitude: 106.85}
)

func TestCreateScheduledRide_Valid(t *testing.T) {
	fx := newScheduleFixture(t)
	pickupAt := time.Now().UTC().Add(3 * time.Hour)

	fx.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	ride, quote, err := fx.uc.CreateScheduledRide(context.Background(), uuid.New(), bookingPickup, bookingDropoff, models.CategoryStandard, pickupAt)
	require.NoError(t, err)
	assert.Equal(t, models.ScheduledStatusScheduled, ride.Status)
	assert.Equal(t, pickupAt, ride.ScheduledPickupAt)
	assert.Nil(t, ride.ReminderSentAt)
	require.NotNil(t, quote)
	assert.Equal(t, models.CategoryStandard, quote.Category)
	assert.Greater(t, quote.EstimatedTotal, 30.0)
	assert.Equal(t, "USD", quote.Currency)
}

func TestCreateScheduledRide_PickupTooSoon(t *testing.T) {
	fx := newScheduleFixture(t)

	// Inside the promotion lead: the rider should request a live ride instead
	_, _, err := fx.uc.CreateScheduledRide(context.Background(), uuid.New(), bookingPickup, bookingDropoff, models.CategoryStandard, time.Now().UTC().Add(10*time.Minute))
	assert.ErrorIs(t, err, schedule.ErrPickupTooSoon)
}

func TestCreateScheduledRide_PickupBeyondHorizon(t *testing.T) {
	fx := newScheduleFixture(t)

	_, _, err := fx.uc.CreateScheduledRide(context.Background(), uuid.New(), bookingPickup, bookingDropoff, models.CategoryStandard, time.Now().UTC().Add(8*24*time.Hour))
	assert.ErrorIs(t, err, schedule.ErrPickupTooFar)
}

func TestCreateScheduledRide_OutOfServiceArea(t *testing.T) {
	fx := newScheduleFixture(t)

	farAway := models.Coordinate{Latitude: -7.5, Longitude: 110.0}
	_, _, err := fx.uc.CreateScheduledRide(context.Background(), uuid.New(), farAway, bookingDropoff, models.CategoryStandard, time.Now().UTC().Add(3*time.Hour))

	var oos *geo.OutOfServiceError
	assert.ErrorAs(t, err, &oos)
}

func TestModifyScheduledRide_OutsideLockWindow(t *testing.T) {
	fx := newScheduleFixture(t)
	ride := scheduledRide(models.ScheduledStatusScheduled, time.Now().UTC().Add(5*time.Hour))
	newPickupAt := time.Now().UTC().Add(6 * time.Hour)

	fx.repo.EXPECT().Get(gomock.Any(), ride.ID).Return(ride, nil)
	fx.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	updated, quote, err := fx.uc.ModifyScheduledRide(context.Background(), ride.ID, bookingPickup, bookingDropoff, newPickupAt)
	require.NoError(t, err)
	assert.Equal(t, newPickupAt, updated.ScheduledPickupAt)
	require.NotNil(t, quote)
	assert.Greater(t, quote.EstimatedTotal, 30.0)
}

func TestModifyScheduledRide_InsideLockWindow(t *testing.T) {
	fx := newScheduleFixture(t)
	ride := scheduledRide(models.ScheduledStatusScheduled, time.Now().UTC().Add(90*time.Minute))

	fx.repo.EXPECT().Get(gomock.Any(), ride.ID).Return(ride, nil)

	_, _, err := fx.uc.ModifyScheduledRide(context.Background(), ride.ID, bookingPickup, bookingDropoff, time.Now().UTC().Add(5*time.Hour))
	assert.ErrorIs(t, err, schedule.ErrTooLateToModify)
}

func TestModifyScheduledRide_AfterPromotion(t *testing.T) {
	fx := newScheduleFixture(t)
	ride := scheduledRide(models.ScheduledStatusPromoting, time.Now().UTC().Add(20*time.Minute))

	fx.repo.EXPECT().Get(gomock.Any(), ride.ID).Return(ride, nil)

	_, _, err := fx.uc.ModifyScheduledRide(context.Background(), ride.ID, bookingPickup, bookingDropoff, time.Now().UTC().Add(5*time.Hour))
	assert.ErrorIs(t, err, schedule.ErrAlreadyStarted)
}

func TestCancelScheduledRide_FreeWithEnoughLead(t *testing.T) {
	fx := newScheduleFixture(t)
	ride := scheduledRide(models.ScheduledStatusScheduled, time.Now().UTC().Add(3*time.Hour))

	fx.repo.EXPECT().Get(gomock.Any(), ride.ID).Return(ride, nil)
	fx.repo.EXPECT().MarkCancelled(gomock.Any(), ride.ID).Return(true, nil)

	outcome, err := fx.uc.CancelScheduledRide(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.False(t, outcome.FeeCharged)
	assert.Zero(t, outcome.FeeAmount)
}

func TestCancelScheduledRide_FeeInsideLeadWindow(t *testing.T) {
	fx := newScheduleFixture(t)
	ride := scheduledRide(models.ScheduledStatusScheduled, time.Now().UTC().Add(40*time.Minute))

	fx.repo.EXPECT().Get(gomock.Any(), ride.ID).Return(ride, nil)
	fx.repo.EXPECT().MarkCancelled(gomock.Any(), ride.ID).Return(true, nil)

	outcome, err := fx.uc.CancelScheduledRide(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.True(t, outcome.FeeCharged)
	assert.Equal(t, 15.0, outcome.FeeAmount)
	assert.Equal(t, "USD", outcome.Currency)
}

func TestCancelScheduledRide_WithdrawsPromotedBroadcast(t *testing.T) {
	fx := newScheduleFixture(t)
	ride := scheduledRide(models.ScheduledStatusPromoting, time.Now().UTC().Add(20*time.Minute))
	requestID := uuid.New()
	ride.MatchedRequestID = &requestID

	fx.repo.EXPECT().Get(gomock.Any(), ride.ID).Return(ride, nil)
	fx.repo.EXPECT().MarkCancelled(gomock.Any(), ride.ID).Return(true, nil)
	fx.dispatch.EXPECT().CancelRequest(gomock.Any(), requestID).Return(nil)

	outcome, err := fx.uc.CancelScheduledRide(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.True(t, outcome.FeeCharged)
}

func TestCancelScheduledRide_AlreadyTerminal(t *testing.T) {
	fx := newScheduleFixture(t)
	ride := scheduledRide(models.ScheduledStatusMatched, time.Now().UTC().Add(-time.Hour))

	fx.repo.EXPECT().Get(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := fx.uc.CancelScheduledRide(context.Background(), ride.ID)
	assert.ErrorIs(t, err, schedule.ErrAlreadyStarted)
}
