package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/dispatch/internal/pkg/fare"
	"github.com/ridelink/dispatch/internal/pkg/geo"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/dispatch"
)

// fakeRideRepo is an in-memory RideRepo with the same conditional-transition
// semantics as the SQL implementation. Setting commitEntered/commitRelease
// holds CommitMatch at its entry until released, so tests can interleave
// other operations with an in-flight commit.
type fakeRideRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*models.RideRequest
	matches  map[uuid.UUID]*models.RideMatch
	commits  int

	commitEntered chan struct{}
	commitRelease chan struct{}
}

func newFakeRideRepo() *fakeRideRepo {
	return &fakeRideRepo{
		requests: make(map[uuid.UUID]*models.RideRequest),
		matches:  make(map[uuid.UUID]*models.RideMatch),
	}
}

func (f *fakeRideRepo) CreateRequest(_ context.Context, req *models.RideRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *req
	f.requests[req.ID] = &cp
	return nil
}

func (f *fakeRideRepo) GetRequest(_ context.Context, id uuid.UUID) (*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok {
		return nil, dispatch.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (f *fakeRideRepo) UpdateSearchRadius(_ context.Context, id uuid.UUID, radiusKm float64, attempt int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req, ok := f.requests[id]; ok && req.Status == models.RequestStatusBroadcasting {
		req.RadiusKm = radiusKm
		req.Attempt = attempt
	}
	return nil
}

func (f *fakeRideRepo) CommitMatch(_ context.Context, match *models.RideMatch) error {
	if f.commitEntered != nil {
		f.commitEntered <- struct{}{}
		<-f.commitRelease
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[match.RequestID]
	if !ok || req.Status != models.RequestStatusBroadcasting {
		return dispatch.ErrConcurrentCommitConflict
	}
	req.Status = models.RequestStatusMatched
	cp := *match
	f.matches[match.RequestID] = &cp
	f.commits++
	return nil
}

func (f *fakeRideRepo) ExpireRequest(_ context.Context, id uuid.UUID) error {
	return f.transition(id, models.RequestStatusBroadcasting, models.RequestStatusExpired)
}

func (f *fakeRideRepo) CancelRequest(_ context.Context, id uuid.UUID) error {
	return f.transition(id, models.RequestStatusBroadcasting, models.RequestStatusCancelled)
}

func (f *fakeRideRepo) transition(id uuid.UUID, from, to models.RideRequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok || req.Status != from {
		return dispatch.ErrNotBroadcasting
	}
	req.Status = to
	return nil
}

func (f *fakeRideRepo) ReopenRequest(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok || req.Status != models.RequestStatusMatched {
		return dispatch.ErrNotMatched
	}
	req.Status = models.RequestStatusBroadcasting
	delete(f.matches, id)
	return nil
}

func (f *fakeRideRepo) GetMatch(_ context.Context, requestID uuid.UUID) (*models.RideMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	match, ok := f.matches[requestID]
	if !ok {
		return nil, dispatch.ErrMatchNotFound
	}
	cp := *match
	return &cp, nil
}

func (f *fakeRideRepo) commitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commits
}

func (f *fakeRideRepo) status(id uuid.UUID) models.RideRequestStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[id].Status
}

// fakeRegistry serves candidates per query radius
type fakeRegistry struct {
	mu       sync.Mutex
	byRadius map[float64][]models.DriverCandidate
	statuses map[string]models.DriverStatus
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		byRadius: make(map[float64][]models.DriverCandidate),
		statuses: make(map[string]models.DriverStatus),
	}
}

func (f *fakeRegistry) QueryAvailable(_ context.Context, _ models.Coordinate, radiusKm float64, _ models.CandidateFilter) ([]models.DriverCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byRadius[radiusKm], nil
}

func (f *fakeRegistry) SetStatus(_ context.Context, driverID string, status models.DriverStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[driverID] = status
	return nil
}

func (f *fakeRegistry) statusOf(driverID string) models.DriverStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statuses[driverID]
}

// fakeGW records published events
type fakeGW struct {
	mu          sync.Mutex
	notified    []models.DriverNotifyEvent
	retracted   []models.DriverRetractEvent
	riderEvents []models.RiderEvent
	settlements []models.SettlementEvent
}

func (f *fakeGW) NotifyDrivers(_ context.Context, event models.DriverNotifyEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, event)
	return nil
}

func (f *fakeGW) RetractDrivers(_ context.Context, event models.DriverRetractEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retracted = append(f.retracted, event)
	return nil
}

func (f *fakeGW) NotifyRider(_ context.Context, event models.RiderEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.riderEvents = append(f.riderEvents, event)
	return nil
}

func (f *fakeGW) PublishSettlement(_ context.Context, event models.SettlementEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settlements = append(f.settlements, event)
	return nil
}

func (f *fakeGW) notifyEvents() []models.DriverNotifyEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.DriverNotifyEvent(nil), f.notified...)
}

func (f *fakeGW) riderEventTypes() []models.RiderEventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]models.RiderEventType, len(f.riderEvents))
	for i, ev := range f.riderEvents {
		types[i] = ev.Event
	}
	return types
}

func testConfig() *models.Config {
	return &models.Config{
		Geo: models.GeoConfig{
			CenterLatitude:  -6.2088,
			CenterLongitude: 106.8456,
			CoreMinLat:      -6.38,
			CoreMaxLat:      -6.08,
			CoreMinLng:      106.68,
			CoreMaxLng:      107.00,
			MaxRadiusKm:     20,
		},
		Fare: models.FareConfig{
			Standard:         models.FareRateTable{BaseFare: 30, Tier1RateKm: 12, Tier2RateKm: 10},
			ParcelSmall:      models.FareRateTable{BaseFare: 20, Tier1RateKm: 8, Tier2RateKm: 7},
			ParcelMedium:     models.FareRateTable{BaseFare: 25, Tier1RateKm: 10, Tier2RateKm: 8},
			ParcelLarge:      models.FareRateTable{BaseFare: 35, Tier1RateKm: 14, Tier2RateKm: 12},
			TierThresholdKm:  25,
			ProtectionFactor: 1.2,
			Currency:         "USD",
		},
		Dispatch: models.DispatchConfig{
			CoreRadiusKm:        5,
			ExtendedRadiusKm:    8,
			CoreIncrementKm:     2,
			ExtendedIncrementKm: 3,
			CoreTimeout:         60 * time.Millisecond,
			ExtendedTimeout:     80 * time.Millisecond,
			ArbitrationWindow:   30 * time.Millisecond,
			MaxExpansions:       3,
		},
	}
}

type engineFixture struct {
	uc       dispatch.DispatchUC
	repo     *fakeRideRepo
	registry *fakeRegistry
	gw       *fakeGW
}

func newEngineFixture(cfg *models.Config) *engineFixture {
	repo := newFakeRideRepo()
	registry := newFakeRegistry()
	gw := &fakeGW{}
	uc := NewDispatchUC(cfg, geo.NewBoundary(cfg.Geo), fare.NewCalculator(cfg.Fare), repo, registry, gw)
	return &engineFixture{uc: uc, repo: repo, registry: registry, gw: gw}
}

func driverAt(id string, distanceKm float64) models.DriverCandidate {
	return models.DriverCandidate{
		DriverID:           id,
		Location:           models.Coordinate{Latitude: -6.21, Longitude: 106.85},
		DistanceToPickupKm: distanceKm,
	}
}

var (
	testPickup  = models.Coordinate{Latitude: -6.20, Longitude: 106.80}
	testDropoff = models.Coordinate{Latitude: -6.25, Longitude: 106.85}
)

func TestRequestRide_RejectsOutOfServicePickup(t *testing.T) {
	fx := newEngineFixture(testConfig())

	farAway := models.Coordinate{Latitude: -7.5, Longitude: 110.0}
	_, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), farAway, testDropoff, models.CategoryStandard)

	var oos *geo.OutOfServiceError
	require.ErrorAs(t, err, &oos)
	assert.Greater(t, oos.DistanceKm, 20.0)
}

func TestRequestRide_BroadcastsToNearbyDrivers(t *testing.T) {
	fx := newEngineFixture(testConfig())
	fx.registry.byRadius[5] = []models.DriverCandidate{driverAt("d1", 1.2), driverAt("d2", 3.4)}

	req, quote, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusBroadcasting, req.Status)
	assert.Equal(t, 5.0, req.RadiusKm)
	assert.Equal(t, 1, req.Attempt)
	assert.Positive(t, quote.EstimatedTotal)

	require.Eventually(t, func() bool {
		return len(fx.gw.notifyEvents()) == 1
	}, time.Second, 5*time.Millisecond)
	event := fx.gw.notifyEvents()[0]
	assert.ElementsMatch(t, []string{"d1", "d2"}, event.DriverIDs)
	assert.NotEmpty(t, event.PickupArea)
}

func TestAcceptRide_ClosestDriverWins(t *testing.T) {
	fx := newEngineFixture(testConfig())
	farID := uuid.New()
	nearID := uuid.New()
	fx.registry.byRadius[5] = []models.DriverCandidate{
		driverAt(farID.String(), 4.0),
		driverAt(nearID.String(), 0.5),
	}

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	var wg sync.WaitGroup
	outcomes := make([]*models.AcceptOutcome, 2)
	for i, driverID := range []uuid.UUID{farID, nearID} {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, id)
			assert.NoError(t, err)
			outcomes[i] = outcome
		}(i, driverID)
	}
	wg.Wait()

	assert.Equal(t, models.AcceptOutcomeNotWon, outcomes[0].Status)
	require.Equal(t, models.AcceptOutcomeWon, outcomes[1].Status)
	assert.Equal(t, nearID, outcomes[1].Match.DriverID)
	assert.Equal(t, 0.5, outcomes[1].Match.DistanceAtMatchKm)

	assert.Equal(t, 1, fx.repo.commitCount())
	assert.Equal(t, models.RequestStatusMatched, fx.repo.status(req.ID))
	assert.Equal(t, models.DriverStatusBusy, fx.registry.statusOf(nearID.String()))
}

func TestAcceptRide_ExactlyOneWinnerUnderContention(t *testing.T) {
	fx := newEngineFixture(testConfig())

	const drivers = 8
	ids := make([]uuid.UUID, drivers)
	candidates := make([]models.DriverCandidate, drivers)
	for i := range ids {
		ids[i] = uuid.New()
		candidates[i] = driverAt(ids[i].String(), float64(i)+0.5)
	}
	fx.registry.byRadius[5] = candidates

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, id)
			assert.NoError(t, err)
			if outcome.Status == models.AcceptOutcomeWon {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Equal(t, 1, fx.repo.commitCount())
}

func TestAcceptRide_AfterMatchReturnsAlreadyMatched(t *testing.T) {
	fx := newEngineFixture(testConfig())
	winnerID := uuid.New()
	fx.registry.byRadius[5] = []models.DriverCandidate{driverAt(winnerID.String(), 1.0)}

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, winnerID)
	require.NoError(t, err)
	require.Equal(t, models.AcceptOutcomeWon, outcome.Status)

	late, err := fx.uc.AcceptRide(context.Background(), req.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, models.AcceptOutcomeAlreadyMatched, late.Status)
}

func TestTimeoutExpandsRadiusAndExcludesRejecters(t *testing.T) {
	fx := newEngineFixture(testConfig())
	rejecterID := uuid.New()
	lateDriverID := uuid.New()
	fx.registry.byRadius[5] = []models.DriverCandidate{driverAt(rejecterID.String(), 2.0)}
	fx.registry.byRadius[7] = []models.DriverCandidate{
		driverAt(rejecterID.String(), 2.0),
		driverAt(lateDriverID.String(), 6.0),
	}

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	require.NoError(t, fx.uc.RejectRide(context.Background(), req.ID, rejecterID))

	// Second attempt fires after the 60ms core timeout at radius 7
	require.Eventually(t, func() bool {
		return len(fx.gw.notifyEvents()) == 2
	}, time.Second, 5*time.Millisecond)

	second := fx.gw.notifyEvents()[1]
	assert.Equal(t, 7.0, second.RadiusKm)
	assert.Equal(t, []string{lateDriverID.String()}, second.DriverIDs)

	stored, err := fx.repo.GetRequest(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.0, stored.RadiusKm)
	assert.Equal(t, 2, stored.Attempt)

	outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, lateDriverID)
	require.NoError(t, err)
	assert.Equal(t, models.AcceptOutcomeWon, outcome.Status)
}

func TestRequestExpiresAfterMaxExpansions(t *testing.T) {
	cfg := testConfig()
	cfg.Dispatch.CoreTimeout = 20 * time.Millisecond
	cfg.Dispatch.MaxExpansions = 2
	fx := newEngineFixture(cfg)

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return fx.repo.status(req.ID) == models.RequestStatusExpired
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		types := fx.gw.riderEventTypes()
		return len(types) == 1 && types[0] == models.RiderEventExpired
	}, time.Second, 5*time.Millisecond)

	// Final radius walked 5 -> 7 -> 9 before giving up
	stored, err := fx.repo.GetRequest(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, stored.RadiusKm)

	// An acceptance arriving after expiry surfaces the expiry, not a match
	_, err = fx.uc.AcceptRide(context.Background(), req.ID, uuid.New())
	assert.ErrorIs(t, err, dispatch.ErrRequestExpired)
}

func TestCancelRequest_ReleasesPendingAcceptances(t *testing.T) {
	cfg := testConfig()
	cfg.Dispatch.ArbitrationWindow = 500 * time.Millisecond
	fx := newEngineFixture(cfg)
	driverID := uuid.New()
	fx.registry.byRadius[5] = []models.DriverCandidate{driverAt(driverID.String(), 1.0)}

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	done := make(chan *models.AcceptOutcome, 1)
	go func() {
		outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, driverID)
		assert.NoError(t, err)
		done <- outcome
	}()

	// Let the acceptance buffer before cancelling
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, fx.uc.CancelRequest(context.Background(), req.ID))

	select {
	case outcome := <-done:
		assert.Equal(t, models.AcceptOutcomeNotWon, outcome.Status)
	case <-time.After(time.Second):
		t.Fatal("pending acceptance was not released by cancellation")
	}
	assert.Equal(t, models.RequestStatusCancelled, fx.repo.status(req.ID))
	assert.Equal(t, 0, fx.repo.commitCount())
}

func TestCancelRequest_AfterWindowCloseKeepsMatch(t *testing.T) {
	fx := newEngineFixture(testConfig())
	fx.repo.commitEntered = make(chan struct{})
	fx.repo.commitRelease = make(chan struct{})
	driverID := uuid.New()
	fx.registry.byRadius[5] = []models.DriverCandidate{driverAt(driverID.String(), 1.0)}

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	done := make(chan *models.AcceptOutcome, 1)
	go func() {
		outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, driverID)
		assert.NoError(t, err)
		done <- outcome
	}()

	// The window has closed and the commit is in flight but not yet
	// persisted: a rider cancel landing here must lose to the commit.
	<-fx.repo.commitEntered
	err = fx.uc.CancelRequest(context.Background(), req.ID)
	assert.ErrorIs(t, err, dispatch.ErrNotBroadcasting)
	close(fx.repo.commitRelease)

	select {
	case outcome := <-done:
		require.Equal(t, models.AcceptOutcomeWon, outcome.Status)
	case <-time.After(time.Second):
		t.Fatal("accepting driver never received an outcome")
	}
	assert.Equal(t, 1, fx.repo.commitCount())
	assert.Equal(t, models.RequestStatusMatched, fx.repo.status(req.ID))
}

func TestDriverCancelMatch_ReopensAndExcludesDriver(t *testing.T) {
	fx := newEngineFixture(testConfig())
	firstID := uuid.New()
	secondID := uuid.New()
	fx.registry.byRadius[5] = []models.DriverCandidate{
		driverAt(firstID.String(), 1.0),
		driverAt(secondID.String(), 2.0),
	}

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, firstID)
	require.NoError(t, err)
	require.Equal(t, models.AcceptOutcomeWon, outcome.Status)

	require.NoError(t, fx.uc.DriverCancelMatch(context.Background(), req.ID, firstID))

	assert.Equal(t, models.RequestStatusBroadcasting, fx.repo.status(req.ID))
	assert.Equal(t, models.DriverStatusAvailable, fx.registry.statusOf(firstID.String()))
	_, err = fx.repo.GetMatch(context.Background(), req.ID)
	assert.ErrorIs(t, err, dispatch.ErrMatchNotFound)

	// The reopened broadcast excludes the cancelling driver
	require.Eventually(t, func() bool {
		events := fx.gw.notifyEvents()
		return len(events) >= 2 && events[len(events)-1].DriverIDs[0] == secondID.String()
	}, time.Second, 5*time.Millisecond)

	// A cancelled driver cannot re-accept the reopened request
	reaccept, err := fx.uc.AcceptRide(context.Background(), req.ID, firstID)
	require.NoError(t, err)
	assert.Equal(t, models.AcceptOutcomeNotWon, reaccept.Status)
}

func TestDriverCancelMatch_RejectsWrongDriver(t *testing.T) {
	fx := newEngineFixture(testConfig())
	winnerID := uuid.New()
	fx.registry.byRadius[5] = []models.DriverCandidate{driverAt(winnerID.String(), 1.0)}

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, winnerID)
	require.NoError(t, err)
	require.Equal(t, models.AcceptOutcomeWon, outcome.Status)

	err = fx.uc.DriverCancelMatch(context.Background(), req.ID, uuid.New())
	assert.ErrorIs(t, err, dispatch.ErrDriverMismatch)
}

func TestCompleteRide_SettlesAndFreesDriver(t *testing.T) {
	fx := newEngineFixture(testConfig())
	winnerID := uuid.New()
	fx.registry.byRadius[5] = []models.DriverCandidate{driverAt(winnerID.String(), 1.0)}

	req, quote, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	outcome, err := fx.uc.AcceptRide(context.Background(), req.ID, winnerID)
	require.NoError(t, err)
	require.Equal(t, models.AcceptOutcomeWon, outcome.Status)

	// Actual distance grossly above the estimate: settlement caps at the quote
	settlement, err := fx.uc.CompleteRide(context.Background(), req.ID, quote.DistanceKm*3)
	require.NoError(t, err)
	assert.True(t, settlement.Capped)
	assert.Equal(t, quote.EstimatedTotal, settlement.FinalTotal)
	assert.Equal(t, models.DriverStatusAvailable, fx.registry.statusOf(winnerID.String()))

	require.Eventually(t, func() bool {
		fx.gw.mu.Lock()
		defer fx.gw.mu.Unlock()
		return len(fx.gw.settlements) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestCompleteRide_RequiresMatchedStatus(t *testing.T) {
	fx := newEngineFixture(testConfig())

	req, _, err := fx.uc.RequestRide(context.Background(), uuid.New(), testPickup, testDropoff, models.CategoryStandard)
	require.NoError(t, err)

	_, err = fx.uc.CompleteRide(context.Background(), req.ID, 10)
	assert.ErrorIs(t, err, dispatch.ErrNotMatched)
}
