package constants

// NATS Subjects
const (
	// Dispatch notifications (published)
	SubjectDriverNotify  = "dispatch.driver.notify"
	SubjectDriverRetract = "dispatch.driver.retract"
	SubjectDriverEvent   = "dispatch.driver.event"
	SubjectRiderEvent    = "dispatch.rider.event"

	// Billing events (published)
	SubjectSettlement = "billing.settlement"

	// Trip events (consumed)
	SubjectRideCompleted = "ride.completed"
)

// Queue groups
const (
	QueueGroupDispatch = "dispatch-service"
)
