package delivery

// Status is the lifecycle state of a delivery order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusPickedUp  Status = "picked_up"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// ParseStatus validates an operator-supplied status value against the known set.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusAccepted, StatusPreparing, StatusReady,
		StatusPickedUp, StatusDelivered, StatusCancelled:
		return Status(raw), nil
	default:
		return "", ErrUnknownStatus
	}
}

// linear flow: pending → accepted → preparing → ready → picked_up,
// with pending → cancelled as the rejection branch.
var next = map[Status]map[Status]bool{
	StatusPending:   {StatusAccepted: true, StatusCancelled: true},
	StatusAccepted:  {StatusPreparing: true},
	StatusPreparing: {StatusReady: true},
	StatusReady:     {StatusPickedUp: true},
}

// CanTransitionTo reports whether the linear lifecycle allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	return next[s][target]
}

// Terminal reports whether no further linear transition exists from s.
func (s Status) Terminal() bool {
	return len(next[s]) == 0
}
