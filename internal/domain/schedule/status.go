package schedule

// ===============================
// Appointment Status
// ===============================

// Status is free-form on the wire; these are the values the API itself
// writes.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

// StatusFilter decides which appointments count as occupying a slot.
type StatusFilter func(Status) bool

// AnyStatus blocks the slot regardless of status: a cancelled appointment
// still occupies its time.
func AnyStatus(Status) bool { return true }

// ExcludeCancelled is the candidate replacement policy, kept alongside
// AnyStatus so the decision can be revisited without touching the slot math.
func ExcludeCancelled(s Status) bool { return s != StatusCancelled }
