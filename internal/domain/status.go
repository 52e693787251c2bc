package domain

// Status is the moderation state of a project. New submissions start in
// StatusAwaitingVerification; admins move them through the lifecycle:
//
//	awaiting-verification -> under-review -> {active, rejected}
//
// Active and rejected are terminal. Status replacement is currently
// unconditional (any recognized status can be set from any other); only
// membership in the enumeration is checked.
type Status string

const (
	StatusAwaitingVerification Status = "awaiting-verification"
	StatusUnderReview          Status = "under-review"
	StatusActive               Status = "active"
	StatusRejected             Status = "rejected"
)

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAwaitingVerification, StatusUnderReview, StatusActive, StatusRejected:
		return true
	}
	return false
}

// Pending reports whether s places a project in the admin review queue.
func (s Status) Pending() bool {
	return s == StatusAwaitingVerification || s == StatusUnderReview
}

// Terminal reports whether s has no outgoing transitions in the lifecycle.
func (s Status) Terminal() bool {
	return s == StatusActive || s == StatusRejected
}
