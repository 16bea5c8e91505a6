package models

// EventType defines the kinds of retail events that can be staffed
type EventType string

const (
	EventTypeCore       EventType = "Core"
	EventTypeSupervisor EventType = "Supervisor"
	EventTypeJuicer     EventType = "Juicer"
	EventTypeFreeosk    EventType = "Freeosk"
	EventTypeDigitals   EventType = "Digitals"
	EventTypeOther      EventType = "Other"
)

// IsValid checks if the EventType is valid
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeCore, EventTypeSupervisor, EventTypeJuicer, EventTypeFreeosk, EventTypeDigitals, EventTypeOther:
		return true
	}
	return false
}

// RotationCategory returns the rotation governing this event type, or empty
// when assignment draws from the general pool.
func (t EventType) RotationCategory() RotationCategory {
	switch t {
	case EventTypeJuicer:
		return RotationCategoryJuicer
	case EventTypeSupervisor:
		return RotationCategoryPrimaryLead
	}
	return ""
}

// EventStatus defines the staffing lifecycle of an event
type EventStatus string

const (
	EventStatusUnstaffed EventStatus = "Unstaffed"
	EventStatusScheduled EventStatus = "Scheduled"
	EventStatusStaffed   EventStatus = "Staffed"
	EventStatusCanceled  EventStatus = "Canceled"
)

// IsValid checks if the EventStatus is valid
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUnstaffed, EventStatusScheduled, EventStatusStaffed, EventStatusCanceled:
		return true
	}
	return false
}

// ProposalStatus defines the review states of an engine-generated proposal
type ProposalStatus string

const (
	ProposalStatusProposed     ProposalStatus = "proposed"
	ProposalStatusUserEdited   ProposalStatus = "user_edited"
	ProposalStatusApproved     ProposalStatus = "approved"
	ProposalStatusRejected     ProposalStatus = "rejected"
	ProposalStatusSubmitted    ProposalStatus = "submitted"
	ProposalStatusSubmitFailed ProposalStatus = "submit_failed"
)

// IsValid checks if the ProposalStatus is valid
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusProposed, ProposalStatusUserEdited, ProposalStatusApproved,
		ProposalStatusRejected, ProposalStatusSubmitted, ProposalStatusSubmitFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
// submit_failed is retryable, so it is not terminal.
func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusRejected || s == ProposalStatusSubmitted
}

// IsOpen reports whether a proposal still occupies its event for engine
// idempotency purposes.
func (s ProposalStatus) IsOpen() bool {
	switch s {
	case ProposalStatusProposed, ProposalStatusUserEdited, ProposalStatusApproved:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine permits moving from s to next.
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	switch s {
	case ProposalStatusProposed:
		return next == ProposalStatusUserEdited || next == ProposalStatusApproved || next == ProposalStatusRejected
	case ProposalStatusUserEdited:
		return next == ProposalStatusUserEdited || next == ProposalStatusApproved || next == ProposalStatusRejected
	case ProposalStatusApproved:
		return next == ProposalStatusSubmitted || next == ProposalStatusSubmitFailed
	case ProposalStatusSubmitFailed:
		return next == ProposalStatusSubmitted || next == ProposalStatusSubmitFailed
	}
	return false
}

// RotationCategory defines day-specific rotating role designations
type RotationCategory string

const (
	RotationCategoryJuicer      RotationCategory = "juicer"
	RotationCategoryPrimaryLead RotationCategory = "primary_lead"
)

// IsValid checks if the RotationCategory is valid
func (c RotationCategory) IsValid() bool {
	switch c {
	case RotationCategoryJuicer, RotationCategoryPrimaryLead:
		return true
	}
	return false
}

// TimeOffStatus defines the approval state of a time-off request
type TimeOffStatus string

const (
	TimeOffStatusPending  TimeOffStatus = "pending"
	TimeOffStatusApproved TimeOffStatus = "approved"
	TimeOffStatusDenied   TimeOffStatus = "denied"
)

// IsValid checks if the TimeOffStatus is valid
func (s TimeOffStatus) IsValid() bool {
	switch s {
	case TimeOffStatusPending, TimeOffStatusApproved, TimeOffStatusDenied:
		return true
	}
	return false
}

// TimeOfDay defines an employee's preferred working period
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayAny       TimeOfDay = "any"
)

// IsValid checks if the TimeOfDay is valid
func (t TimeOfDay) IsValid() bool {
	switch t {
	case TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayAny:
		return true
	}
	return false
}
