package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProposalStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    ProposalStatus
		to      ProposalStatus
		allowed bool
	}{
		{ProposalStatusProposed, ProposalStatusUserEdited, true},
		{ProposalStatusProposed, ProposalStatusApproved, true},
		{ProposalStatusProposed, ProposalStatusRejected, true},
		{ProposalStatusProposed, ProposalStatusSubmitted, false},

		{ProposalStatusUserEdited, ProposalStatusUserEdited, true},
		{ProposalStatusUserEdited, ProposalStatusApproved, true},
		{ProposalStatusUserEdited, ProposalStatusRejected, true},
		{ProposalStatusUserEdited, ProposalStatusProposed, false},

		{ProposalStatusApproved, ProposalStatusSubmitted, true},
		{ProposalStatusApproved, ProposalStatusSubmitFailed, true},
		{ProposalStatusApproved, ProposalStatusRejected, false},
		{ProposalStatusApproved, ProposalStatusUserEdited, false},

		{ProposalStatusSubmitFailed, ProposalStatusSubmitted, true},
		{ProposalStatusSubmitFailed, ProposalStatusSubmitFailed, true},
		{ProposalStatusSubmitFailed, ProposalStatusApproved, false},

		{ProposalStatusRejected, ProposalStatusProposed, false},
		{ProposalStatusRejected, ProposalStatusApproved, false},
		{ProposalStatusSubmitted, ProposalStatusSubmitFailed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestProposalStatusIsOpen(t *testing.T) {
	assert.True(t, ProposalStatusProposed.IsOpen())
	assert.True(t, ProposalStatusUserEdited.IsOpen())
	assert.True(t, ProposalStatusApproved.IsOpen())

	assert.False(t, ProposalStatusRejected.IsOpen())
	assert.False(t, ProposalStatusSubmitted.IsOpen())
	assert.False(t, ProposalStatusSubmitFailed.IsOpen())
}

func TestProposalStatusIsTerminal(t *testing.T) {
	assert.True(t, ProposalStatusRejected.IsTerminal())
	assert.True(t, ProposalStatusSubmitted.IsTerminal())

	// A failed submission stays retryable.
	assert.False(t, ProposalStatusSubmitFailed.IsTerminal())
	assert.False(t, ProposalStatusProposed.IsTerminal())
	assert.False(t, ProposalStatusApproved.IsTerminal())
}

func TestEventTypeRotationCategory(t *testing.T) {
	assert.Equal(t, RotationCategoryJuicer, EventTypeJuicer.RotationCategory())
	assert.Equal(t, RotationCategoryPrimaryLead, EventTypeSupervisor.RotationCategory())
	assert.Empty(t, EventTypeCore.RotationCategory())
	assert.Empty(t, EventTypeFreeosk.RotationCategory())
}

func TestEmployeeCanWork(t *testing.T) {
	e := &Employee{CanJuicer: false, CanPrimaryLead: true}

	assert.True(t, e.CanWork(EventTypeCore))
	assert.True(t, e.CanWork(EventTypeSupervisor))
	assert.False(t, e.CanWork(EventTypeJuicer))

	e.DisallowedEventTypes = EventTypeList{EventTypeSupervisor}
	assert.False(t, e.CanWork(EventTypeSupervisor))
}
