package repository

import (
	"time"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PendingProposalRepository handles database operations for pending proposals
type PendingProposalRepository struct {
	db *gorm.DB
}

// NewPendingProposalRepository creates a new pending proposal repository
func NewPendingProposalRepository(db *gorm.DB) *PendingProposalRepository {
	return &PendingProposalRepository{db: db}
}

// Create creates a new pending proposal
func (r *PendingProposalRepository) Create(proposal *models.PendingProposal) error {
	return r.db.Create(proposal).Error
}

// GetByID retrieves a pending proposal by ID with event and employee preloaded
func (r *PendingProposalRepository) GetByID(id uuid.UUID) (*models.PendingProposal, error) {
	var proposal models.PendingProposal
	err := r.db.Preload("Event").Preload("Employee").First(&proposal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetByStatus retrieves proposals in a given status with pagination. An empty
// status returns proposals in every state.
func (r *PendingProposalRepository) GetByStatus(status models.ProposalStatus, limit, offset int) ([]models.PendingProposal, int64, error) {
	var proposals []models.PendingProposal
	var total int64

	count := r.db.Model(&models.PendingProposal{})
	list := r.db.Preload("Event").Preload("Employee")
	if status != "" {
		count = count.Where("status = ?", status)
		list = list.Where("status = ?", status)
	}

	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := list.Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&proposals).Error
	return proposals, total, err
}

// GetOpenByEventID retrieves non-terminal proposals for an event. Used by the
// engine to keep re-runs idempotent.
func (r *PendingProposalRepository) GetOpenByEventID(eventID uuid.UUID) ([]models.PendingProposal, error) {
	var proposals []models.PendingProposal
	err := r.db.
		Where("event_id = ? AND status IN ?", eventID, []models.ProposalStatus{
			models.ProposalStatusProposed,
			models.ProposalStatusUserEdited,
			models.ProposalStatusApproved,
		}).
		Find(&proposals).Error
	return proposals, err
}

// GetOpenBetween retrieves non-terminal proposals whose start falls inside a
// window, with events preloaded. The engine seeds its slot bookkeeping from
// these so successive passes never stack assignments on one employee.
func (r *PendingProposalRepository) GetOpenBetween(start, end time.Time) ([]models.PendingProposal, error) {
	var proposals []models.PendingProposal
	err := r.db.Preload("Event").
		Where("start_datetime >= ? AND start_datetime < ? AND status IN ?", start, end, []models.ProposalStatus{
			models.ProposalStatusProposed,
			models.ProposalStatusUserEdited,
			models.ProposalStatusApproved,
		}).
		Find(&proposals).Error
	return proposals, err
}

// GetByEngineRunID retrieves all proposals produced by one engine run
func (r *PendingProposalRepository) GetByEngineRunID(runID uuid.UUID) ([]models.PendingProposal, error) {
	var proposals []models.PendingProposal
	err := r.db.Preload("Event").Preload("Employee").
		Where("engine_run_id = ?", runID).
		Order("created_at ASC").
		Find(&proposals).Error
	return proposals, err
}

// UpdateVersioned updates a proposal guarded by its optimistic version stamp.
// A stale version yields a ConcurrentModificationError.
func (r *PendingProposalRepository) UpdateVersioned(proposal *models.PendingProposal) error {
	current := proposal.Version
	proposal.Version = current + 1

	result := r.db.Model(&models.PendingProposal{}).
		Where("id = ? AND version = ?", proposal.ID, current).
		Updates(map[string]interface{}{
			"employee_id":    proposal.EmployeeID,
			"start_datetime": proposal.StartDatetime,
			"status":         proposal.Status,
			"rationale":      proposal.Rationale,
			"flagged":        proposal.Flagged,
			"version":        proposal.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConcurrentModificationError("pending proposal")
	}
	return nil
}
