package services

import (
	"context"

	"gogarvis-backend/application/ports"
	"gogarvis-backend/domain/audit"
	"gogarvis-backend/domain/status"
	apperrors "gogarvis-backend/pkg/errors"

	"go.uber.org/zap"
)

// statusListLimit bounds how many check-ins a single list call returns
const statusListLimit = 1000

// StatusService persists client status check-ins and the audit trail entries
// they produce.
type StatusService struct {
	statuses ports.StatusRepository
	auditor  ports.AuditRepository
	events   ports.EventPublisher
	logger   *zap.Logger
}

// NewStatusService creates a status service
func NewStatusService(
	statuses ports.StatusRepository,
	auditor ports.AuditRepository,
	events ports.EventPublisher,
	logger *zap.Logger,
) *StatusService {
	return &StatusService{
		statuses: statuses,
		auditor:  auditor,
		events:   events,
		logger:   logger,
	}
}

// Create records a status check-in for the named client
func (s *StatusService) Create(ctx context.Context, clientName string) (status.Check, error) {
	check := status.NewCheck(clientName)
	if err := s.statuses.Save(ctx, check); err != nil {
		return status.Check{}, apperrors.NewDatabaseError("failed to save status check", err)
	}

	entry := audit.NewEntry(audit.ActionStatusCreated, check.ID, clientName)
	if s.auditor != nil {
		if err := s.auditor.Append(ctx, entry); err != nil {
			s.logger.Warn("Failed to persist audit entry", zap.Error(err))
		}
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, entry); err != nil {
			s.logger.Warn("Failed to publish audit event", zap.Error(err))
		}
	}

	return check, nil
}

// List returns recorded status check-ins
func (s *StatusService) List(ctx context.Context) ([]status.Check, error) {
	checks, err := s.statuses.List(ctx, statusListLimit)
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to list status checks", err)
	}
	return checks, nil
}
