package services

import (
	"context"

	"github.com/SscSPs/trr_bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/trr_bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trr_bank_ledger/internal/core/ports/services"
)

const (
	defaultAuditLimit = 50
	defaultAuditMax   = 500
)

// AuditService reads the audit trail.
type AuditService struct {
	BaseService
	auditRepo    portsrepo.AuditReader
	defaultLimit int
	maxLimit     int
}

var _ portssvc.AuditSvc = (*AuditService)(nil)

// AuditServiceOption is a functional option for configuring the audit service
type AuditServiceOption func(*AuditService)

// WithAuditLimits overrides the default and maximum page sizes.
func WithAuditLimits(defaultLimit, maxLimit int) AuditServiceOption {
	return func(s *AuditService) {
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
		if defaultLimit > 0 {
			s.defaultLimit = min(defaultLimit, s.maxLimit)
		}
	}
}

func NewAuditService(auditRepo portsrepo.AuditReader, options ...AuditServiceOption) *AuditService {
	s := &AuditService{
		auditRepo:    auditRepo,
		defaultLimit: defaultAuditLimit,
		maxLimit:     defaultAuditMax,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *AuditService) ListAuditRecords(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	switch {
	case limit <= 0:
		limit = s.defaultLimit
	case limit > s.maxLimit:
		limit = s.maxLimit
	}

	records, err := s.auditRepo.ListAuditRecords(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit records")
		return nil, err
	}
	return records, nil
}
