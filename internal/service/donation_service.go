package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fundlift/fundlift/internal/domain"
	"github.com/fundlift/fundlift/internal/metrics"
)

// DonationService covers both halves of the donation story: the cosmetic
// flow that records an ephemeral intent without touching any counters, and
// the real Apply path that credits a project exactly once per confirmed
// payment.
type DonationService struct {
	storage DonationStorage
	logger  *zap.Logger
	metrics *metrics.Metrics
}

type DonationStorage interface {
	Get(id string) (*domain.Project, error)
	ApplyDonation(projectID string, amount int64, method domain.PaymentMethod, key string) (*domain.DonationReceipt, error)
}

func NewDonationService(storage DonationStorage, logger *zap.Logger, m *metrics.Metrics) *DonationService {
	return &DonationService{
		storage: storage,
		logger:  logger,
		metrics: m,
	}
}

// RecordIntent validates and echoes back a donation intent. Intents are
// never joined back into the project's raised total.
func (s *DonationService) RecordIntent(projectID string, amount int64, method domain.PaymentMethod) (*domain.DonationIntent, error) {
	if amount <= 0 {
		return nil, &domain.ValidationError{Field: "amount", Reason: "must be a positive number"}
	}
	if !method.Valid() {
		return nil, &domain.ValidationError{Field: "method", Reason: "unrecognized payment method " + string(method)}
	}
	if _, err := s.storage.Get(projectID); err != nil {
		return nil, err
	}

	intent := &domain.DonationIntent{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Amount:    amount,
		Method:    method,
		CreatedAt: time.Now(),
	}

	s.metrics.DonationIntents.Inc()
	s.logger.Info("donation intent recorded",
		zap.String("project_id", projectID),
		zap.Int64("amount", amount),
		zap.String("method", string(method)))
	return intent, nil
}

// Apply credits a confirmed donation to the project, incrementing raised
// and supporter count together. The idempotency key guards against
// double-submission: a replayed key returns the original receipt.
func (s *DonationService) Apply(projectID string, amount int64, method domain.PaymentMethod, key string) (*domain.DonationReceipt, error) {
	if !method.Valid() {
		return nil, &domain.ValidationError{Field: "method", Reason: "unrecognized payment method " + string(method)}
	}

	receipt, err := s.storage.ApplyDonation(projectID, amount, method, key)
	if err != nil {
		return nil, err
	}

	s.metrics.DonationsApplied.Inc()
	s.logger.Info("donation applied",
		zap.String("project_id", projectID),
		zap.Int64("amount", amount),
		zap.String("idempotency_key", key))
	return receipt, nil
}
