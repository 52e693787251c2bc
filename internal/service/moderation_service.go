package service

import (
	"go.uber.org/zap"

	"github.com/fundlift/fundlift/internal/domain"
	"github.com/fundlift/fundlift/internal/metrics"
	"github.com/fundlift/fundlift/internal/stats"
)

// ModerationService drives the admin side of the lifecycle: the pending
// queue, approve/reject actions, and the dashboard counts.
type ModerationService struct {
	storage ModerationStorage
	logger  *zap.Logger
	metrics *metrics.Metrics
}

type ModerationStorage interface {
	UpdateStatus(id string, status domain.Status) error
	List() []*domain.Project
}

func NewModerationService(storage ModerationStorage, logger *zap.Logger, m *metrics.Metrics) *ModerationService {
	return &ModerationService{
		storage: storage,
		logger:  logger,
		metrics: m,
	}
}

// Queue returns projects awaiting verification or under review, in
// catalog order.
func (s *ModerationService) Queue() []*domain.Project {
	var pending []*domain.Project
	for _, project := range s.storage.List() {
		if project.Status.Pending() {
			pending = append(pending, project)
		}
	}
	return pending
}

// SetStatus replaces a project's status. Any recognized status is
// accepted from any current status; the lifecycle is advisory here.
func (s *ModerationService) SetStatus(id string, status domain.Status) error {
	if err := s.storage.UpdateStatus(id, status); err != nil {
		return err
	}

	s.metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	s.logger.Info("project status updated",
		zap.String("project_id", id),
		zap.String("status", string(status)))
	return nil
}

// Approve moves a project directly to active.
func (s *ModerationService) Approve(id string) error {
	return s.SetStatus(id, domain.StatusActive)
}

// Reject moves a project to the terminal rejected status.
func (s *ModerationService) Reject(id string) error {
	return s.SetStatus(id, domain.StatusRejected)
}

// Metrics computes the admin dashboard counts.
func (s *ModerationService) Metrics() stats.AdminMetrics {
	return stats.MetricsForAdmin(s.storage.List())
}
