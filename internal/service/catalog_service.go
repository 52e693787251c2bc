package service

import (
	"go.uber.org/zap"

	"github.com/fundlift/fundlift/internal/domain"
	"github.com/fundlift/fundlift/internal/metrics"
	"github.com/fundlift/fundlift/internal/stats"
	"github.com/fundlift/fundlift/internal/view"
)

// CatalogService is the application face of the project catalog: creator
// submissions, donor-facing browsing, and the per-creator rollups.
type CatalogService struct {
	storage CatalogStorage
	logger  *zap.Logger
	metrics *metrics.Metrics
}

type CatalogStorage interface {
	AddProject(draft domain.ProjectDraft) (*domain.Project, error)
	Get(id string) (*domain.Project, error)
	List() []*domain.Project
	UpdatesFor(projectID string) ([]*domain.ProjectUpdate, error)
}

func NewCatalogService(storage CatalogStorage, logger *zap.Logger, m *metrics.Metrics) *CatalogService {
	return &CatalogService{
		storage: storage,
		logger:  logger,
		metrics: m,
	}
}

// Submit validates and appends a creator's draft to the catalog.
func (s *CatalogService) Submit(draft domain.ProjectDraft) (*domain.Project, error) {
	project, err := s.storage.AddProject(draft)
	if err != nil {
		return nil, err
	}

	s.metrics.ProjectsSubmitted.Inc()
	s.logger.Info("project submitted",
		zap.String("project_id", project.ID),
		zap.String("title", project.Title),
		zap.String("category", string(project.Category)),
		zap.Int64("funding_goal", project.FundingGoal))
	return project, nil
}

// Browse returns the derived view of the catalog for a donor query.
func (s *CatalogService) Browse(q view.Query) []*domain.Project {
	return view.Apply(s.storage.List(), q)
}

// Get returns a single project by id.
func (s *CatalogService) Get(id string) (*domain.Project, error) {
	return s.storage.Get(id)
}

// Updates returns a project's dated notes in attachment order.
func (s *CatalogService) Updates(projectID string) ([]*domain.ProjectUpdate, error) {
	return s.storage.UpdatesFor(projectID)
}

// CreatorTotals computes the creator dashboard rollup.
func (s *CatalogService) CreatorTotals(creatorID string) stats.CreatorTotals {
	return stats.TotalsForCreator(s.storage.List(), creatorID)
}
