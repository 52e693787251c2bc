package storage

import (
	"sync"
	"time"

	"github.com/fundlift/fundlift/internal/domain"
)

// MemoryCatalog is the canonical in-memory project catalog for a process.
// It is the single write path for project records: mutation happens only
// through its methods, and insertion order is preserved so every listing
// iterates projects in the order they entered the catalog.
type MemoryCatalog struct {
	mu       sync.RWMutex
	order    []*domain.Project
	byID     map[string]*domain.Project
	updates  map[string][]*domain.ProjectUpdate
	receipts map[string]*domain.DonationReceipt
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		byID:     make(map[string]*domain.Project),
		updates:  make(map[string][]*domain.ProjectUpdate),
		receipts: make(map[string]*domain.DonationReceipt),
	}
}

// AddProject validates the draft, assigns a fresh id, and appends the new
// project to the end of the catalog. The catalog is unchanged when
// validation fails.
func (mc *MemoryCatalog) AddProject(draft domain.ProjectDraft) (*domain.Project, error) {
	project, err := domain.NewProject(draft)
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.order = append(mc.order, project)
	mc.byID[project.ID] = project
	return project, nil
}

// Insert places an already-built project into the catalog, preserving its
// field values. Used by seeding; submissions go through AddProject.
func (mc *MemoryCatalog) Insert(project *domain.Project) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.byID[project.ID]; exists {
		return &domain.ValidationError{Field: "id", Reason: "duplicate project id " + project.ID}
	}

	mc.order = append(mc.order, project)
	mc.byID[project.ID] = project
	return nil
}

// UpdateStatus replaces the status of the identified project in place.
// Any recognized status can be set from any other; transition legality is
// deliberately not checked. The project keeps its position in the catalog.
func (mc *MemoryCatalog) UpdateStatus(id string, status domain.Status) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "status", Reason: "unrecognized status " + string(status)}
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	project, exists := mc.byID[id]
	if !exists {
		return &domain.NotFoundError{Kind: "project", ID: id}
	}

	project.Status = status
	return nil
}

// Get returns the project with the given id.
func (mc *MemoryCatalog) Get(id string) (*domain.Project, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	project, exists := mc.byID[id]
	if !exists {
		return nil, &domain.NotFoundError{Kind: "project", ID: id}
	}

	return project, nil
}

// List returns a snapshot of the full catalog in insertion order.
func (mc *MemoryCatalog) List() []*domain.Project {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	snapshot := make([]*domain.Project, len(mc.order))
	copy(snapshot, mc.order)
	return snapshot
}

// AddUpdate attaches a read-only dated note to an existing project.
func (mc *MemoryCatalog) AddUpdate(update *domain.ProjectUpdate) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if _, exists := mc.byID[update.ProjectID]; !exists {
		return &domain.NotFoundError{Kind: "project", ID: update.ProjectID}
	}

	mc.updates[update.ProjectID] = append(mc.updates[update.ProjectID], update)
	return nil
}

// UpdatesFor returns the project's updates in the order they were attached.
func (mc *MemoryCatalog) UpdatesFor(projectID string) ([]*domain.ProjectUpdate, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	if _, exists := mc.byID[projectID]; !exists {
		return nil, &domain.NotFoundError{Kind: "project", ID: projectID}
	}

	updates := make([]*domain.ProjectUpdate, len(mc.updates[projectID]))
	copy(updates, mc.updates[projectID])
	return updates, nil
}

// ApplyDonation increments the project's raised amount and supporter count
// together, exactly once per idempotency key. Replaying a key returns the
// original receipt without touching the counters again.
func (mc *MemoryCatalog) ApplyDonation(projectID string, amount int64, method domain.PaymentMethod, key string) (*domain.DonationReceipt, error) {
	if amount <= 0 {
		return nil, &domain.ValidationError{Field: "amount", Reason: "must be a positive number"}
	}
	if key == "" {
		return nil, &domain.ValidationError{Field: "idempotencyKey", Reason: "must not be empty"}
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	if receipt, seen := mc.receipts[key]; seen {
		return receipt, nil
	}

	project, exists := mc.byID[projectID]
	if !exists {
		return nil, &domain.NotFoundError{Kind: "project", ID: projectID}
	}

	project.Raised += amount
	project.Donors++

	receipt := &domain.DonationReceipt{
		IdempotencyKey: key,
		ProjectID:      projectID,
		Amount:         amount,
		Method:         method,
		AppliedAt:      time.Now(),
	}
	mc.receipts[key] = receipt
	return receipt, nil
}
