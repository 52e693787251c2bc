package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is the fixed set of project categories.
type Category string

const (
	CategoryEducation   Category = "Education"
	CategoryHealthcare  Category = "Healthcare"
	CategoryEnvironment Category = "Environment"
	CategoryTechnology  Category = "Technology"
	CategoryCommunity   Category = "Community"
)

// Categories lists every recognized category, in display order.
func Categories() []Category {
	return []Category{
		CategoryEducation,
		CategoryHealthcare,
		CategoryEnvironment,
		CategoryTechnology,
		CategoryCommunity,
	}
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// BudgetItem is one informational line of a project's budget breakdown.
// Amounts are not enforced to sum to the funding goal.
type BudgetItem struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// Project is a single crowdfunding campaign record. Raised may exceed
// FundingGoal; overfunding is clamped only at display time.
type Project struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    Category     `json:"category"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	FundingGoal int64        `json:"fundingGoal"`
	Raised      int64        `json:"raised"`
	Budget      []BudgetItem `json:"budget"`
	Donors      int          `json:"donors"`
	Milestones  []string     `json:"milestones"`
	Creator     string       `json:"creator"`
	CreatorID   string       `json:"creatorId"`
	CreatedDate time.Time    `json:"createdDate"`
	Status      Status       `json:"status"`
	DaysLeft    int          `json:"daysLeft"`
}

// ProjectDraft is a creator submission before it enters the catalog.
type ProjectDraft struct {
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	FundingGoal int64    `json:"fundingGoal"`
	Creator     string   `json:"creator"`
	CreatorID   string   `json:"creatorId"`
}

const (
	defaultDescription = "Project description coming soon"
	defaultDaysLeft    = 30
)

// NewProject validates a draft and builds a catalog-ready project: fresh
// uuid, zero raised and donor counters, awaiting-verification status, and
// the submission form's defaults for the fields a draft may leave empty
// (description, milestones, a 50/30/20 budget split of the goal).
func NewProject(draft ProjectDraft) (*Project, error) {
	if draft.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if draft.FundingGoal <= 0 {
		return nil, &ValidationError{Field: "fundingGoal", Reason: "must be a positive number"}
	}
	category := draft.Category
	if category == "" {
		category = CategoryCommunity
	}
	if !category.Valid() {
		return nil, &ValidationError{Field: "category", Reason: "unrecognized category " + string(category)}
	}

	description := draft.Description
	if description == "" {
		description = defaultDescription
	}

	return &Project{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Category:    category,
		Description: description,
		Image:       draft.Image,
		FundingGoal: draft.FundingGoal,
		Raised:      0,
		Budget: []BudgetItem{
			{Category: "Operations", Amount: draft.FundingGoal * 50 / 100},
			{Category: "Materials", Amount: draft.FundingGoal * 30 / 100},
			{Category: "Other", Amount: draft.FundingGoal * 20 / 100},
		},
		Donors: 0,
		Milestones: []string{
			"Project planning",
			"Implementation phase",
			"Launch & monitoring",
		},
		Creator:     draft.Creator,
		CreatorID:   draft.CreatorID,
		CreatedDate: time.Now(),
		Status:      StatusAwaitingVerification,
		DaysLeft:    defaultDaysLeft,
	}, nil
}
