package view

import (
	"sort"
	"strings"

	"github.com/fundlift/fundlift/internal/domain"
)

// Sort keys understood by Apply. An unrecognized key leaves the filtered
// projects in catalog order.
const (
	SortTrending = "trending"
	SortNewest   = "newest"
	SortFunded   = "funded"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// Query is the donor-facing selection over the catalog: a free-text
// search, a category filter, and a sort key.
type Query struct {
	Search   string
	Category string
	SortBy   string
}

// Apply computes the derived view: the filtered, sorted projection of the
// catalog to display. It is pure — the input slice and its projects are
// never mutated, and the same query over an unchanged catalog yields an
// identical sequence. Note that status is deliberately not part of the
// filter, matching the current listing behavior.
func Apply(projects []*domain.Project, q Query) []*domain.Project {
	result := make([]*domain.Project, 0, len(projects))
	search := strings.ToLower(q.Search)

	for _, project := range projects {
		if !matchesSearch(project, search) {
			continue
		}
		if !matchesCategory(project, q.Category) {
			continue
		}
		result = append(result, project)
	}

	sortProjects(result, q.SortBy)
	return result
}

func matchesSearch(project *domain.Project, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(project.Title), search) ||
		strings.Contains(strings.ToLower(project.Description), search)
}

func matchesCategory(project *domain.Project, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return string(project.Category) == category
}

// sortProjects orders the filtered set in place. The sort is stable so
// ties keep their catalog insertion order.
func sortProjects(projects []*domain.Project, sortBy string) {
	switch sortBy {
	case SortTrending:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Donors > projects[j].Donors
		})
	case SortNewest:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].CreatedDate.After(projects[j].CreatedDate)
		})
	case SortFunded:
		sort.SliceStable(projects, func(i, j int) bool {
			return fundingRatio(projects[i]) > fundingRatio(projects[j])
		})
	}
}

func fundingRatio(project *domain.Project) float64 {
	if project.FundingGoal == 0 {
		return 0
	}
	return float64(project.Raised) / float64(project.FundingGoal)
}
